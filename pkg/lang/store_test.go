package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	lines []Line
}

func (s staticSource) Lines() []Line { return s.lines }

func TestNewStoreHasOriginalLanguage(t *testing.T) {
	s := NewStore(StoreConfig{}, nil)

	langs := s.Languages()
	require.Len(t, langs, 1)
	assert.Equal(t, "Original", langs[0].Name)
	assert.False(t, langs[0].RTL)
	assert.Equal(t, OriginalLanguage, s.CurrentLanguage())
}

func TestReloadBuildsDictionaryOnce(t *testing.T) {
	src := &staticSource{lines: []Line{
		{ID: 1, Original: "Hello"},
		{ID: 2, Original: "Goodbye"},
	}}
	s := NewStore(StoreConfig{Source: src}, nil)

	require.NoError(t, s.Reload(OriginalLanguage))
	line, ok := s.Line(1)
	require.True(t, ok)
	assert.Equal(t, "Hello", line.Original)

	// A mutated source must not leak into an already-populated dictionary.
	src.lines = append(src.lines, Line{ID: 3, Original: "Sneaky"})
	require.NoError(t, s.Reload(OriginalLanguage))
	_, ok = s.Line(3)
	assert.False(t, ok, "reload rebuilt an already-populated dictionary")
}

func TestReloadUnknownLanguage(t *testing.T) {
	s := NewStore(StoreConfig{}, nil)
	assert.ErrorIs(t, s.Reload(5), ErrUnknownLanguage)
}

func TestSetLanguage(t *testing.T) {
	s := NewStore(StoreConfig{}, nil)
	require.NoError(t, s.ImportTable("id,text\n", "French", 1, true, false))

	require.NoError(t, s.SetLanguage(1))
	assert.Equal(t, 1, s.CurrentLanguage())

	assert.ErrorIs(t, s.SetLanguage(2), ErrUnknownLanguage)
	assert.ErrorIs(t, s.SetLanguage(-1), ErrUnknownLanguage)
	assert.Equal(t, 1, s.CurrentLanguage())
}

func TestIsRTL(t *testing.T) {
	s := NewStore(StoreConfig{}, nil)
	require.NoError(t, s.ImportTable("id,text\n", "Arabic", 1, true, true))
	require.NoError(t, s.ImportTable("id,text\n", "French", 1, true, false))

	assert.False(t, s.IsRTL(OriginalLanguage))
	assert.True(t, s.IsRTL(1))
	assert.False(t, s.IsRTL(2))
	assert.False(t, s.IsRTL(99), "out of range must read as LTR")
}

func TestAddLineAlignsTranslations(t *testing.T) {
	s := NewStore(StoreConfig{}, nil)
	require.NoError(t, s.ImportTable("id,text\n", "French", 1, true, false))
	require.NoError(t, s.ImportTable("id,text\n", "German", 1, true, false))

	s.AddLine(Line{ID: 7, Original: "Hi"})
	line, ok := s.Line(7)
	require.True(t, ok)
	assert.Len(t, line.Translations, 3)
	assert.Equal(t, "Hi", line.Translations[OriginalLanguage])
}

func TestLineTextFallback(t *testing.T) {
	line := Line{ID: 1, Original: "Hello", Translations: []string{"Hello", "Bonjour", ""}}

	text, ok := line.Text(1)
	assert.True(t, ok)
	assert.Equal(t, "Bonjour", text)

	text, ok = line.Text(2)
	assert.False(t, ok)
	assert.Equal(t, "Hello", text)

	text, ok = line.Text(9)
	assert.False(t, ok)
	assert.Equal(t, "Hello", text)
}
