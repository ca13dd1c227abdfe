package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keraunic-tonic/friendship/internal/domain"
)

func openStore(t *testing.T) *SaveStore {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	return store
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	desc := domain.SaveDescriptor{SlotID: 1, ProfileID: 0, Label: "harbor"}
	blob := []byte("main||scenes")
	require.NoError(t, store.Write(ctx, desc, blob))

	got, err := store.Read(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestWriteUpserts(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	desc := domain.SaveDescriptor{SlotID: 1, ProfileID: 0, Label: "first"}
	require.NoError(t, store.Write(ctx, desc, []byte("one")))

	desc.Label = "second"
	require.NoError(t, store.Write(ctx, desc, []byte("two")))

	got, err := store.Read(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)

	descs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.Equal(t, "second", descs[0].Label)
}

func TestReadMissingSlot(t *testing.T) {
	store := openStore(t)
	_, err := store.Read(context.Background(), 9, 0)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestListOrderedAndProfileScoped(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	for _, slot := range []int{3, 1, 2} {
		desc := domain.SaveDescriptor{SlotID: slot, ProfileID: 0, UpdatedAt: now}
		require.NoError(t, store.Write(ctx, desc, []byte("x")))
	}
	require.NoError(t, store.Write(ctx, domain.SaveDescriptor{SlotID: 1, ProfileID: 7}, []byte("x")))

	descs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, descs, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{descs[0].SlotID, descs[1].SlotID, descs[2].SlotID})
	assert.WithinDuration(t, now, descs[0].UpdatedAt, time.Second)

	other, err := store.List(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestDelete(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, domain.SaveDescriptor{SlotID: 1}, []byte("x")))
	require.NoError(t, store.Delete(ctx, 1, 0))

	_, err := store.Read(ctx, 1, 0)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
	assert.ErrorIs(t, store.Delete(ctx, 1, 0), domain.ErrSlotNotFound)
}

func TestSetLabel(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, domain.SaveDescriptor{SlotID: 1, Label: "old"}, []byte("x")))
	require.NoError(t, store.SetLabel(ctx, 1, 0, "new"))

	descs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.Equal(t, "new", descs[0].Label)

	assert.ErrorIs(t, store.SetLabel(ctx, 9, 0, "x"), domain.ErrSlotNotFound)
}

func TestScreenshotRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, domain.SaveDescriptor{SlotID: 1}, []byte("x")))

	image := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, store.WriteScreenshot(ctx, 1, 0, image))

	got, err := store.ReadScreenshot(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, image, got)

	descs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.True(t, descs[0].HasScreenshot)
}

func TestScreenshotMissing(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, domain.SaveDescriptor{SlotID: 1}, []byte("x")))
	_, err := store.ReadScreenshot(ctx, 1, 0)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)

	assert.ErrorIs(t, store.WriteScreenshot(ctx, 9, 0, []byte("img")), domain.ErrSlotNotFound)
}
