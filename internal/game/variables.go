package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

// Variable is one global game variable. Value carries the encoded value;
// Extra is an optional second payload some variable kinds use (a text
// variable's per-language translations, for example).
type Variable struct {
	ID    int
	Value string
	Extra string
}

// Variables is the global variable table, ordered by declaration.
type Variables struct {
	mu   sync.Mutex
	vars []Variable
}

func NewVariables() *Variables { return &Variables{} }

func (v *Variables) Name() string { return "variables" }

// Set assigns a variable, declaring it when unseen.
func (v *Variables) Set(id int, value string) {
	v.SetWithExtra(id, value, "")
}

// SetWithExtra assigns a variable together with its extra payload.
func (v *Variables) SetWithExtra(id int, value, extra string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.vars {
		if v.vars[i].ID == id {
			v.vars[i].Value = value
			v.vars[i].Extra = extra
			return
		}
	}
	v.vars = append(v.vars, Variable{ID: id, Value: value, Extra: extra})
}

// Get returns a variable's value.
func (v *Variables) Get(id int) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, vr := range v.vars {
		if vr.ID == id {
			return vr.Value, true
		}
	}
	return "", false
}

// All returns a copy of the table in declaration order.
func (v *Variables) All() []Variable {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Variable, len(v.vars))
	copy(out, v.vars)
	return out
}

// Capture encodes the table as pipe-joined id:value[:extra] records.
func (v *Variables) Capture(ctx context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	records := make([]string, 0, len(v.vars))
	for _, vr := range v.vars {
		fields := []string{strconv.Itoa(vr.ID), vr.Value}
		if vr.Extra != "" {
			fields = append(fields, vr.Extra)
		}
		records = append(records, strings.Join(fields, domain.FieldSeparator))
	}
	return domain.JoinRecords(records), nil
}

func (v *Variables) Restore(ctx context.Context, fragment string, policy ports.RestorePolicy) error {
	if !policy.Variables {
		return nil
	}

	records := domain.SplitRecords(fragment)
	vars := make([]Variable, 0, len(records))
	for _, rec := range records {
		parts := strings.SplitN(rec, domain.FieldSeparator, 3)
		if len(parts) < 2 {
			return fmt.Errorf("variables: %w: record %q", domain.ErrMalformedSnapshot, rec)
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("variables: %w: id %q", domain.ErrMalformedSnapshot, parts[0])
		}
		vr := Variable{ID: id, Value: parts[1]}
		if len(parts) == 3 {
			vr.Extra = parts[2]
		}
		vars = append(vars, vr)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.vars = vars
	return nil
}

func (v *Variables) OnLoadComplete(ctx context.Context) error { return nil }
