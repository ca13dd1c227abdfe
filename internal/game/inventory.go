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

// Item is one carried inventory entry. Properties is an opaque blob the item
// definitions attach (durability, charge, whatever the game defines); the
// inventory round-trips it untouched.
type Item struct {
	ID         int
	Count      int
	Properties string
}

// Inventory is the carried-item table, ordered by acquisition.
type Inventory struct {
	mu    sync.Mutex
	items []Item
}

func NewInventory() *Inventory { return &Inventory{} }

func (inv *Inventory) Name() string { return "inventory" }

// Add merges count of the item into the table, appending unseen IDs.
func (inv *Inventory) Add(id, count int, properties string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for i := range inv.items {
		if inv.items[i].ID == id {
			inv.items[i].Count += count
			if properties != "" {
				inv.items[i].Properties = properties
			}
			return
		}
	}
	inv.items = append(inv.items, Item{ID: id, Count: count, Properties: properties})
}

// Remove subtracts count of the item, dropping the entry at zero.
func (inv *Inventory) Remove(id, count int) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for i := range inv.items {
		if inv.items[i].ID != id {
			continue
		}
		inv.items[i].Count -= count
		if inv.items[i].Count <= 0 {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
		}
		return
	}
}

// Items returns a copy of the table in acquisition order.
func (inv *Inventory) Items() []Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Count returns how many of the item are carried.
func (inv *Inventory) Count(id int) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for _, it := range inv.items {
		if it.ID == id {
			return it.Count
		}
	}
	return 0
}

// Capture encodes the table as pipe-joined id:count:properties records.
func (inv *Inventory) Capture(ctx context.Context) (string, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	records := make([]string, 0, len(inv.items))
	for _, it := range inv.items {
		records = append(records, strings.Join([]string{
			strconv.Itoa(it.ID),
			strconv.Itoa(it.Count),
			it.Properties,
		}, domain.FieldSeparator))
	}
	return domain.JoinRecords(records), nil
}

func (inv *Inventory) Restore(ctx context.Context, fragment string, policy ports.RestorePolicy) error {
	if !policy.Inventory {
		return nil
	}

	records := domain.SplitRecords(fragment)
	items := make([]Item, 0, len(records))
	for _, rec := range records {
		parts := strings.SplitN(rec, domain.FieldSeparator, 3)
		if len(parts) < 2 {
			return fmt.Errorf("inventory: %w: record %q", domain.ErrMalformedSnapshot, rec)
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("inventory: %w: id %q", domain.ErrMalformedSnapshot, parts[0])
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("inventory: %w: count %q", domain.ErrMalformedSnapshot, parts[1])
		}
		item := Item{ID: id, Count: count}
		if len(parts) == 3 {
			item.Properties = parts[2]
		}
		items = append(items, item)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.items = items
	return nil
}

func (inv *Inventory) OnLoadComplete(ctx context.Context) error { return nil }
