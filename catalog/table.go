package catalog

import (
	"sort"

	"github.com/localekit/resbridge/errors"
)

// Table maps integer resource identifiers to message keys. Identifier 0 is
// reserved and never assigned.
//
// A Table is built once at load time and is then safe for concurrent reads.
type Table struct {
	keys map[uint32]string
	ids  map[string]uint32
	next uint32
}

// NewTable creates an empty identifier table.
func NewTable() *Table {
	return &Table{
		keys: make(map[uint32]string),
		ids:  make(map[string]uint32),
		next: 1,
	}
}

// Assign binds an explicit identifier to a message key.
func (t *Table) Assign(id uint32, key string) error {
	if id == 0 {
		return errors.InvalidInput(errors.PhaseLoad, "identifier 0 is reserved")
	}
	if key == "" {
		return errors.InvalidInput(errors.PhaseLoad, "message key cannot be empty")
	}
	if existing, ok := t.keys[id]; ok {
		return errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Value(id).
			Detail("identifier %d already bound to %q", id, existing).
			Build()
	}
	if existing, ok := t.ids[key]; ok {
		return errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Value(key).
			Detail("key %q already bound to identifier %d", key, existing).
			Build()
	}

	t.keys[id] = key
	t.ids[key] = id
	if id >= t.next {
		t.next = id + 1
	}
	return nil
}

// Append binds the next free identifier to a message key and returns it.
func (t *Table) Append(key string) (uint32, error) {
	id := t.next
	if err := t.Assign(id, key); err != nil {
		return 0, err
	}
	return id, nil
}

// Key returns the message key for an identifier.
func (t *Table) Key(id uint32) (string, bool) {
	key, ok := t.keys[id]
	return key, ok
}

// ID returns the identifier for a message key.
func (t *Table) ID(key string) (uint32, bool) {
	id, ok := t.ids[key]
	return id, ok
}

// Len returns the number of assigned identifiers.
func (t *Table) Len() int {
	return len(t.keys)
}

// Each visits all assignments in identifier order.
func (t *Table) Each(fn func(id uint32, key string) bool) {
	ids := make([]uint32, 0, len(t.keys))
	for id := range t.keys {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if !fn(id, t.keys[id]) {
			return
		}
	}
}
