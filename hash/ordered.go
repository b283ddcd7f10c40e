package hash

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/query/errors"
)

// Mutable and order preserving hash with comparable keys and arbitrary values. It is the materialization
// target of query.ToDictionary and the frozen representation of YAML mappings

type (
	entry[K comparable, V any] struct {
		key   K
		value V
	}

	Ordered[K comparable, V any] struct {
		entries []*entry[K, V]
		index   map[K]int
		frozen  bool
	}
)

// NewOrdered returns an empty *Ordered initialized with given capacity
func NewOrdered[K comparable, V any](capacity int) *Ordered[K, V] {
	return &Ordered[K, V]{make([]*entry[K, V], 0, capacity), make(map[K]int, capacity), false}
}

// Freeze prevents further changes to the hash
func (h *Ordered[K, V]) Freeze() {
	h.frozen = true
}

// Frozen returns true if the hash can no longer be changed
func (h *Ordered[K, V]) Frozen() bool {
	return h.frozen
}

// Get returns a value from the hash or the given default if no value was found
func (h *Ordered[K, V]) Get(key K, dflt V) V {
	if p, ok := h.index[key]; ok {
		return h.entries[p].value
	}
	return dflt
}

// Keys returns the keys of the hash in the order that they were first entered
func (h *Ordered[K, V]) Keys() []K {
	keys := make([]K, len(h.entries))
	for i, e := range h.entries {
		keys[i] = e.key
	}
	return keys
}

// Put adds a new key/value association to the hash or replace the value of an existing association
func (h *Ordered[K, V]) Put(key K, value V) (oldValue V, replaced bool) {
	h.assertNotFrozen(key)
	if p, ok := h.index[key]; ok {
		e := h.entries[p]
		oldValue = e.value
		e.value = value
		return oldValue, true
	}
	h.index[key] = len(h.entries)
	h.entries = append(h.entries, &entry[K, V]{key, value})
	return
}

// PutNew adds a new key/value association to the hash and returns true. If the key is already present, the
// hash is left unchanged and the method returns false
func (h *Ordered[K, V]) PutNew(key K, value V) bool {
	h.assertNotFrozen(key)
	if _, ok := h.index[key]; ok {
		return false
	}
	h.index[key] = len(h.entries)
	h.entries = append(h.entries, &entry[K, V]{key, value})
	return true
}

// Len returns the number of entries in the hash
func (h *Ordered[K, V]) Len() int {
	return len(h.entries)
}

// Values returns the values of the hash in the order that their respective keys were first entered
func (h *Ordered[K, V]) Values() []V {
	values := make([]V, len(h.entries))
	for i, e := range h.entries {
		values[i] = e.value
	}
	return values
}

func (h *Ordered[K, V]) assertNotFrozen(key K) {
	if h.frozen {
		panic(errors.Error(errors.FrozenHash, issue.H{`key`: key}))
	}
}
