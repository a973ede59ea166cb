package history

import (
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Mementos is the per-Record keyed auxiliary store. Save happens once,
// during a record's natural first execution; Load happens many times,
// during every subsequent undo or redo of that record. The map preserves
// insertion order so Dump can render a record's saved keys deterministically.
type Mementos struct {
	values *orderedmap.OrderedMap
}

func newMementos() *Mementos {
	return &Mementos{values: orderedmap.New()}
}

// save stores value under key, overwriting silently.
func (m *Mementos) save(key string, value interface{}) {
	m.values.Set(key, value)
}

// load retrieves the value stored under key (after _Undo suffix stripping
// has already been applied by the caller) into out, which must be a
// non-nil pointer. Returns false if the key is absent or out's pointee
// type does not match the stored value's dynamic type.
func (m *Mementos) load(key string, out interface{}) bool {
	raw, ok := m.values.Get(key)
	if !ok {
		return false
	}
	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Ptr || outVal.IsNil() {
		return false
	}
	elem := outVal.Elem()
	storedVal := reflect.ValueOf(raw)
	if !storedVal.IsValid() || !storedVal.Type().AssignableTo(elem.Type()) {
		return false
	}
	elem.Set(storedVal)
	return true
}

// keys returns the saved keys in insertion order, for Dump rendering.
func (m *Mementos) keys() []string {
	out := make([]string, 0, m.values.Len())
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		if k, ok := pair.Key.(string); ok {
			out = append(out, k)
		}
	}
	return out
}
