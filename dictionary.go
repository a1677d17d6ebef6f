package variant

import (
	"fmt"
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Dictionary maps Variant keys to Variant values and remembers insertion
// order. Like Array it owns its entries.
type Dictionary struct {
	m *linkedhashmap.Map
}

type entry struct {
	key   Variant
	value Variant
}

// dictKey is the comparable identity of a key. Scalars, geometry and typed
// arrays compare by value, objects by instance id and containers by identity.
type dictKey struct {
	tag  Tag
	word uint64
	geo  [12]float32
	str  string
	ref  any
}

func keyOf(v Variant) dictKey {
	k := dictKey{tag: v.tag, word: v.word, geo: v.geo}
	if v.box == nil {
		return k
	}
	switch d := v.box.data.(type) {
	case string:
		k.str = d
	case NodePath:
		k.str = string(d)
	case Object:
		k.word = d.InstanceID()
	case *Array, *Dictionary:
		k.ref = d
	default:
		// %#v quotes strings and keeps element boundaries.
		k.str = fmt.Sprintf("%#v", d)
	}
	return k
}

func NewDictionary() *Dictionary {
	return &Dictionary{m: linkedhashmap.New()}
}

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return d.m.Size()
}

// Get returns the value stored under key. The value is borrowed.
func (d *Dictionary) Get(key Variant) (Variant, bool) {
	if d == nil {
		return Nil(), false
	}
	e, ok := d.m.Get(keyOf(key))
	if !ok {
		return Nil(), false
	}
	return e.(*entry).value, true
}

// GetString is Get with a string key.
func (d *Dictionary) GetString(key string) (Variant, bool) {
	return d.Get(Variant{tag: TagString, box: &box{data: key}})
}

// Set stores value under key, taking ownership of both. An existing entry
// keeps its position; its old value is released.
func (d *Dictionary) Set(key, value Variant) {
	k := keyOf(key)
	if e, ok := d.m.Get(k); ok {
		old := e.(*entry)
		prev := old.value
		old.value = value
		prev.Release()
		key.Release()
		return
	}
	d.m.Put(k, &entry{key: key, value: value})
}

// SetString is Set with a string key.
func (d *Dictionary) SetString(key string, value Variant) {
	d.Set(FromString(key), value)
}

func (d *Dictionary) Has(key Variant) bool {
	_, ok := d.Get(key)
	return ok
}

// Erase removes key and releases its entry. It reports whether the key was
// present.
func (d *Dictionary) Erase(key Variant) bool {
	k := keyOf(key)
	e, ok := d.m.Get(k)
	if !ok {
		return false
	}
	d.m.Remove(k)
	old := e.(*entry)
	old.key.Release()
	old.value.Release()
	return true
}

// Keys returns the keys in insertion order. The keys are borrowed.
func (d *Dictionary) Keys() []Variant {
	out := make([]Variant, 0, d.Len())
	for k := range d.Iter() {
		out = append(out, k)
	}
	return out
}

// Values returns the values in insertion order. The values are borrowed.
func (d *Dictionary) Values() []Variant {
	out := make([]Variant, 0, d.Len())
	for _, v := range d.Iter() {
		out = append(out, v)
	}
	return out
}

// Iter yields key and value pairs in insertion order.
func (d *Dictionary) Iter() iter.Seq2[Variant, Variant] {
	return func(yield func(Variant, Variant) bool) {
		if d == nil {
			return
		}
		it := d.m.Iterator()
		for it.Next() {
			e := it.Value().(*entry)
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

func (d *Dictionary) releaseAll() {
	it := d.m.Iterator()
	for it.Next() {
		e := it.Value().(*entry)
		e.key.Release()
		e.value.Release()
	}
	d.m.Clear()
}
