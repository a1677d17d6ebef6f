package instance

import (
	"errors"
	"sync"
)

var (
	ErrClosed = errors.New("instance table closed")
)

// Table holds object instances by ID with a reference count each. An
// instance is freed when its count drops to zero or when it is freed
// explicitly.
type Table struct {
	entries   []entry
	freeList  []int
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

type entry struct {
	value any
	class string
	refs  int32
	gen   uint32
	valid bool
}

func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]int, 0, 16),
	}
}

// Insert stores value with a reference count of one and returns its ID.
func (t *Table) Insert(class string, value any) (ID, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, ErrClosed
	}

	var slot int
	if n := len(t.freeList); n > 0 {
		slot = t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
	} else {
		t.entries = append(t.entries, entry{})
		slot = len(t.entries) - 1
	}

	e := &t.entries[slot]
	e.gen++
	e.value, e.class, e.refs, e.valid = value, class, 1, true
	id := makeID(slot, e.gen)
	t.mu.Unlock()

	t.notify(Event{Type: EventCreated, ID: id, Class: class, Value: value, Refs: 1})
	return id, nil
}

// lookup returns the live entry for id. Callers hold t.mu.
func (t *Table) lookup(id ID) *entry {
	if id == 0 {
		return nil
	}
	slot := id.slot()
	if slot < 0 || slot >= len(t.entries) {
		return nil
	}
	e := &t.entries[slot]
	if !e.valid || e.gen != id.gen() {
		return nil
	}
	return e
}

// Get returns the value of a live instance.
func (t *Table) Get(id ID) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.lookup(id)
	if e == nil {
		return nil, false
	}
	return e.value, true
}

// Class returns the class name of a live instance.
func (t *Table) Class(id ID) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.lookup(id)
	if e == nil {
		return "", false
	}
	return e.class, true
}

// Refs returns the reference count of a live instance.
func (t *Table) Refs(id ID) (int32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.lookup(id)
	if e == nil {
		return 0, false
	}
	return e.refs, true
}

// Reference adds one reference to a live instance.
func (t *Table) Reference(id ID) bool {
	t.mu.Lock()
	e := t.lookup(id)
	if e == nil {
		t.mu.Unlock()
		return false
	}
	e.refs++
	ev := Event{Type: EventReferenced, ID: id, Class: e.class, Value: e.value, Refs: e.refs}
	t.mu.Unlock()

	t.notify(ev)
	return true
}

// Unreference drops one reference and frees the instance when none are
// left. It reports whether the instance was freed.
func (t *Table) Unreference(id ID) bool {
	t.mu.Lock()
	e := t.lookup(id)
	if e == nil {
		t.mu.Unlock()
		return false
	}
	e.refs--
	if e.refs > 0 {
		ev := Event{Type: EventUnreferenced, ID: id, Class: e.class, Value: e.value, Refs: e.refs}
		t.mu.Unlock()
		t.notify(ev)
		return false
	}
	value, class := t.release(id.slot())
	t.mu.Unlock()

	t.finish(id, class, value)
	return true
}

// Free removes an instance regardless of its reference count and returns
// its value.
func (t *Table) Free(id ID) (any, bool) {
	t.mu.Lock()
	if t.lookup(id) == nil {
		t.mu.Unlock()
		return nil, false
	}
	value, class := t.release(id.slot())
	t.mu.Unlock()

	t.finish(id, class, value)
	return value, true
}

func (t *Table) release(slot int) (any, string) {
	e := &t.entries[slot]
	value, class := e.value, e.class
	e.value, e.class, e.refs, e.valid = nil, "", 0, false
	t.freeList = append(t.freeList, slot)
	return value, class
}

func (t *Table) finish(id ID, class string, value any) {
	if f, ok := value.(Freer); ok {
		f.Free()
	}
	t.notify(Event{Type: EventFreed, ID: id, Class: class, Value: value})
}

// Len returns the number of live instances.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each calls fn for every live instance until fn returns false.
func (t *Table) Each(fn func(ID, string, any) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid {
			if !fn(makeID(i, e.gen), e.class, e.value) {
				break
			}
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Close frees every live instance and rejects further inserts.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true

	type freed struct {
		id    ID
		class string
		value any
	}
	var all []freed
	for i := range t.entries {
		if t.entries[i].valid {
			id := makeID(i, t.entries[i].gen)
			value, class := t.release(i)
			all = append(all, freed{id, class, value})
		}
	}
	t.mu.Unlock()

	for _, f := range all {
		t.finish(f.id, f.class, f.value)
	}
	return nil
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnInstanceEvent(e)
	}
}
