package instance

// ID identifies a live instance. ID 0 is reserved and always invalid.
// The low 32 bits select a slot and the high 32 bits hold the slot
// generation, so an ID is never valid again once its instance is freed.
type ID uint64

func makeID(slot int, gen uint32) ID {
	return ID(uint64(gen)<<32 | uint64(slot+1))
}

func (id ID) slot() int { return int(uint32(id)) - 1 }
func (id ID) gen() uint32 { return uint32(id >> 32) }

// EventType names an instance lifecycle transition.
type EventType uint8

const (
	EventCreated EventType = iota
	EventReferenced
	EventUnreferenced
	EventFreed
)

func (e EventType) String() string {
	switch e {
	case EventCreated:
		return "created"
	case EventReferenced:
		return "referenced"
	case EventUnreferenced:
		return "unreferenced"
	case EventFreed:
		return "freed"
	}
	return "unknown"
}

// Event describes one lifecycle transition. Refs is the reference count
// after the transition.
type Event struct {
	Value any
	Class string
	ID    ID
	Refs  int32
	Type  EventType
}

// Observer receives instance lifecycle events.
type Observer interface {
	OnInstanceEvent(Event)
}

// Freer is implemented by instance values that need cleanup when freed.
type Freer interface {
	Free()
}
