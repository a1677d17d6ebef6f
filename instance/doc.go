// Package instance keeps the object instances a runtime hands out as
// Variants.
//
// Every instance gets an ID and a reference count. Variants that hold the
// object add and drop references; the instance is freed when the last one
// goes away:
//
//	table := instance.NewTable()
//	id, _ := table.Insert("Player", player)
//
//	table.Reference(id)   // a second Variant holds it
//	table.Unreference(id) // ... and lets go
//	table.Unreference(id) // freed; Freer.Free is called
//
// IDs carry a slot generation, so a stale ID never resolves to a newer
// instance that reused its slot.
//
// Observers receive created, referenced, unreferenced and freed events.
package instance
