package memrt

import "github.com/wippyai/variant/instance"

// Object is a reference to an instance hosted by a Runtime. Each Object
// accounts for one reference in the instance table; it is dropped when the
// last Variant holding the Object is released.
type Object struct {
	rt *Runtime
	id instance.ID
}

func (o *Object) InstanceID() uint64 { return uint64(o.id) }

// Unreference drops the reference held by o.
func (o *Object) Unreference() {
	o.rt.table.Unreference(o.id)
}

// ScriptInstance returns the hosted Go value, or nil once it has been freed.
func (o *Object) ScriptInstance() any {
	v, _ := o.rt.table.Get(o.id)
	return v
}
