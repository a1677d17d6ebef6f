// Package memrt is an in-memory implementation of variant.Runtime.
//
// It serves two purposes: it gives values a working Call and HasMethod
// without a foreign engine, and it hosts Go values as objects.
//
// # Builtin methods
//
// Receivers of the builtin tags answer a small fixed method set:
//
//	String      length, to_upper, to_lower, begins_with
//	Array       size, get, push_back, clear
//	Dictionary  size, has, keys, erase
//	Vector2/3   length, dot
//
// # Classes
//
// RegisterClass binds the exported methods of a Go type under snake_case
// names. Instantiate stores a value of that type in an instance table and
// returns an object Variant; calls on the object decode their arguments
// with the variant conversion rules and encode the single result.
//
//	rt := memrt.New()
//	rt.RegisterClass("Counter", &Counter{})
//	obj, _ := rt.Instantiate("Counter", &Counter{})
//	variant.SetRuntime(rt)
//	n, err := obj.Call("add", variant.FromInt64(2))
//
// An object that was freed explicitly reports CallInstanceIsNull.
package memrt
