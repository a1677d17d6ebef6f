// Package errors provides the structured error type returned by Variant
// conversions.
//
// An Error is a small tree. Leaf kinds carry the terminal diagnosis (a tag
// mismatch, a bad length, a failed cast); wrapper kinds carry exactly one
// Cause plus one unit of context (a field name, an item index, an enum
// variant or the representation that was expected).
//
// Use the convenience constructors when decoding:
//
//	err := errors.InvalidField("a",
//		errors.InvalidItem(2, errors.InvalidTag(types.TagInt, types.TagNil)))
//	err.Error() // invalid value for field a[2]: invalid variant type: expected Int, got Nil
//	err.Path()  // a[2]
//
// Or the Builder for anything unusual:
//
//	err := errors.New(errors.KindCustom).Message("bad %s", name).Build()
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
