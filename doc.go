// Package variant implements a dynamically typed value and the conversions
// between it and ordinary Go values.
//
// A Variant holds exactly one value out of a closed set of kinds (see Tag):
// scalars, strings, fixed-size geometry, object references, arrays,
// dictionaries and a handful of homogeneous typed arrays. Small kinds are
// stored inline. Strings, containers and objects are shared through a
// reference-counted box: Clone adds an owner and Release drops one.
//
// # Accessors
//
// Every kind has two accessors. The ToX form is lossy and never fails; on a
// tag mismatch it returns the zero value (identity for the transform kinds).
// The AsX form is strict and returns an *errors.Error carrying the expected
// and actual tags.
//
//	v := variant.FromInt64(42)
//	v.ToString()           // ""
//	_, err := v.AsString() // invalid variant type: expected String, got Int
//
// # Conversion
//
// Encode and Decode move values between Go types and Variants:
//
//	v := variant.Encode(map[string][]int{"a": {1, 2}})
//	m, err := variant.Decode[map[string][]int](v)
//
// Go shapes map as follows:
//
//	bool, ints, uints, floats, string   Bool, Int, Float, String
//	*T, Option[T]                       encoded T or Nil
//	Result[T, E]                        {"Ok": t} or {"Err": e}
//	[]T                                 Array
//	[N]T, Tuple2..Tuple12               Array of exactly N items
//	map[K]V                             Dictionary
//	struct                              Dictionary keyed by field name
//	struct embedding TupleRepr          Array
//	struct embedding NewtypeRepr        the single field's encoding
//	struct embedding EnumRepr           {"Case": payload}
//	Unit, Phantom[T]                    Nil
//	MaybeNot[T]                         T, or the original Variant
//
// Types that implement ToVariant and FromVariant take over their own
// conversion. RegisterCodec installs a codec for a type you do not own.
//
// Decoding failures are *errors.Error trees. Field and item wrappers render
// as a path:
//
//	invalid value for field a[2]: invalid variant type: expected Int, got Nil
//
// # Runtime
//
// Equality and dynamic method calls are delegated to a Runtime installed
// with SetRuntime. The default runtime compares structurally and rejects
// every call. See the memrt package for an in-memory implementation.
package variant
