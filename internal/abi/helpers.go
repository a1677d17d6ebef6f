package abi

import (
	"fmt"
	"math"
	"reflect"
)

// MustLen converts a foreign-reported length to a host index. A length that
// does not fit means the deployment is unsupported; it is not a data error.
func MustLen(n int64) int {
	if n < 0 || uint64(n) > uint64(math.MaxInt) {
		panic(fmt.Sprintf("abi: foreign length %d exceeds host index range", n))
	}
	return int(n)
}

// TypeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

// TypeNameOf renders a reflect.Type without pointer stars.
func TypeNameOf(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.String()
}
