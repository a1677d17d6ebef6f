package memrt

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/variant"
)

type builtin struct {
	fn    func(recv *variant.Variant, args []variant.Variant) (variant.Variant, *variant.CallError)
	arity int
}

var builtins = map[variant.Tag]map[string]builtin{
	variant.TagString: {
		"length": {arity: 0, fn: func(recv *variant.Variant, _ []variant.Variant) (variant.Variant, *variant.CallError) {
			return variant.FromInt64(int64(utf8.RuneCountInString(recv.ToString()))), nil
		}},
		"to_upper": {arity: 0, fn: func(recv *variant.Variant, _ []variant.Variant) (variant.Variant, *variant.CallError) {
			return variant.FromString(strings.ToUpper(recv.ToString())), nil
		}},
		"to_lower": {arity: 0, fn: func(recv *variant.Variant, _ []variant.Variant) (variant.Variant, *variant.CallError) {
			return variant.FromString(strings.ToLower(recv.ToString())), nil
		}},
		"begins_with": {arity: 1, fn: func(recv *variant.Variant, args []variant.Variant) (variant.Variant, *variant.CallError) {
			prefix, cerr := arg(args, 0, variant.TagString, variant.Variant.AsString)
			if cerr != nil {
				return variant.Nil(), cerr
			}
			return variant.FromBool(strings.HasPrefix(recv.ToString(), prefix)), nil
		}},
	},
	variant.TagArray: {
		"size": {arity: 0, fn: func(recv *variant.Variant, _ []variant.Variant) (variant.Variant, *variant.CallError) {
			return variant.FromInt64(int64(recv.ToArray().Len())), nil
		}},
		"get": {arity: 1, fn: func(recv *variant.Variant, args []variant.Variant) (variant.Variant, *variant.CallError) {
			i, cerr := arg(args, 0, variant.TagInt, variant.Variant.AsInt64)
			if cerr != nil {
				return variant.Nil(), cerr
			}
			arr := recv.ToArray()
			if i < 0 || i >= int64(arr.Len()) {
				return variant.Nil(), nil
			}
			return arr.Get(int(i)).Clone(), nil
		}},
		"push_back": {arity: 1, fn: func(recv *variant.Variant, args []variant.Variant) (variant.Variant, *variant.CallError) {
			recv.ToArray().Push(args[0].Clone())
			return variant.Nil(), nil
		}},
		"clear": {arity: 0, fn: func(recv *variant.Variant, _ []variant.Variant) (variant.Variant, *variant.CallError) {
			recv.ToArray().Resize(0)
			return variant.Nil(), nil
		}},
	},
	variant.TagDictionary: {
		"size": {arity: 0, fn: func(recv *variant.Variant, _ []variant.Variant) (variant.Variant, *variant.CallError) {
			return variant.FromInt64(int64(recv.ToDictionary().Len())), nil
		}},
		"has": {arity: 1, fn: func(recv *variant.Variant, args []variant.Variant) (variant.Variant, *variant.CallError) {
			return variant.FromBool(recv.ToDictionary().Has(args[0])), nil
		}},
		"keys": {arity: 0, fn: func(recv *variant.Variant, _ []variant.Variant) (variant.Variant, *variant.CallError) {
			keys := recv.ToDictionary().Keys()
			for i := range keys {
				keys[i] = keys[i].Clone()
			}
			return variant.FromArray(variant.NewArray(keys...)), nil
		}},
		"erase": {arity: 1, fn: func(recv *variant.Variant, args []variant.Variant) (variant.Variant, *variant.CallError) {
			return variant.FromBool(recv.ToDictionary().Erase(args[0])), nil
		}},
	},
	variant.TagVector2: {
		"length": {arity: 0, fn: func(recv *variant.Variant, _ []variant.Variant) (variant.Variant, *variant.CallError) {
			v := recv.ToVector2()
			return variant.FromFloat64(math.Sqrt(float64(v.Dot(v)))), nil
		}},
		"dot": {arity: 1, fn: func(recv *variant.Variant, args []variant.Variant) (variant.Variant, *variant.CallError) {
			o, cerr := arg(args, 0, variant.TagVector2, variant.Variant.AsVector2)
			if cerr != nil {
				return variant.Nil(), cerr
			}
			return variant.FromFloat64(float64(recv.ToVector2().Dot(o))), nil
		}},
	},
	variant.TagVector3: {
		"length": {arity: 0, fn: func(recv *variant.Variant, _ []variant.Variant) (variant.Variant, *variant.CallError) {
			v := recv.ToVector3()
			return variant.FromFloat64(math.Sqrt(float64(v.Dot(v)))), nil
		}},
		"dot": {arity: 1, fn: func(recv *variant.Variant, args []variant.Variant) (variant.Variant, *variant.CallError) {
			o, cerr := arg(args, 0, variant.TagVector3, variant.Variant.AsVector3)
			if cerr != nil {
				return variant.Nil(), cerr
			}
			return variant.FromFloat64(float64(recv.ToVector3().Dot(o))), nil
		}},
	},
}

func arg[T any](args []variant.Variant, i int, tag variant.Tag, as func(variant.Variant) (T, error)) (T, *variant.CallError) {
	x, err := as(args[i])
	if err != nil {
		var zero T
		return zero, &variant.CallError{Kind: variant.CallInvalidArgument, Argument: i, Expected: tag}
	}
	return x, nil
}
