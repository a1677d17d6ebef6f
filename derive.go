package variant

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/wippyai/variant/errors"
)

// Markers embedded in a struct to pick its representation.
type (
	// TupleRepr encodes a struct as an Array of its exported fields in
	// declaration order.
	TupleRepr struct{}

	// NewtypeRepr encodes a struct as its single exported field.
	NewtypeRepr struct{}

	// EnumRepr encodes a struct of pointer fields as a sum type: exactly one
	// field is set and the value is {"FieldName": payload}.
	EnumRepr struct{}
)

var (
	tupleMarkerType = reflect.TypeFor[tuple]()
	tupleReprType   = reflect.TypeFor[TupleRepr]()
	newtypeReprType = reflect.TypeFor[NewtypeRepr]()
	enumReprType    = reflect.TypeFor[EnumRepr]()
)

type structRepr uint8

const (
	reprStruct structRepr = iota
	reprNativeTuple
	reprTuple
	reprNewtype
	reprEnum
)

type fieldPlan struct {
	index int
	name  string
	plan  *plan
}

func (b *builder) structure(p *plan, t reflect.Type) {
	repr := reprStruct
	var fields []fieldPlan

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			switch f.Type {
			case tupleMarkerType:
				repr = reprNativeTuple
				continue
			case tupleReprType:
				repr = reprTuple
				continue
			case newtypeReprType:
				repr = reprNewtype
				continue
			case enumReprType:
				repr = reprEnum
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		name := b.c.fieldName(f)
		if name == "-" {
			continue
		}
		fields = append(fields, fieldPlan{index: i, name: name})
	}

	switch repr {
	case reprEnum:
		for i := range fields {
			ft := t.Field(fields[i].index).Type
			if ft.Kind() != reflect.Ptr {
				panic(fmt.Sprintf("variant: enum %s: case %s must be a pointer", t, fields[i].name))
			}
			fields[i].plan = b.build(ft.Elem())
		}
		b.enum(p, fields)
		return
	case reprNewtype:
		if len(fields) != 1 {
			panic(fmt.Sprintf("variant: newtype %s must have exactly one exported field, has %d", t, len(fields)))
		}
	}

	for i := range fields {
		fields[i].plan = b.build(t.Field(fields[i].index).Type)
	}

	switch {
	case repr == reprNewtype:
		b.newtype(p, fields[0])
	case repr == reprNativeTuple:
		b.tuple(p, fields, false)
	case repr == reprTuple:
		b.tuple(p, fields, true)
	case len(fields) == 0:
		b.unitStruct(p)
	default:
		b.record(p, fields)
	}
}

func (b *builder) record(p *plan, fields []fieldPlan) {
	p.shape = "struct"
	p.encode = func(rv reflect.Value) Variant {
		d := NewDictionary()
		for _, f := range fields {
			d.SetString(f.name, f.plan.encode(rv.Field(f.index)))
		}
		return FromDictionary(d)
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		if err := v.check(TagDictionary); err != nil {
			return errors.InvalidStructRepr(errors.ReprStruct, err)
		}
		d := v.box.data.(*Dictionary)
		for _, f := range fields {
			val, _ := d.GetString(f.name)
			if err := f.plan.decode(val, dst.Field(f.index)); err != nil {
				return errors.InvalidField(f.name, err)
			}
		}
		return nil
	}
}

func (b *builder) unitStruct(p *plan) {
	p.shape = "unit struct"
	p.encode = func(reflect.Value) Variant {
		return FromDictionary(NewDictionary())
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		if err := v.check(TagDictionary); err != nil {
			return errors.InvalidStructRepr(errors.ReprUnit, err)
		}
		if n := v.box.data.(*Dictionary).Len(); n != 0 {
			return errors.InvalidStructRepr(errors.ReprUnit, errors.InvalidLength(n, 0))
		}
		return nil
	}
}

func (b *builder) newtype(p *plan, inner fieldPlan) {
	p.shape = "newtype"
	p.encode = func(rv reflect.Value) Variant {
		return inner.plan.encode(rv.Field(inner.index))
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		return inner.plan.decode(v, dst.Field(inner.index))
	}
}

// tuple handles tuple-shaped structs. Derived tuples wrap shape errors in a
// struct representation error; the built-in tuple types report them as is.
func (b *builder) tuple(p *plan, fields []fieldPlan, derived bool) {
	p.shape = "tuple"
	p.encode = func(rv reflect.Value) Variant {
		arr := &Array{items: make([]Variant, 0, len(fields))}
		for _, f := range fields {
			arr.Push(f.plan.encode(rv.Field(f.index)))
		}
		return FromArray(arr)
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		err := decodeSlots(v, len(fields), func(i int, item Variant) *errors.Error {
			return fields[i].plan.decode(item, dst.Field(fields[i].index))
		})
		if err != nil && derived && !err.Kind.IsWrapper() {
			return errors.InvalidStructRepr(errors.ReprTuple, err)
		}
		return err
	}
}

// decodeSlots checks v is an Array of exactly n items and decodes each one.
func decodeSlots(v Variant, n int, decode func(i int, item Variant) *errors.Error) *errors.Error {
	if err := v.check(TagArray); err != nil {
		return err
	}
	arr := v.box.data.(*Array)
	if arr.Len() != n {
		return errors.InvalidLength(arr.Len(), n)
	}
	for i, item := range arr.Iter() {
		if err := decode(i, item); err != nil {
			return errors.InvalidItem(i, err)
		}
	}
	return nil
}

func (b *builder) enum(p *plan, cases []fieldPlan) {
	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.name
	}

	p.shape = "enum"
	p.encode = func(rv reflect.Value) Variant {
		d := NewDictionary()
		for _, c := range cases {
			ptr := rv.Field(c.index)
			if !ptr.IsNil() {
				d.SetString(c.name, c.plan.encode(ptr.Elem()))
				break
			}
		}
		return FromDictionary(d)
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		return decodeExternal(v, names, func(i int, payload Variant) *errors.Error {
			c := cases[i]
			nv := reflect.New(c.plan.typ)
			if err := c.plan.decode(payload, nv.Elem()); err != nil {
				return err
			}
			dst.SetZero()
			dst.Field(c.index).Set(nv)
			return nil
		})
	}
}

// decodeExternal reads an externally tagged sum: a Dictionary with a single
// String key naming the case.
func decodeExternal(v Variant, names []string, decode func(i int, payload Variant) *errors.Error) *errors.Error {
	if err := v.check(TagDictionary); err != nil {
		return errors.InvalidEnumRepr(errors.ReprExternallyTagged, err)
	}
	d := v.box.data.(*Dictionary)
	if d.Len() != 1 {
		return errors.InvalidEnumRepr(errors.ReprExternallyTagged, errors.InvalidLength(d.Len(), 1))
	}
	for key, payload := range d.Iter() {
		if err := key.check(TagString); err != nil {
			return errors.InvalidEnumRepr(errors.ReprExternallyTagged, err)
		}
		name := key.box.data.(string)
		i := slices.Index(names, name)
		if i < 0 {
			return errors.UnknownEnumVariant(name, names...)
		}
		if err := decode(i, payload); err != nil {
			return errors.InvalidEnumVariant(name, err)
		}
	}
	return nil
}

// pointer makes *T optional: nil encodes as Nil and Nil decodes as nil
// when T itself rejects it.
func (b *builder) pointer(p *plan, t reflect.Type) {
	elem := b.build(t.Elem())
	p.shape = "option"
	p.encode = func(rv reflect.Value) Variant {
		if rv.IsNil() {
			return Nil()
		}
		return elem.encode(rv.Elem())
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		nv := reflect.New(t.Elem())
		if err := elem.decode(v, nv.Elem()); err != nil {
			if v.IsNil() {
				dst.SetZero()
				return nil
			}
			return err
		}
		dst.Set(nv)
		return nil
	}
}

func (b *builder) bytes(p *plan) {
	p.shape = "byte array"
	p.encode = func(rv reflect.Value) Variant {
		return FromByteArray(rv.Bytes())
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		if err := v.check(TagByteArray); err != nil {
			return err
		}
		dst.SetBytes(v.ToByteArray())
		return nil
	}
}

// sequence decodes fail-fast: the first bad item aborts with its index.
func (b *builder) sequence(p *plan, t reflect.Type) {
	elem := b.build(t.Elem())
	p.shape = "sequence"
	p.encode = func(rv reflect.Value) Variant {
		arr := &Array{items: make([]Variant, 0, rv.Len())}
		for i := 0; i < rv.Len(); i++ {
			arr.Push(elem.encode(rv.Index(i)))
		}
		return FromArray(arr)
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		if err := v.check(TagArray); err != nil {
			return err
		}
		arr := v.box.data.(*Array)
		out := reflect.MakeSlice(t, arr.Len(), arr.Len())
		for i, item := range arr.Iter() {
			if err := elem.decode(item, out.Index(i)); err != nil {
				return errors.InvalidItem(i, err)
			}
		}
		dst.Set(out)
		return nil
	}
}

// array maps a Go array to a fixed-arity tuple.
func (b *builder) array(p *plan, t reflect.Type) {
	elem := b.build(t.Elem())
	n := t.Len()
	p.shape = "tuple"
	p.encode = func(rv reflect.Value) Variant {
		arr := &Array{items: make([]Variant, 0, n)}
		for i := 0; i < n; i++ {
			arr.Push(elem.encode(rv.Index(i)))
		}
		return FromArray(arr)
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		return decodeSlots(v, n, func(i int, item Variant) *errors.Error {
			return elem.decode(item, dst.Index(i))
		})
	}
}

// mapping encodes entries sorted by the rendered key so output does not
// depend on map iteration order.
func (b *builder) mapping(p *plan, t reflect.Type) {
	key, elem := b.build(t.Key()), b.build(t.Elem())
	p.shape = "map"
	p.encode = func(rv reflect.Value) Variant {
		type pair struct {
			k, v  Variant
			label string
		}
		pairs := make([]pair, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			k := key.encode(it.Key())
			pairs = append(pairs, pair{k: k, v: elem.encode(it.Value()), label: k.String()})
		}
		slices.SortFunc(pairs, func(a, b pair) int { return cmp.Compare(a.label, b.label) })

		d := NewDictionary()
		for _, pr := range pairs {
			d.Set(pr.k, pr.v)
		}
		return FromDictionary(d)
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		if err := v.check(TagDictionary); err != nil {
			return err
		}
		d := v.box.data.(*Dictionary)
		out := reflect.MakeMapWithSize(t, d.Len())
		for k, val := range d.Iter() {
			kv := reflect.New(t.Key()).Elem()
			if err := key.decode(k, kv); err != nil {
				return errors.InvalidField(k.String(), err)
			}
			vv := reflect.New(t.Elem()).Elem()
			if err := elem.decode(val, vv); err != nil {
				return errors.InvalidField(k.String(), err)
			}
			out.SetMapIndex(kv, vv)
		}
		dst.Set(out)
		return nil
	}
}

// dynamic handles interface types. The empty interface encodes whatever it
// holds and decodes to Interface(). Other interfaces decode from a value
// that implements them, typically an object.
func (b *builder) dynamic(p *plan, t reflect.Type) {
	c := b.c
	p.shape = "dynamic"
	p.encode = func(rv reflect.Value) Variant {
		if rv.IsNil() {
			return Nil()
		}
		inner := rv.Elem()
		return c.plan(inner.Type()).encode(inner)
	}
	if t.NumMethod() == 0 {
		p.decode = func(v Variant, dst reflect.Value) *errors.Error {
			if x := v.Interface(); x != nil {
				dst.Set(reflect.ValueOf(x))
			} else {
				dst.SetZero()
			}
			return nil
		}
		return
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		if v.tag == TagObject || v.IsNil() {
			return decodeObject(v, dst, t)
		}
		if x := v.Interface(); reflect.TypeOf(x).Implements(t) {
			dst.Set(reflect.ValueOf(x))
			return nil
		}
		return errors.CannotCast(v.tag.String(), t.String())
	}
}
