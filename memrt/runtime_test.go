package memrt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/instance"
	"github.com/wippyai/variant/memrt"
)

type counter struct {
	label string
	n     int64
	freed bool
}

func (c *counter) Add(d int64) int64 { c.n += d; return c.n }

func (c *counter) Value() int64 { return c.n }

func (c *counter) SetLabel(s string) { c.label = s }

func (c *counter) Label() string { return c.label }

func (c *counter) Free() { c.freed = true }

func (c *counter) Sum(xs ...int64) int64 { return int64(len(xs)) }

type other struct{}

func install(t *testing.T, opts ...memrt.Option) *memrt.Runtime {
	t.Helper()
	rt := memrt.New(opts...)
	variant.SetRuntime(rt)
	t.Cleanup(func() {
		variant.SetRuntime(nil)
		_ = rt.Close()
	})
	return rt
}

func callKind(t *testing.T, err error) variant.CallErrorKind {
	t.Helper()
	var cerr *variant.CallError
	require.ErrorAs(t, err, &cerr)
	return cerr.Kind
}

func TestBuiltins_String(t *testing.T) {
	install(t)

	s := variant.FromString("héllo")
	defer s.Release()

	n, err := s.Call("length")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n.ToInt64())

	up, err := s.Call("to_upper")
	require.NoError(t, err)
	assert.Equal(t, "HÉLLO", up.ToString())

	ok, err := s.Call("begins_with", variant.FromString("hé"))
	require.NoError(t, err)
	assert.True(t, ok.ToBool())

	_, err = s.Call("begins_with", variant.FromInt64(1))
	var cerr *variant.CallError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, variant.CallInvalidArgument, cerr.Kind)
	assert.Equal(t, 0, cerr.Argument)
	assert.Equal(t, variant.TagString, cerr.Expected)

	_, err = s.Call("length", variant.Nil())
	assert.Equal(t, variant.CallTooManyArguments, callKind(t, err))

	_, err = s.Call("begins_with")
	assert.Equal(t, variant.CallTooFewArguments, callKind(t, err))
}

func TestBuiltins_Collections(t *testing.T) {
	install(t)

	arr := variant.FromArray(variant.NewArray(variant.FromInt64(1)))
	defer arr.Release()

	_, err := arr.Call("push_back", variant.FromString("two"))
	require.NoError(t, err)

	size, err := arr.Call("size")
	require.NoError(t, err)
	assert.Equal(t, int64(2), size.ToInt64())

	second, err := arr.Call("get", variant.FromInt64(1))
	require.NoError(t, err)
	assert.Equal(t, "two", second.ToString())
	second.Release()

	missing, err := arr.Call("get", variant.FromInt64(9))
	require.NoError(t, err)
	assert.True(t, missing.IsNil())

	dict := variant.NewDictionary()
	dict.SetString("a", variant.FromInt64(1))
	dict.SetString("b", variant.FromInt64(2))
	d := variant.FromDictionary(dict)
	defer d.Release()

	has, err := d.Call("has", variant.FromString("a"))
	require.NoError(t, err)
	assert.True(t, has.ToBool())

	keys, err := d.Call("keys")
	require.NoError(t, err)
	assert.Equal(t, "[a, b]", keys.String())
	keys.Release()

	erased, err := d.Call("erase", variant.FromString("a"))
	require.NoError(t, err)
	assert.True(t, erased.ToBool())
	assert.Equal(t, 1, dict.Len())
}

func TestBuiltins_Vectors(t *testing.T) {
	install(t)

	v := variant.FromVector2(variant.Vector2{X: 3, Y: 4})
	n, err := v.Call("length")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, n.ToFloat64(), 1e-6)

	d, err := v.Call("dot", variant.FromVector2(variant.Vector2{X: 1, Y: 1}))
	require.NoError(t, err)
	assert.InDelta(t, 7.0, d.ToFloat64(), 1e-6)

	w := variant.FromVector3(variant.Vector3{X: 1, Y: 2, Z: 2})
	n, err = w.Call("length")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, n.ToFloat64(), 1e-6)

	_, err = v.Call("dot", w)
	assert.Equal(t, variant.CallInvalidArgument, callKind(t, err))
}

func TestBuiltins_UnknownMethod(t *testing.T) {
	install(t)

	v := variant.FromInt64(4)
	assert.False(t, v.HasMethod("length"))
	_, err := v.Call("length")
	assert.Equal(t, variant.CallInvalidMethod, callKind(t, err))
	assert.Contains(t, err.Error(), `"length"`)

	s := variant.FromString("x")
	defer s.Release()
	assert.True(t, s.HasMethod("to_lower"))
}

func TestClass_Call(t *testing.T) {
	rt := install(t)

	class, err := rt.RegisterClass("Counter", &counter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"add", "value", "set_label", "label", "free"}, class.Methods())

	obj, err := rt.Instantiate("Counter", &counter{})
	require.NoError(t, err)
	defer obj.Release()

	assert.True(t, obj.HasMethod("add"))
	assert.False(t, obj.HasMethod("sum"))

	got, err := obj.Call("add", variant.FromInt64(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ToInt64())

	got, err = obj.Call("add", variant.FromInt64(3))
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ToInt64())

	ret, err := obj.Call("set_label", variant.FromString("hits"))
	require.NoError(t, err)
	assert.True(t, ret.IsNil())

	label, err := obj.Call("label")
	require.NoError(t, err)
	assert.Equal(t, "hits", label.ToString())
	label.Release()
}

func TestClass_CallErrors(t *testing.T) {
	rt := install(t)
	_, err := rt.RegisterClass("Counter", &counter{})
	require.NoError(t, err)

	obj, err := rt.Instantiate("Counter", &counter{})
	require.NoError(t, err)
	defer obj.Release()

	_, err = obj.Call("add", variant.FromString("x"))
	var cerr *variant.CallError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, variant.CallInvalidArgument, cerr.Kind)
	assert.Equal(t, variant.TagInt, cerr.Expected)

	_, err = obj.Call("add")
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, variant.CallTooFewArguments, cerr.Kind)
	assert.Equal(t, 1, cerr.Argument)

	_, err = obj.Call("value", variant.Nil())
	assert.Equal(t, variant.CallTooManyArguments, callKind(t, err))

	_, err = obj.Call("missing")
	assert.Equal(t, variant.CallInvalidMethod, callKind(t, err))
}

func TestClass_FreedInstance(t *testing.T) {
	rt := install(t)
	_, err := rt.RegisterClass("Counter", &counter{})
	require.NoError(t, err)

	c := &counter{}
	obj, err := rt.Instantiate("Counter", c)
	require.NoError(t, err)
	alias := obj.Clone()

	require.True(t, rt.Free(obj))
	assert.True(t, c.freed)

	_, err = alias.Call("value")
	assert.Equal(t, variant.CallInstanceIsNull, callKind(t, err))
	assert.False(t, alias.HasMethod("value"))

	obj.Release()
	alias.Release()
	assert.Equal(t, 0, rt.Table().Len())
}

func TestClass_ReleaseFreesInstance(t *testing.T) {
	table := instance.NewTable()
	rt := install(t, memrt.WithTable(table))
	_, err := rt.RegisterClass("Counter", &counter{})
	require.NoError(t, err)

	c := &counter{}
	obj, err := rt.Instantiate("Counter", c)
	require.NoError(t, err)
	copied := obj.Clone()

	obj.Release()
	assert.Equal(t, 1, table.Len())
	assert.False(t, c.freed)

	copied.Release()
	assert.Equal(t, 0, table.Len())
	assert.True(t, c.freed)
}

func TestClass_ObjectConversions(t *testing.T) {
	rt := install(t)
	_, err := rt.RegisterClass("Counter", &counter{})
	require.NoError(t, err)

	c := &counter{n: 7}
	obj, err := rt.Instantiate("Counter", c)
	require.NoError(t, err)
	defer obj.Release()

	inst, err := variant.DecodeInstance[*counter](obj)
	require.NoError(t, err)
	assert.Same(t, c, inst)

	_, err = variant.Downcast[*other](obj)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cast object of class Counter")

	mo, err := variant.Downcast[*memrt.Object](obj)
	require.NoError(t, err)
	assert.NotZero(t, mo.InstanceID())
}

func TestRegisterClass_Errors(t *testing.T) {
	rt := install(t)

	_, err := rt.RegisterClass("", &counter{})
	assert.Error(t, err)
	_, err = rt.RegisterClass("Counter", nil)
	assert.Error(t, err)

	_, err = rt.RegisterClass("Counter", &counter{})
	require.NoError(t, err)
	_, err = rt.RegisterClass("Counter", &counter{})
	assert.Error(t, err)

	_, err = rt.Instantiate("Counter", counter{})
	assert.Error(t, err)
	_, err = rt.Instantiate("Nope", &counter{})
	assert.Error(t, err)
}

func TestRuntime_Equal(t *testing.T) {
	install(t)

	a := variant.FromArray(variant.NewArray(variant.FromInt64(1)))
	b := variant.FromArray(variant.NewArray(variant.FromInt64(1)))
	defer a.Release()
	defer b.Release()
	assert.True(t, a.Equal(b))
}
