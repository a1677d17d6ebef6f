package memrt

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/instance"
)

// Runtime hosts builtin methods and registered classes.
type Runtime struct {
	classes map[string]*Class
	table   *instance.Table
	logger  *zap.Logger
	mu      sync.RWMutex
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger for call tracing.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runtime) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTable makes the runtime store instances in t instead of a private
// table.
func WithTable(t *instance.Table) Option {
	return func(r *Runtime) {
		if t != nil {
			r.table = t
		}
	}
}

func New(opts ...Option) *Runtime {
	r := &Runtime{
		classes: make(map[string]*Class),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.table == nil {
		r.table = instance.NewTable()
	}
	return r
}

// Table returns the instance table backing the runtime's objects.
func (r *Runtime) Table() *instance.Table {
	return r.table
}

// Instantiate stores value as a new instance of class and returns an object
// Variant holding the only reference to it.
func (r *Runtime) Instantiate(class string, value any) (variant.Variant, error) {
	c, ok := r.class(class)
	if !ok {
		return variant.Nil(), fmt.Errorf("memrt: unknown class %q", class)
	}
	if err := c.accepts(value); err != nil {
		return variant.Nil(), err
	}
	id, err := r.table.Insert(class, value)
	if err != nil {
		return variant.Nil(), err
	}
	r.logger.Debug("instantiate", zap.String("class", class), zap.Uint64("id", uint64(id)))
	return variant.FromObject(&Object{rt: r, id: id}), nil
}

// Free destroys the instance held by v regardless of outstanding
// references. Later calls through any copy of v fail with
// CallInstanceIsNull.
func (r *Runtime) Free(v variant.Variant) bool {
	obj, err := variant.Downcast[*Object](v)
	if err != nil || obj.rt != r {
		return false
	}
	_, ok := r.table.Free(obj.id)
	return ok
}

// Close frees every instance.
func (r *Runtime) Close() error {
	return r.table.Close()
}

func (r *Runtime) Equal(a, b variant.Variant) bool {
	return variant.StructuralEqual(a, b)
}

func (r *Runtime) HasMethod(receiver variant.Variant, method string) bool {
	if receiver.Type() == variant.TagObject {
		obj, ok := r.resolve(receiver)
		if !ok {
			return false
		}
		c, ok := r.class(obj.class)
		return ok && c.methods[method] != nil
	}
	_, ok := builtins[receiver.Type()][method]
	return ok
}

func (r *Runtime) Call(receiver *variant.Variant, method string, args []variant.Variant) (variant.Variant, variant.CallStatus) {
	ret, cerr := r.call(receiver, method, args)
	if cerr != nil {
		r.logger.Debug("call failed",
			zap.String("method", method),
			zap.Stringer("receiver", receiver.Type()),
			zap.String("error", cerr.Error()))
	}
	return ret, variant.CallStatusFor(cerr)
}

func (r *Runtime) call(receiver *variant.Variant, method string, args []variant.Variant) (variant.Variant, *variant.CallError) {
	if receiver.Type() != variant.TagObject {
		b, ok := builtins[receiver.Type()][method]
		if !ok {
			return variant.Nil(), &variant.CallError{Kind: variant.CallInvalidMethod}
		}
		if cerr := arity(len(args), b.arity); cerr != nil {
			return variant.Nil(), cerr
		}
		return b.fn(receiver, args)
	}

	obj, ok := r.resolve(*receiver)
	if !ok {
		return variant.Nil(), &variant.CallError{Kind: variant.CallInstanceIsNull}
	}
	c, ok := r.class(obj.class)
	if !ok {
		return variant.Nil(), &variant.CallError{Kind: variant.CallInvalidMethod}
	}
	m := c.methods[method]
	if m == nil {
		return variant.Nil(), &variant.CallError{Kind: variant.CallInvalidMethod}
	}
	return m.invoke(obj.value, args)
}

func (r *Runtime) ClassName(obj variant.Object) string {
	if o, ok := obj.(*Object); ok && o.rt == r {
		if class, ok := r.table.Class(o.id); ok {
			return class
		}
	}
	return fmt.Sprintf("%T", obj)
}

type resolved struct {
	value any
	class string
}

func (r *Runtime) resolve(v variant.Variant) (resolved, bool) {
	obj, ok := v.ToObject().(*Object)
	if !ok || obj.rt != r {
		return resolved{}, false
	}
	value, ok := r.table.Get(obj.id)
	if !ok {
		return resolved{}, false
	}
	class, _ := r.table.Class(obj.id)
	return resolved{value: value, class: class}, true
}

func (r *Runtime) class(name string) (*Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[name]
	return c, ok
}

func arity(got, want int) *variant.CallError {
	switch {
	case got > want:
		return &variant.CallError{Kind: variant.CallTooManyArguments, Argument: want}
	case got < want:
		return &variant.CallError{Kind: variant.CallTooFewArguments, Argument: want}
	}
	return nil
}
