package memrt

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
)

// Class is a registered Go type whose exported methods are callable on
// its instances.
type Class struct {
	methods map[string]*method
	typ     reflect.Type
	name    string
}

func (c *Class) Name() string { return c.name }

// Methods returns the bound method names.
func (c *Class) Methods() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	return names
}

func (c *Class) accepts(value any) error {
	if value == nil || reflect.TypeOf(value) != c.typ {
		return fmt.Errorf("memrt: class %s holds %s, got %T", c.name, c.typ, value)
	}
	return nil
}

type method struct {
	fn   reflect.Value
	in   []reflect.Type
	name string
	out  bool
}

// RegisterClass binds every exported method of sample's type under its
// snake_case name. Methods must not be variadic and return at most one
// value; others are skipped.
func (r *Runtime) RegisterClass(name string, sample any) (*Class, error) {
	if name == "" {
		return nil, fmt.Errorf("memrt: class name cannot be empty")
	}
	if sample == nil {
		return nil, fmt.Errorf("memrt: class %s has no sample value", name)
	}

	rt := reflect.TypeOf(sample)
	c := &Class{
		name:    name,
		typ:     rt,
		methods: make(map[string]*method),
	}

	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		ft := m.Type
		if ft.IsVariadic() || ft.NumOut() > 1 {
			r.logger.Debug("skipping method", zap.String("class", name), zap.String("method", m.Name))
			continue
		}
		in := make([]reflect.Type, 0, ft.NumIn()-1)
		for j := 1; j < ft.NumIn(); j++ {
			in = append(in, ft.In(j))
		}
		bound := toSnakeCase(m.Name)
		c.methods[bound] = &method{
			name: bound,
			fn:   m.Func,
			in:   in,
			out:  ft.NumOut() == 1,
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.classes[name]; exists {
		return nil, fmt.Errorf("memrt: class %s already registered", name)
	}
	r.classes[name] = c
	return c, nil
}

func (m *method) invoke(receiver any, args []variant.Variant) (variant.Variant, *variant.CallError) {
	if cerr := arity(len(args), len(m.in)); cerr != nil {
		return variant.Nil(), cerr
	}

	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, reflect.ValueOf(receiver))
	for i, arg := range args {
		ptr := reflect.New(m.in[i])
		if err := variant.Unmarshal(arg, ptr.Interface()); err != nil {
			return variant.Nil(), &variant.CallError{
				Kind:     variant.CallInvalidArgument,
				Argument: i,
				Expected: expectedTag(err),
			}
		}
		in = append(in, ptr.Elem())
	}

	out := m.fn.Call(in)
	if !m.out {
		return variant.Nil(), nil
	}
	return variant.Marshal(out[0].Interface()), nil
}

// expectedTag recovers the tag a failed argument decode wanted.
func expectedTag(err error) variant.Tag {
	leaf := errors.From(err).Leaf()
	if leaf != nil && leaf.Kind == errors.KindInvalidTag {
		return leaf.WantTag
	}
	return variant.TagNil
}

// toSnakeCase converts PascalCase to snake_case.
// A leading acronym stays one word: HTTPServer -> http_server. Adjacent
// acronyms are not split: GetHTTPURL -> get_httpurl.
func toSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}

		end := i + 1
		for end < len(runes) && unicode.IsUpper(runes[end]) {
			end++
		}
		// Last uppercase before lowercase starts the next word
		if end > i+1 && end < len(runes) && unicode.IsLower(runes[end]) {
			end--
		}

		if i > 0 {
			b.WriteByte('_')
		}
		for j := i; j < end; j++ {
			b.WriteRune(unicode.ToLower(runes[j]))
		}
		i = end - 1
	}
	return b.String()
}
