package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/variant/internal/types"
)

// Kind categorizes the error
type Kind string

const (
	// Leaf kinds
	KindUnspecified     Kind = "unspecified"
	KindCustom          Kind = "custom"
	KindInvalidNil      Kind = "invalid_nil"
	KindInvalidTag      Kind = "invalid_tag"
	KindCannotCast      Kind = "cannot_cast"
	KindInvalidLength   Kind = "invalid_length"
	KindInvalidInstance Kind = "invalid_instance"
	KindUnknownVariant  Kind = "unknown_enum_variant"

	// Wrapper kinds
	KindInvalidField      Kind = "invalid_field"
	KindInvalidItem       Kind = "invalid_item"
	KindInvalidVariant    Kind = "invalid_enum_variant"
	KindInvalidEnumRepr   Kind = "invalid_enum_repr"
	KindInvalidStructRepr Kind = "invalid_struct_repr"
)

// IsWrapper reports whether errors of this kind carry a child error.
func (k Kind) IsWrapper() bool {
	switch k {
	case KindInvalidField, KindInvalidItem, KindInvalidVariant, KindInvalidEnumRepr, KindInvalidStructRepr:
		return true
	}
	return false
}

// Repr names the representation a composite expected.
type Repr string

const (
	ReprExternallyTagged Repr = "ExternallyTagged"
	ReprUnit             Repr = "Unit"
	ReprTuple            Repr = "Tuple"
	ReprStruct           Repr = "Struct"
)

// Error is the structured conversion error. Leaf kinds carry terminal
// diagnostics; wrapper kinds carry Cause plus one unit of context.
type Error struct {
	Cause    *Error
	Err      error
	Kind     Kind
	Message  string
	Class    string
	Target   string
	Field    string
	Variant  string
	Repr     Repr
	Expected []string
	Len      int
	WantLen  int
	Index    int
	WantTag  types.Tag
	GotTag   types.Tag
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e *Error) write(b *strings.Builder) {
	switch e.Kind {
	case KindUnspecified, "":
		b.WriteString("unspecified error")
	case KindCustom:
		switch {
		case e.Message != "":
			b.WriteString(e.Message)
		case e.Err != nil:
			b.WriteString(e.Err.Error())
		default:
			b.WriteString("custom error")
		}
	case KindInvalidNil:
		b.WriteString("expected non-nullable type, got null")
	case KindInvalidTag:
		fmt.Fprintf(b, "invalid variant type: expected %s, got %s", e.WantTag, e.GotTag)
	case KindCannotCast:
		fmt.Fprintf(b, "cannot cast object of class %s to %s", e.Class, e.Target)
	case KindInvalidLength:
		fmt.Fprintf(b, "expected collection of length %d, got %d", e.WantLen, e.Len)
	case KindInvalidInstance:
		fmt.Fprintf(b, "object is not an instance of NativeClass %s", e.Target)
	case KindUnknownVariant:
		fmt.Fprintf(b, "unknown enum variant %s, expected variants are: %s", e.Variant, strings.Join(e.Expected, ", "))
	case KindInvalidEnumRepr:
		fmt.Fprintf(b, "invalid enum representation: expected %s, ", e.Repr)
		e.Cause.writeOrUnspecified(b)
	case KindInvalidStructRepr:
		fmt.Fprintf(b, "invalid struct representation: expected %s, ", e.Repr)
		e.Cause.writeOrUnspecified(b)
	case KindInvalidVariant:
		fmt.Fprintf(b, "invalid value for variant %s: ", e.Variant)
		e.Cause.writeOrUnspecified(b)
	case KindInvalidItem:
		fmt.Fprintf(b, "invalid value for item at index %d: ", e.Index)
		e.Cause.writeOrUnspecified(b)
	case KindInvalidField:
		b.WriteString("invalid value for field ")
		b.WriteString(e.Field)
		next := e.Cause
		for next != nil && (next.Kind == KindInvalidField || next.Kind == KindInvalidItem) {
			next.writeSegment(b)
			next = next.Cause
		}
		b.WriteString(": ")
		next.writeOrUnspecified(b)
	default:
		b.WriteString(string(e.Kind))
	}
}

func (e *Error) writeOrUnspecified(b *strings.Builder) {
	if e == nil {
		b.WriteString("unspecified error")
		return
	}
	e.write(b)
}

func (e *Error) writeSegment(b *strings.Builder) {
	switch e.Kind {
	case KindInvalidField:
		b.WriteByte('.')
		b.WriteString(e.Field)
	case KindInvalidItem:
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(e.Index))
		b.WriteByte(']')
	}
}

// Path renders the field/item context accumulated on the way to the first
// non-path error, e.g. "a.b[2]".
func (e *Error) Path() string {
	var b strings.Builder
	for cur := e; cur != nil; cur = cur.Cause {
		switch cur.Kind {
		case KindInvalidField:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(cur.Field)
		case KindInvalidItem:
			cur.writeSegment(&b)
		default:
			return b.String()
		}
	}
	return b.String()
}

// Leaf follows Cause links to the terminal error.
func (e *Error) Leaf() *Error {
	cur := e
	for cur != nil && cur.Cause != nil {
		cur = cur.Cause
	}
	return cur
}

// Unwrap returns the child error, or the foreign error of a custom leaf.
func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Err
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(kind Kind) *Builder {
	return &Builder{err: Error{Kind: kind}}
}

// Message sets the human-readable message
func (b *Builder) Message(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Message = fmt.Sprintf(msg, args...)
	} else {
		b.err.Message = msg
	}
	return b
}

// Cause sets the child error
func (b *Builder) Cause(err *Error) *Builder {
	b.err.Cause = err
	return b
}

// Err attaches a foreign error
func (b *Builder) Err(err error) *Builder {
	b.err.Err = err
	return b
}

// Field sets the field name context
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Index sets the item index context
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// Variant sets the enum variant name
func (b *Builder) Variant(name string) *Builder {
	b.err.Variant = name
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	e := b.err
	return &e
}

// Convenience constructors for the leaf kinds

// Unspecified creates an error with no further information.
func Unspecified() *Error {
	return &Error{Kind: KindUnspecified}
}

// Custom creates an error with a free-form message.
func Custom(format string, args ...any) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: KindCustom, Message: msg}
}

// From converts an arbitrary error into an *Error. Structured errors pass
// through unchanged; anything else becomes a custom leaf that keeps err.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: KindCustom, Err: err}
}

// InvalidNil reports a nil value for a non-nullable type.
func InvalidNil() *Error {
	return &Error{Kind: KindInvalidNil}
}

// InvalidTag reports a tag mismatch.
func InvalidTag(expected, actual types.Tag) *Error {
	return &Error{Kind: KindInvalidTag, WantTag: expected, GotTag: actual}
}

// CannotCast reports a failed object downcast.
func CannotCast(class, target string) *Error {
	return &Error{Kind: KindCannotCast, Class: class, Target: target}
}

// InvalidLength reports a collection of the wrong length.
func InvalidLength(length, expected int) *Error {
	return &Error{Kind: KindInvalidLength, Len: length, WantLen: expected}
}

// InvalidInstance reports an object without the expected script instance.
func InvalidInstance(expected string) *Error {
	return &Error{Kind: KindInvalidInstance, Target: expected}
}

// UnknownEnumVariant reports a variant name not known at compile time.
func UnknownEnumVariant(found string, expected ...string) *Error {
	return &Error{Kind: KindUnknownVariant, Variant: found, Expected: expected}
}

// Wrappers

// InvalidField wraps cause with a field name.
func InvalidField(name string, cause *Error) *Error {
	return &Error{Kind: KindInvalidField, Field: name, Cause: cause}
}

// InvalidItem wraps cause with a sequence index.
func InvalidItem(index int, cause *Error) *Error {
	return &Error{Kind: KindInvalidItem, Index: index, Cause: cause}
}

// InvalidEnumVariant wraps cause with the variant being decoded.
func InvalidEnumVariant(name string, cause *Error) *Error {
	return &Error{Kind: KindInvalidVariant, Variant: name, Cause: cause}
}

// InvalidEnumRepr wraps cause with the expected enum representation.
func InvalidEnumRepr(repr Repr, cause *Error) *Error {
	return &Error{Kind: KindInvalidEnumRepr, Repr: repr, Cause: cause}
}

// InvalidStructRepr wraps cause with the expected struct representation.
func InvalidStructRepr(repr Repr, cause *Error) *Error {
	return &Error{Kind: KindInvalidStructRepr, Repr: repr, Cause: cause}
}
