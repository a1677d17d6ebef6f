package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/wippyai/variant/internal/types"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "unspecified",
			err:  Unspecified(),
			want: "unspecified error",
		},
		{
			name: "custom",
			err:  Custom("bad value %d", 3),
			want: "bad value 3",
		},
		{
			name: "invalid nil",
			err:  InvalidNil(),
			want: "expected non-nullable type, got null",
		},
		{
			name: "invalid tag",
			err:  InvalidTag(types.TagInt, types.TagNil),
			want: "invalid variant type: expected Int, got Nil",
		},
		{
			name: "cannot cast",
			err:  CannotCast("Node", "*Sprite"),
			want: "cannot cast object of class Node to *Sprite",
		},
		{
			name: "invalid length",
			err:  InvalidLength(3, 2),
			want: "expected collection of length 2, got 3",
		},
		{
			name: "invalid instance",
			err:  InvalidInstance("Player"),
			want: "object is not an instance of NativeClass Player",
		},
		{
			name: "unknown enum variant",
			err:  UnknownEnumVariant("Foo", "Ok", "Err"),
			want: "unknown enum variant Foo, expected variants are: Ok, Err",
		},
		{
			name: "enum repr",
			err:  InvalidEnumRepr(ReprExternallyTagged, InvalidLength(2, 1)),
			want: "invalid enum representation: expected ExternallyTagged, expected collection of length 1, got 2",
		},
		{
			name: "struct repr",
			err:  InvalidStructRepr(ReprStruct, InvalidTag(types.TagDictionary, types.TagInt)),
			want: "invalid struct representation: expected Struct, invalid variant type: expected Dictionary, got Int",
		},
		{
			name: "enum variant",
			err:  InvalidEnumVariant("Ok", InvalidTag(types.TagString, types.TagBool)),
			want: "invalid value for variant Ok: invalid variant type: expected String, got Bool",
		},
		{
			name: "item",
			err:  InvalidItem(1, InvalidTag(types.TagInt, types.TagNil)),
			want: "invalid value for item at index 1: invalid variant type: expected Int, got Nil",
		},
		{
			name: "field with item path",
			err:  InvalidField("a", InvalidItem(2, InvalidTag(types.TagInt, types.TagNil))),
			want: "invalid value for field a[2]: invalid variant type: expected Int, got Nil",
		},
		{
			name: "nested fields",
			err:  InvalidField("a", InvalidItem(2, InvalidField("b", InvalidNil()))),
			want: "invalid value for field a[2].b: expected non-nullable type, got null",
		},
		{
			name: "field stops at non-path wrapper",
			err:  InvalidField("r", InvalidEnumVariant("Err", InvalidNil())),
			want: "invalid value for field r: invalid value for variant Err: expected non-nullable type, got null",
		},
		{
			name: "wrapper without cause",
			err:  &Error{Kind: KindInvalidItem, Index: 4},
			want: "invalid value for item at index 4: unspecified error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Path(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{InvalidNil(), ""},
		{InvalidField("a", InvalidNil()), "a"},
		{InvalidField("a", InvalidItem(2, InvalidNil())), "a[2]"},
		{InvalidField("a", InvalidItem(2, InvalidField("b", InvalidNil()))), "a[2].b"},
		{InvalidItem(0, InvalidItem(1, InvalidNil())), "[0][1]"},
		{InvalidField("r", InvalidEnumVariant("Ok", InvalidField("x", InvalidNil()))), "r"},
	}

	for _, tt := range tests {
		if got := tt.err.Path(); got != tt.want {
			t.Errorf("Path() of %q = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestError_Leaf(t *testing.T) {
	leaf := InvalidTag(types.TagInt, types.TagString)
	err := InvalidField("a", InvalidItem(3, InvalidEnumVariant("Ok", leaf)))

	if err.Leaf() != leaf {
		t.Errorf("Leaf() = %v, want %v", err.Leaf(), leaf)
	}
	if leaf.Leaf() != leaf {
		t.Error("Leaf() of a leaf should be itself")
	}
}

func TestError_Unwrap(t *testing.T) {
	root := errors.New("root cause")
	custom := From(root)

	if custom.Kind != KindCustom {
		t.Fatalf("From() kind = %s, want custom", custom.Kind)
	}
	if !errors.Is(custom, root) {
		t.Error("errors.Is should find wrapped Go error")
	}
	if custom.Error() != "root cause" {
		t.Errorf("Error() = %q", custom.Error())
	}

	wrapped := InvalidField("a", custom)
	if !errors.Is(wrapped, root) {
		t.Error("errors.Is should walk through wrappers")
	}
	if wrapped.Unwrap() != error(custom) {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	err := InvalidItem(1, InvalidTag(types.TagInt, types.TagNil))

	if !errors.Is(err, &Error{Kind: KindInvalidTag}) {
		t.Error("should match leaf kind through chain")
	}
	if !errors.Is(err, &Error{Kind: KindInvalidItem}) {
		t.Error("should match own kind")
	}
	if errors.Is(err, &Error{Kind: KindCannotCast}) {
		t.Error("should not match unrelated kind")
	}

	var target *Error
	if !errors.As(error(err), &target) || target.Kind != KindInvalidItem {
		t.Error("errors.As should find *Error")
	}
}

func TestFrom(t *testing.T) {
	if From(nil) != nil {
		t.Error("From(nil) should be nil")
	}
	e := InvalidNil()
	if From(e) != e {
		t.Error("From should pass structured errors through")
	}
}

func TestBuilder(t *testing.T) {
	err := New(KindInvalidField).
		Field("name").
		Cause(New(KindCustom).Message("need %d chars", 3).Build()).
		Build()

	if err.Kind != KindInvalidField {
		t.Errorf("Kind = %s", err.Kind)
	}
	if got := err.Error(); got != "invalid value for field name: need 3 chars" {
		t.Errorf("Error() = %q", got)
	}

	foreign := errors.New("io")
	err = New(KindCustom).Err(foreign).Build()
	if !errors.Is(err, foreign) {
		t.Error("builder Err should be unwrappable")
	}

	err = New(KindInvalidVariant).Variant("Some").Cause(InvalidNil()).Build()
	if !strings.Contains(err.Error(), "variant Some") {
		t.Errorf("Error() = %q", err.Error())
	}

	err = New(KindInvalidItem).Index(7).Build()
	if err.Index != 7 {
		t.Errorf("Index = %d", err.Index)
	}
}

func TestKind_IsWrapper(t *testing.T) {
	wrappers := []Kind{KindInvalidField, KindInvalidItem, KindInvalidVariant, KindInvalidEnumRepr, KindInvalidStructRepr}
	for _, k := range wrappers {
		if !k.IsWrapper() {
			t.Errorf("%s should be a wrapper", k)
		}
	}
	leaves := []Kind{KindUnspecified, KindCustom, KindInvalidNil, KindInvalidTag, KindCannotCast, KindInvalidLength, KindInvalidInstance, KindUnknownVariant}
	for _, k := range leaves {
		if k.IsWrapper() {
			t.Errorf("%s should be a leaf", k)
		}
	}
}
