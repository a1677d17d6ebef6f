package types //nolint:revive // package name is used by internal consumers

import "testing"

func TestTagString(t *testing.T) {
	tests := []struct {
		want string
		tag  Tag
	}{
		{"Nil", TagNil},
		{"Bool", TagBool},
		{"Int", TagInt},
		{"Float", TagFloat},
		{"String", TagString},
		{"Vector2", TagVector2},
		{"Transform2D", TagTransform2D},
		{"Aabb", TagAabb},
		{"NodePath", TagNodePath},
		{"Object", TagObject},
		{"Dictionary", TagDictionary},
		{"Array", TagArray},
		{"ByteArray", TagByteArray},
		{"ColorArray", TagColorArray},
		{"unknown", Tag(200)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.tag.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTagSysRoundTrip(t *testing.T) {
	for _, tag := range All() {
		got, err := FromSys(tag.Sys())
		if err != nil {
			t.Fatalf("FromSys(%d) for %s: %v", tag.Sys(), tag, err)
		}
		if got != tag {
			t.Errorf("FromSys(%d) = %s, want %s", tag.Sys(), got, tag)
		}
	}
}

func TestFromSysUnknown(t *testing.T) {
	if _, err := FromSys(27); err == nil {
		t.Fatal("expected error for code 27")
	}
	if _, err := FromSys(1 << 20); err == nil {
		t.Fatal("expected error for large code")
	}
}

func TestTagIsInline(t *testing.T) {
	inline := []Tag{TagNil, TagBool, TagInt, TagFloat, TagVector2, TagTransform, TagColor, TagRid}
	for _, tag := range inline {
		if !tag.IsInline() {
			t.Errorf("%s should be inline", tag)
		}
	}

	shared := []Tag{TagString, TagNodePath, TagObject, TagDictionary, TagArray, TagByteArray, TagColorArray}
	for _, tag := range shared {
		if tag.IsInline() {
			t.Errorf("%s should not be inline", tag)
		}
	}
}

func TestParse(t *testing.T) {
	tag, err := Parse("dictionary")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tag != TagDictionary {
		t.Errorf("Parse(dictionary) = %s", tag)
	}

	if _, err := Parse("Vec2"); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestAllCount(t *testing.T) {
	if n := len(All()); n != 27 {
		t.Errorf("len(All()) = %d, want 27", n)
	}
}
