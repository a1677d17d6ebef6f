package vyaml

import (
	"encoding/base64"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
)

// Decode parses a single YAML document. An empty document decodes to Nil.
func Decode(data []byte) (variant.Variant, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return variant.Nil(), errors.New(errors.KindCustom).Message("parse yaml: %v", err).Err(err).Build()
	}
	return FromNode(&doc)
}

// FromNode converts a parsed YAML node.
func FromNode(n *yaml.Node) (variant.Variant, error) {
	v, err := fromNode(n)
	if err != nil {
		return variant.Nil(), err
	}
	return v, nil
}

func fromNode(n *yaml.Node) (variant.Variant, *errors.Error) {
	switch n.Kind {
	case 0:
		return variant.Nil(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return variant.Nil(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	}

	if tag, ok := localTag(n); ok {
		return fromTagged(n, tag)
	}

	switch n.Kind {
	case yaml.SequenceNode:
		items := make([]variant.Variant, 0, len(n.Content))
		for i, c := range n.Content {
			item, err := fromNode(c)
			if err != nil {
				releaseAll(items)
				return variant.Nil(), errors.InvalidItem(i, err)
			}
			items = append(items, item)
		}
		return variant.FromArray(variant.NewArray(items...)), nil

	case yaml.MappingNode:
		dict := variant.NewDictionary()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := fromNode(n.Content[i])
			if err != nil {
				releaseDict(dict)
				return variant.Nil(), errors.InvalidField(n.Content[i].Value, err)
			}
			val, err := fromNode(n.Content[i+1])
			if err != nil {
				name := k.String()
				k.Release()
				releaseDict(dict)
				return variant.Nil(), errors.InvalidField(name, err)
			}
			dict.Set(k, val)
		}
		return variant.FromDictionary(dict), nil
	}

	return fromScalar(n)
}

func fromScalar(n *yaml.Node) (variant.Variant, *errors.Error) {
	switch n.ShortTag() {
	case "!!null":
		return variant.Nil(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return variant.Nil(), nodeError(n, err)
		}
		return variant.FromBool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return variant.FromInt64(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return variant.Nil(), nodeError(n, err)
		}
		return variant.FromUint64(u), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return variant.Nil(), nodeError(n, err)
		}
		return variant.FromFloat64(f), nil
	case "!!binary":
		b, err := decodeBinary(n.Value)
		if err != nil {
			return variant.Nil(), nodeError(n, err)
		}
		return variant.FromByteArray(b), nil
	}
	return variant.FromString(n.Value), nil
}

func localTag(n *yaml.Node) (variant.Tag, bool) {
	if !strings.HasPrefix(n.Tag, "!") || strings.HasPrefix(n.Tag, "!!") {
		return 0, false
	}
	tag, err := variant.ParseTag(n.Tag[1:])
	if err != nil {
		return 0, false
	}
	return tag, true
}

func fromTagged(n *yaml.Node, tag variant.Tag) (variant.Variant, *errors.Error) {
	if size, ok := geometrySize[tag]; ok {
		f, err := floats(n, size)
		if err != nil {
			return variant.Nil(), err
		}
		return buildGeometry(tag, f), nil
	}

	switch tag {
	case variant.TagNodePath:
		return variant.FromNodePath(variant.NodePath(n.Value)), nil
	case variant.TagRid:
		u, err := strconv.ParseUint(n.Value, 0, 64)
		if err != nil {
			return variant.Nil(), nodeError(n, err)
		}
		return variant.FromRid(variant.Rid(u)), nil
	case variant.TagByteArray:
		b, err := decodeBinary(n.Value)
		if err != nil {
			return variant.Nil(), nodeError(n, err)
		}
		return variant.FromByteArray(b), nil
	case variant.TagInt32Array:
		var xs []int32
		if err := n.Decode(&xs); err != nil {
			return variant.Nil(), nodeError(n, err)
		}
		return variant.FromInt32Array(xs), nil
	case variant.TagFloat32Array:
		var xs []float32
		if err := n.Decode(&xs); err != nil {
			return variant.Nil(), nodeError(n, err)
		}
		return variant.FromFloat32Array(xs), nil
	case variant.TagStringArray:
		var xs []string
		if err := n.Decode(&xs); err != nil {
			return variant.Nil(), nodeError(n, err)
		}
		return variant.FromStringArray(xs), nil
	case variant.TagVector2Array, variant.TagVector3Array, variant.TagColorArray:
		return fromPacked(n, tag)
	}

	return variant.Nil(), errors.Custom("line %d: tag !%s is not supported", n.Line, tag)
}

func fromPacked(n *yaml.Node, tag variant.Tag) (variant.Variant, *errors.Error) {
	if n.Kind != yaml.SequenceNode {
		return variant.Nil(), errors.Custom("line %d: !%s expects a sequence", n.Line, tag)
	}
	elem := map[variant.Tag]variant.Tag{
		variant.TagVector2Array: variant.TagVector2,
		variant.TagVector3Array: variant.TagVector3,
		variant.TagColorArray:   variant.TagColor,
	}[tag]

	var (
		v2 variant.Vector2Array
		v3 variant.Vector3Array
		cs variant.ColorArray
	)
	for i, c := range n.Content {
		f, err := floats(c, geometrySize[elem])
		if err != nil {
			return variant.Nil(), errors.InvalidItem(i, err)
		}
		switch elem {
		case variant.TagVector2:
			v2 = append(v2, variant.Vector2{X: f[0], Y: f[1]})
		case variant.TagVector3:
			v3 = append(v3, vec3(f))
		case variant.TagColor:
			cs = append(cs, variant.Color{R: f[0], G: f[1], B: f[2], A: f[3]})
		}
	}

	switch tag {
	case variant.TagVector2Array:
		return variant.FromVector2Array(v2), nil
	case variant.TagVector3Array:
		return variant.FromVector3Array(v3), nil
	}
	return variant.FromColorArray(cs), nil
}

// floats reads a flat sequence of exactly size numbers.
func floats(n *yaml.Node, size int) ([]float32, *errors.Error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.SequenceNode {
		return nil, errors.Custom("line %d: expected a sequence of %d numbers", n.Line, size)
	}
	if len(n.Content) != size {
		return nil, errors.InvalidLength(len(n.Content), size)
	}
	out := make([]float32, size)
	for i, c := range n.Content {
		var f float64
		if err := c.Decode(&f); err != nil {
			return nil, errors.InvalidItem(i, nodeError(c, err))
		}
		out[i] = float32(f)
	}
	return out, nil
}

func decodeBinary(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.Join(strings.Fields(s), ""))
}

func nodeError(n *yaml.Node, err error) *errors.Error {
	return errors.New(errors.KindCustom).
		Message("line %d: %v", n.Line, err).
		Err(err).
		Build()
}

func releaseAll(items []variant.Variant) {
	for i := range items {
		items[i].Release()
	}
}

func releaseDict(d *variant.Dictionary) {
	dv := variant.FromDictionary(d)
	dv.Release()
}
