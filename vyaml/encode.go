package vyaml

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
)

// Encode renders v as a YAML document.
func Encode(v variant.Variant) ([]byte, error) {
	n, err := ToNode(v)
	if err != nil {
		return nil, err
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{n}}
	return yaml.Marshal(doc)
}

// ToNode converts v to a YAML node tree.
func ToNode(v variant.Variant) (*yaml.Node, error) {
	n, err := toNode(v)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func flow(tag string, content []*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Tag: tag, Content: content}
}

func local(tag variant.Tag) string { return "!" + tag.String() }

func toNode(v variant.Variant) (*yaml.Node, *errors.Error) {
	tag := v.Type()
	if _, ok := geometrySize[tag]; ok {
		return flow(local(tag), floatNodes(flattenGeometry(v))), nil
	}

	switch tag {
	case variant.TagNil:
		return scalar("!!null", "null"), nil
	case variant.TagBool:
		return scalar("!!bool", strconv.FormatBool(v.ToBool())), nil
	case variant.TagInt:
		return scalar("!!int", strconv.FormatInt(v.ToInt64(), 10)), nil
	case variant.TagFloat:
		return scalar("!!float", formatFloat(v.ToFloat64(), 64)), nil
	case variant.TagString:
		n := &yaml.Node{}
		if err := n.Encode(v.ToString()); err != nil {
			return nil, errors.From(err)
		}
		return n, nil
	case variant.TagNodePath:
		return scalar(local(tag), string(v.ToNodePath())), nil
	case variant.TagRid:
		return scalar(local(tag), strconv.FormatUint(uint64(v.ToRid()), 10)), nil
	case variant.TagObject:
		return nil, errors.Custom("cannot encode object %s as yaml", v)

	case variant.TagArray:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range v.ToArray().Iter() {
			c, err := toNode(item)
			if err != nil {
				return nil, errors.InvalidItem(i, err)
			}
			seq.Content = append(seq.Content, c)
		}
		return seq, nil

	case variant.TagDictionary:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, val := range v.ToDictionary().Iter() {
			kn, err := toNode(k)
			if err != nil {
				return nil, errors.InvalidField(k.String(), err)
			}
			vn, err := toNode(val)
			if err != nil {
				return nil, errors.InvalidField(k.String(), err)
			}
			m.Content = append(m.Content, kn, vn)
		}
		return m, nil

	case variant.TagByteArray:
		return scalar("!!binary", base64.StdEncoding.EncodeToString(v.ToByteArray())), nil
	case variant.TagInt32Array:
		xs := v.ToInt32Array()
		nodes := make([]*yaml.Node, len(xs))
		for i, x := range xs {
			nodes[i] = scalar("!!int", strconv.FormatInt(int64(x), 10))
		}
		return flow(local(tag), nodes), nil
	case variant.TagFloat32Array:
		return flow(local(tag), floatNodes(v.ToFloat32Array())), nil
	case variant.TagStringArray:
		seq := flow(local(tag), nil)
		for _, s := range v.ToStringArray() {
			n := &yaml.Node{}
			if err := n.Encode(s); err != nil {
				return nil, errors.From(err)
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	case variant.TagVector2Array:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: local(tag)}
		for _, x := range v.ToVector2Array() {
			seq.Content = append(seq.Content, flow("", floatNodes([]float32{x.X, x.Y})))
		}
		return seq, nil
	case variant.TagVector3Array:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: local(tag)}
		for _, x := range v.ToVector3Array() {
			seq.Content = append(seq.Content, flow("", floatNodes(flatVec3(x))))
		}
		return seq, nil
	case variant.TagColorArray:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: local(tag)}
		for _, c := range v.ToColorArray() {
			seq.Content = append(seq.Content, flow("", floatNodes([]float32{c.R, c.G, c.B, c.A})))
		}
		return seq, nil
	}

	return nil, errors.Custom("cannot encode %s as yaml", tag)
}

func floatNodes(fs []float32) []*yaml.Node {
	out := make([]*yaml.Node, len(fs))
	for i, f := range fs {
		out[i] = scalar("!!float", formatFloat(float64(f), 32))
	}
	return out
}

// formatFloat keeps a decimal point so the value reads back as a float.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
