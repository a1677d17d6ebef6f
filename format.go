package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders any value in a readable form.
func (v Variant) String() string {
	switch v.tag {
	case TagNil:
		return "Null"
	case TagBool:
		return strconv.FormatBool(v.word != 0)
	case TagInt:
		return strconv.FormatInt(int64(v.word), 10)
	case TagFloat:
		return strconv.FormatFloat(v.ToFloat64(), 'g', -1, 64)
	case TagString:
		return v.box.data.(string)
	case TagNodePath:
		return string(v.box.data.(NodePath))
	case TagRid:
		return Rid(v.word).String()
	case TagObject:
		obj := v.box.data.(Object)
		return fmt.Sprintf("[%s:%d]", currentRuntime().ClassName(obj), obj.InstanceID())
	case TagArray:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.box.data.(*Array).Iter() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(item.String())
		}
		b.WriteByte(']')
		return b.String()
	case TagDictionary:
		var b strings.Builder
		b.WriteByte('{')
		first := true
		for k, val := range v.box.data.(*Dictionary).Iter() {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(k.String())
			b.WriteString(": ")
			b.WriteString(val.String())
		}
		b.WriteByte('}')
		return b.String()
	case TagVector2:
		return loadVector2(v.geo[:]).String()
	case TagRect2:
		return loadRect2(v.geo[:]).String()
	case TagVector3:
		return loadVector3(v.geo[:]).String()
	case TagTransform2D:
		return loadTransform2D(v.geo[:]).String()
	case TagPlane:
		return loadPlane(v.geo[:]).String()
	case TagQuat:
		return loadQuat(v.geo[:]).String()
	case TagAabb:
		return loadAabb(v.geo[:]).String()
	case TagBasis:
		return loadBasis(v.geo[:]).String()
	case TagTransform:
		return loadTransform(v.geo[:]).String()
	case TagColor:
		return loadColor(v.geo[:]).String()
	}
	return fmt.Sprint(v.box.data)
}

// Interface returns the natural Go value of v: nil, bool, int64, float64,
// string, a geometry struct, NodePath, Rid, Object, []any for arrays,
// map[string]any for dictionaries (keys rendered with String) and a copy of
// the typed array.
func (v Variant) Interface() any {
	switch v.tag {
	case TagNil:
		return nil
	case TagBool:
		return v.ToBool()
	case TagInt:
		return v.ToInt64()
	case TagFloat:
		return v.ToFloat64()
	case TagString:
		return v.ToString()
	case TagNodePath:
		return v.ToNodePath()
	case TagRid:
		return v.ToRid()
	case TagObject:
		return v.ToObject()
	case TagArray:
		arr := v.box.data.(*Array)
		out := make([]any, 0, arr.Len())
		for _, item := range arr.Iter() {
			out = append(out, item.Interface())
		}
		return out
	case TagDictionary:
		d := v.box.data.(*Dictionary)
		out := make(map[string]any, d.Len())
		for k, val := range d.Iter() {
			out[k.String()] = val.Interface()
		}
		return out
	case TagVector2:
		return v.ToVector2()
	case TagRect2:
		return v.ToRect2()
	case TagVector3:
		return v.ToVector3()
	case TagTransform2D:
		return v.ToTransform2D()
	case TagPlane:
		return v.ToPlane()
	case TagQuat:
		return v.ToQuat()
	case TagAabb:
		return v.ToAabb()
	case TagBasis:
		return v.ToBasis()
	case TagTransform:
		return v.ToTransform()
	case TagColor:
		return v.ToColor()
	case TagByteArray:
		return v.ToByteArray()
	case TagInt32Array:
		return v.ToInt32Array()
	case TagFloat32Array:
		return v.ToFloat32Array()
	case TagStringArray:
		return v.ToStringArray()
	case TagVector2Array:
		return v.ToVector2Array()
	case TagVector3Array:
		return v.ToVector3Array()
	case TagColorArray:
		return v.ToColorArray()
	}
	return nil
}
