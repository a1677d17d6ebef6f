package vyaml

import "github.com/wippyai/variant"

var geometrySize = map[variant.Tag]int{
	variant.TagVector2:     2,
	variant.TagRect2:       4,
	variant.TagVector3:     3,
	variant.TagTransform2D: 6,
	variant.TagPlane:       4,
	variant.TagQuat:        4,
	variant.TagAabb:        6,
	variant.TagBasis:       9,
	variant.TagTransform:   12,
	variant.TagColor:       4,
}

func vec2(f []float32) variant.Vector2 { return variant.Vector2{X: f[0], Y: f[1]} }
func vec3(f []float32) variant.Vector3 { return variant.Vector3{X: f[0], Y: f[1], Z: f[2]} }

func basis(f []float32) variant.Basis {
	return variant.Basis{Elements: [3]variant.Vector3{vec3(f[0:]), vec3(f[3:]), vec3(f[6:])}}
}

// buildGeometry assembles a geometry value from its components in field
// order. f holds exactly geometrySize[tag] values.
func buildGeometry(tag variant.Tag, f []float32) variant.Variant {
	switch tag {
	case variant.TagVector2:
		return variant.FromVector2(vec2(f))
	case variant.TagRect2:
		return variant.FromRect2(variant.Rect2{Position: vec2(f[0:]), Size: vec2(f[2:])})
	case variant.TagVector3:
		return variant.FromVector3(vec3(f))
	case variant.TagTransform2D:
		return variant.FromTransform2D(variant.Transform2D{X: vec2(f[0:]), Y: vec2(f[2:]), Origin: vec2(f[4:])})
	case variant.TagPlane:
		return variant.FromPlane(variant.Plane{Normal: vec3(f), D: f[3]})
	case variant.TagQuat:
		return variant.FromQuat(variant.Quat{X: f[0], Y: f[1], Z: f[2], W: f[3]})
	case variant.TagAabb:
		return variant.FromAabb(variant.Aabb{Position: vec3(f[0:]), Size: vec3(f[3:])})
	case variant.TagBasis:
		return variant.FromBasis(basis(f))
	case variant.TagTransform:
		return variant.FromTransform(variant.Transform{Basis: basis(f), Origin: vec3(f[9:])})
	case variant.TagColor:
		return variant.FromColor(variant.Color{R: f[0], G: f[1], B: f[2], A: f[3]})
	}
	panic("vyaml: not a geometry tag: " + tag.String())
}

func flatVec3(v variant.Vector3) []float32 { return []float32{v.X, v.Y, v.Z} }

func flatBasis(b variant.Basis) []float32 {
	out := make([]float32, 0, 9)
	for _, row := range b.Elements {
		out = append(out, flatVec3(row)...)
	}
	return out
}

// flattenGeometry is the inverse of buildGeometry.
func flattenGeometry(v variant.Variant) []float32 {
	switch v.Type() {
	case variant.TagVector2:
		x := v.ToVector2()
		return []float32{x.X, x.Y}
	case variant.TagRect2:
		r := v.ToRect2()
		return []float32{r.Position.X, r.Position.Y, r.Size.X, r.Size.Y}
	case variant.TagVector3:
		return flatVec3(v.ToVector3())
	case variant.TagTransform2D:
		t := v.ToTransform2D()
		return []float32{t.X.X, t.X.Y, t.Y.X, t.Y.Y, t.Origin.X, t.Origin.Y}
	case variant.TagPlane:
		p := v.ToPlane()
		return append(flatVec3(p.Normal), p.D)
	case variant.TagQuat:
		q := v.ToQuat()
		return []float32{q.X, q.Y, q.Z, q.W}
	case variant.TagAabb:
		a := v.ToAabb()
		return append(flatVec3(a.Position), flatVec3(a.Size)...)
	case variant.TagBasis:
		return flatBasis(v.ToBasis())
	case variant.TagTransform:
		t := v.ToTransform()
		return append(flatBasis(t.Basis), flatVec3(t.Origin)...)
	case variant.TagColor:
		c := v.ToColor()
		return []float32{c.R, c.G, c.B, c.A}
	}
	return nil
}
