package variant

import (
	"fmt"
	"strconv"
)

// Geometry kinds are plain value types. They are packed into a Variant's
// inline float storage; no arithmetic is provided beyond what the runtime
// adapters need.

type Vector2 struct {
	X, Y float32
}

type Vector3 struct {
	X, Y, Z float32
}

type Rect2 struct {
	Position Vector2
	Size     Vector2
}

// Transform2D is a 2x3 matrix: two basis columns and an origin.
type Transform2D struct {
	X      Vector2
	Y      Vector2
	Origin Vector2
}

type Plane struct {
	Normal Vector3
	D      float32
}

type Quat struct {
	X, Y, Z, W float32
}

type Aabb struct {
	Position Vector3
	Size     Vector3
}

// Basis is a 3x3 matrix stored as rows.
type Basis struct {
	Elements [3]Vector3
}

type Transform struct {
	Basis  Basis
	Origin Vector3
}

type Color struct {
	R, G, B, A float32
}

// NodePath is a path to a node in the foreign scene tree. It is shared like
// a string.
type NodePath string

// Rid is an opaque server-side resource id.
type Rid uint64

var (
	IdentityTransform2D = Transform2D{X: Vector2{1, 0}, Y: Vector2{0, 1}}
	IdentityQuat        = Quat{W: 1}
	IdentityBasis       = Basis{Elements: [3]Vector3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
	IdentityTransform   = Transform{Basis: IdentityBasis}
)

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

// Dot returns the dot product of two vectors.
func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector2) store(g []float32) { g[0], g[1] = v.X, v.Y }
func (v Vector3) store(g []float32) { g[0], g[1], g[2] = v.X, v.Y, v.Z }

func (r Rect2) store(g []float32) {
	r.Position.store(g[0:])
	r.Size.store(g[2:])
}

func (t Transform2D) store(g []float32) {
	t.X.store(g[0:])
	t.Y.store(g[2:])
	t.Origin.store(g[4:])
}

func (p Plane) store(g []float32) {
	p.Normal.store(g[0:])
	g[3] = p.D
}

func (q Quat) store(g []float32) { g[0], g[1], g[2], g[3] = q.X, q.Y, q.Z, q.W }

func (a Aabb) store(g []float32) {
	a.Position.store(g[0:])
	a.Size.store(g[3:])
}

func (b Basis) store(g []float32) {
	for i, row := range b.Elements {
		row.store(g[3*i:])
	}
}

func (t Transform) store(g []float32) {
	t.Basis.store(g[0:])
	t.Origin.store(g[9:])
}

func (c Color) store(g []float32) { g[0], g[1], g[2], g[3] = c.R, c.G, c.B, c.A }

func loadVector2(g []float32) Vector2 { return Vector2{g[0], g[1]} }
func loadVector3(g []float32) Vector3 { return Vector3{g[0], g[1], g[2]} }
func loadRect2(g []float32) Rect2     { return Rect2{loadVector2(g[0:]), loadVector2(g[2:])} }
func loadPlane(g []float32) Plane     { return Plane{loadVector3(g[0:]), g[3]} }
func loadQuat(g []float32) Quat       { return Quat{g[0], g[1], g[2], g[3]} }
func loadAabb(g []float32) Aabb       { return Aabb{loadVector3(g[0:]), loadVector3(g[3:])} }
func loadColor(g []float32) Color     { return Color{g[0], g[1], g[2], g[3]} }

func loadTransform2D(g []float32) Transform2D {
	return Transform2D{loadVector2(g[0:]), loadVector2(g[2:]), loadVector2(g[4:])}
}

func loadBasis(g []float32) Basis {
	return Basis{Elements: [3]Vector3{loadVector3(g[0:]), loadVector3(g[3:]), loadVector3(g[6:])}}
}

func loadTransform(g []float32) Transform {
	return Transform{Basis: loadBasis(g[0:]), Origin: loadVector3(g[9:])}
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func (v Vector2) String() string { return "(" + ftoa(v.X) + ", " + ftoa(v.Y) + ")" }

func (v Vector3) String() string {
	return "(" + ftoa(v.X) + ", " + ftoa(v.Y) + ", " + ftoa(v.Z) + ")"
}

func (r Rect2) String() string { return r.Position.String() + ", " + r.Size.String() }

func (t Transform2D) String() string {
	return t.X.String() + ", " + t.Y.String() + ", " + t.Origin.String()
}

func (p Plane) String() string { return p.Normal.String() + ", " + ftoa(p.D) }

func (q Quat) String() string {
	return "(" + ftoa(q.X) + ", " + ftoa(q.Y) + ", " + ftoa(q.Z) + ", " + ftoa(q.W) + ")"
}

func (a Aabb) String() string { return a.Position.String() + " - " + a.Size.String() }

func (b Basis) String() string {
	return "(" + b.Elements[0].String() + ", " + b.Elements[1].String() + ", " + b.Elements[2].String() + ")"
}

func (t Transform) String() string { return t.Basis.String() + " - " + t.Origin.String() }

func (c Color) String() string {
	return ftoa(c.R) + "," + ftoa(c.G) + "," + ftoa(c.B) + "," + ftoa(c.A)
}

func (r Rid) String() string { return fmt.Sprintf("RID(%d)", uint64(r)) }
