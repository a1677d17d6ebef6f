package variant

// tuple marks the TupleN types. Shape errors surface unwrapped.
type tuple struct{}

// Fixed-arity tuples. They encode as an Array and decode only from an Array
// of the same length.

type Tuple1[A any] struct {
	tuple
	V0 A
}

type Tuple2[A, B any] struct {
	tuple
	V0 A
	V1 B
}

type Tuple3[A, B, C any] struct {
	tuple
	V0 A
	V1 B
	V2 C
}

type Tuple4[A, B, C, D any] struct {
	tuple
	V0 A
	V1 B
	V2 C
	V3 D
}

type Tuple5[A, B, C, D, E any] struct {
	tuple
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

type Tuple6[A, B, C, D, E, F any] struct {
	tuple
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	tuple
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	tuple
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
}

type Tuple9[A, B, C, D, E, F, G, H, I any] struct {
	tuple
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
}

type Tuple10[A, B, C, D, E, F, G, H, I, J any] struct {
	tuple
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
	V9 J
}

type Tuple11[A, B, C, D, E, F, G, H, I, J, K any] struct {
	tuple
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
	V9 J
	V10 K
}

type Tuple12[A, B, C, D, E, F, G, H, I, J, K, L any] struct {
	tuple
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
	V9 J
	V10 K
	V11 L
}
