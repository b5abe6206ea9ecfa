// Package tuple provides generic tuple types of width 2 through 8,
// backing the all-or-nothing option combinators.
package tuple

// Pair is a generic 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a new Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the pair's values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a new pair with swapped values.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// MapFirst applies fn to the first value.
func MapFirst[A, B, C any](p Pair[A, B], fn func(A) C) Pair[C, B] {
	return Pair[C, B]{First: fn(p.First), Second: p.Second}
}

// MapSecond applies fn to the second value.
func MapSecond[A, B, C any](p Pair[A, B], fn func(B) C) Pair[A, C] {
	return Pair[A, C]{First: p.First, Second: fn(p.Second)}
}

// MapBoth applies functions to both values.
func MapBoth[A, B, C, D any](p Pair[A, B], fnA func(A) C, fnB func(B) D) Pair[C, D] {
	return Pair[C, D]{First: fnA(p.First), Second: fnB(p.Second)}
}

// Triple is a generic 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// NewTriple creates a new Triple.
func NewTriple[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

// Unpack returns the triple's values.
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}

// ToPair returns the first two values as a Pair.
func (t Triple[A, B, C]) ToPair() Pair[A, B] {
	return Pair[A, B]{First: t.First, Second: t.Second}
}

// Quad is a generic 4-tuple.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// NewQuad creates a new Quad.
func NewQuad[A, B, C, D any](first A, second B, third C, fourth D) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{First: first, Second: second, Third: third, Fourth: fourth}
}

// Unpack returns the quad's values.
func (q Quad[A, B, C, D]) Unpack() (A, B, C, D) {
	return q.First, q.Second, q.Third, q.Fourth
}

// Quint is a generic 5-tuple.
type Quint[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

// NewQuint creates a new Quint.
func NewQuint[A, B, C, D, E any](first A, second B, third C, fourth D, fifth E) Quint[A, B, C, D, E] {
	return Quint[A, B, C, D, E]{First: first, Second: second, Third: third, Fourth: fourth, Fifth: fifth}
}

// Unpack returns the quint's values.
func (q Quint[A, B, C, D, E]) Unpack() (A, B, C, D, E) {
	return q.First, q.Second, q.Third, q.Fourth, q.Fifth
}

// Sextet is a generic 6-tuple.
type Sextet[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

// NewSextet creates a new Sextet.
func NewSextet[A, B, C, D, E, F any](first A, second B, third C, fourth D, fifth E, sixth F) Sextet[A, B, C, D, E, F] {
	return Sextet[A, B, C, D, E, F]{First: first, Second: second, Third: third, Fourth: fourth, Fifth: fifth, Sixth: sixth}
}

// Unpack returns the sextet's values.
func (s Sextet[A, B, C, D, E, F]) Unpack() (A, B, C, D, E, F) {
	return s.First, s.Second, s.Third, s.Fourth, s.Fifth, s.Sixth
}

// Septet is a generic 7-tuple.
type Septet[A, B, C, D, E, F, G any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
}

// NewSeptet creates a new Septet.
func NewSeptet[A, B, C, D, E, F, G any](first A, second B, third C, fourth D, fifth E, sixth F, seventh G) Septet[A, B, C, D, E, F, G] {
	return Septet[A, B, C, D, E, F, G]{First: first, Second: second, Third: third, Fourth: fourth, Fifth: fifth, Sixth: sixth, Seventh: seventh}
}

// Unpack returns the septet's values.
func (s Septet[A, B, C, D, E, F, G]) Unpack() (A, B, C, D, E, F, G) {
	return s.First, s.Second, s.Third, s.Fourth, s.Fifth, s.Sixth, s.Seventh
}

// Octet is a generic 8-tuple.
type Octet[A, B, C, D, E, F, G, H any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
	Eighth  H
}

// NewOctet creates a new Octet.
func NewOctet[A, B, C, D, E, F, G, H any](first A, second B, third C, fourth D, fifth E, sixth F, seventh G, eighth H) Octet[A, B, C, D, E, F, G, H] {
	return Octet[A, B, C, D, E, F, G, H]{First: first, Second: second, Third: third, Fourth: fourth, Fifth: fifth, Sixth: sixth, Seventh: seventh, Eighth: eighth}
}

// Unpack returns the octet's values.
func (o Octet[A, B, C, D, E, F, G, H]) Unpack() (A, B, C, D, E, F, G, H) {
	return o.First, o.Second, o.Third, o.Fourth, o.Fifth, o.Sixth, o.Seventh, o.Eighth
}
