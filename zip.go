package optional

import "github.com/authcorp/optional/tuple"

// The Zip family combines 2 to 8 options into a single option of a tuple:
// Some of all the unwrapped values iff every input is Some, None otherwise.
// The eager forms take already-constructed options. The Func forms take
// zero-argument producers and invoke them strictly left to right, stopping
// at the first producer that returns None; later producers are never
// invoked, which callers may rely on for side-effect ordering and for
// skipping expensive computations. Every arity behaves identically apart
// from tuple width.

// Zip combines two options into an option of a Pair.
func Zip[A, B any](a Option[A], b Option[B]) Option[tuple.Pair[A, B]] {
	if a.present && b.present {
		return Some(tuple.NewPair(a.value, b.value))
	}
	return Option[tuple.Pair[A, B]]{}
}

// Zip3 combines three options into an option of a Triple.
func Zip3[A, B, C any](a Option[A], b Option[B], c Option[C]) Option[tuple.Triple[A, B, C]] {
	if a.present && b.present && c.present {
		return Some(tuple.NewTriple(a.value, b.value, c.value))
	}
	return Option[tuple.Triple[A, B, C]]{}
}

// Zip4 combines four options into an option of a Quad.
func Zip4[A, B, C, D any](a Option[A], b Option[B], c Option[C], d Option[D]) Option[tuple.Quad[A, B, C, D]] {
	if a.present && b.present && c.present && d.present {
		return Some(tuple.NewQuad(a.value, b.value, c.value, d.value))
	}
	return Option[tuple.Quad[A, B, C, D]]{}
}

// Zip5 combines five options into an option of a Quint.
func Zip5[A, B, C, D, E any](a Option[A], b Option[B], c Option[C], d Option[D], e Option[E]) Option[tuple.Quint[A, B, C, D, E]] {
	if a.present && b.present && c.present && d.present && e.present {
		return Some(tuple.NewQuint(a.value, b.value, c.value, d.value, e.value))
	}
	return Option[tuple.Quint[A, B, C, D, E]]{}
}

// Zip6 combines six options into an option of a Sextet.
func Zip6[A, B, C, D, E, F any](a Option[A], b Option[B], c Option[C], d Option[D], e Option[E], f Option[F]) Option[tuple.Sextet[A, B, C, D, E, F]] {
	if a.present && b.present && c.present && d.present && e.present && f.present {
		return Some(tuple.NewSextet(a.value, b.value, c.value, d.value, e.value, f.value))
	}
	return Option[tuple.Sextet[A, B, C, D, E, F]]{}
}

// Zip7 combines seven options into an option of a Septet.
func Zip7[A, B, C, D, E, F, G any](a Option[A], b Option[B], c Option[C], d Option[D], e Option[E], f Option[F], g Option[G]) Option[tuple.Septet[A, B, C, D, E, F, G]] {
	if a.present && b.present && c.present && d.present && e.present && f.present && g.present {
		return Some(tuple.NewSeptet(a.value, b.value, c.value, d.value, e.value, f.value, g.value))
	}
	return Option[tuple.Septet[A, B, C, D, E, F, G]]{}
}

// Zip8 combines eight options into an option of an Octet.
func Zip8[A, B, C, D, E, F, G, H any](a Option[A], b Option[B], c Option[C], d Option[D], e Option[E], f Option[F], g Option[G], h Option[H]) Option[tuple.Octet[A, B, C, D, E, F, G, H]] {
	if a.present && b.present && c.present && d.present && e.present && f.present && g.present && h.present {
		return Some(tuple.NewOctet(a.value, b.value, c.value, d.value, e.value, f.value, g.value, h.value))
	}
	return Option[tuple.Octet[A, B, C, D, E, F, G, H]]{}
}

// ZipFunc is the lazy form of Zip: producers run left to right and the
// first None stops evaluation.
func ZipFunc[A, B any](a func() Option[A], b func() Option[B]) Option[tuple.Pair[A, B]] {
	av, ok := a().Unpack()
	if !ok {
		return Option[tuple.Pair[A, B]]{}
	}
	bv, ok := b().Unpack()
	if !ok {
		return Option[tuple.Pair[A, B]]{}
	}
	return Some(tuple.NewPair(av, bv))
}

// Zip3Func is the lazy form of Zip3.
func Zip3Func[A, B, C any](a func() Option[A], b func() Option[B], c func() Option[C]) Option[tuple.Triple[A, B, C]] {
	av, ok := a().Unpack()
	if !ok {
		return Option[tuple.Triple[A, B, C]]{}
	}
	bv, ok := b().Unpack()
	if !ok {
		return Option[tuple.Triple[A, B, C]]{}
	}
	cv, ok := c().Unpack()
	if !ok {
		return Option[tuple.Triple[A, B, C]]{}
	}
	return Some(tuple.NewTriple(av, bv, cv))
}

// Zip4Func is the lazy form of Zip4.
func Zip4Func[A, B, C, D any](a func() Option[A], b func() Option[B], c func() Option[C], d func() Option[D]) Option[tuple.Quad[A, B, C, D]] {
	av, ok := a().Unpack()
	if !ok {
		return Option[tuple.Quad[A, B, C, D]]{}
	}
	bv, ok := b().Unpack()
	if !ok {
		return Option[tuple.Quad[A, B, C, D]]{}
	}
	cv, ok := c().Unpack()
	if !ok {
		return Option[tuple.Quad[A, B, C, D]]{}
	}
	dv, ok := d().Unpack()
	if !ok {
		return Option[tuple.Quad[A, B, C, D]]{}
	}
	return Some(tuple.NewQuad(av, bv, cv, dv))
}

// Zip5Func is the lazy form of Zip5.
func Zip5Func[A, B, C, D, E any](a func() Option[A], b func() Option[B], c func() Option[C], d func() Option[D], e func() Option[E]) Option[tuple.Quint[A, B, C, D, E]] {
	av, ok := a().Unpack()
	if !ok {
		return Option[tuple.Quint[A, B, C, D, E]]{}
	}
	bv, ok := b().Unpack()
	if !ok {
		return Option[tuple.Quint[A, B, C, D, E]]{}
	}
	cv, ok := c().Unpack()
	if !ok {
		return Option[tuple.Quint[A, B, C, D, E]]{}
	}
	dv, ok := d().Unpack()
	if !ok {
		return Option[tuple.Quint[A, B, C, D, E]]{}
	}
	ev, ok := e().Unpack()
	if !ok {
		return Option[tuple.Quint[A, B, C, D, E]]{}
	}
	return Some(tuple.NewQuint(av, bv, cv, dv, ev))
}

// Zip6Func is the lazy form of Zip6.
func Zip6Func[A, B, C, D, E, F any](a func() Option[A], b func() Option[B], c func() Option[C], d func() Option[D], e func() Option[E], f func() Option[F]) Option[tuple.Sextet[A, B, C, D, E, F]] {
	av, ok := a().Unpack()
	if !ok {
		return Option[tuple.Sextet[A, B, C, D, E, F]]{}
	}
	bv, ok := b().Unpack()
	if !ok {
		return Option[tuple.Sextet[A, B, C, D, E, F]]{}
	}
	cv, ok := c().Unpack()
	if !ok {
		return Option[tuple.Sextet[A, B, C, D, E, F]]{}
	}
	dv, ok := d().Unpack()
	if !ok {
		return Option[tuple.Sextet[A, B, C, D, E, F]]{}
	}
	ev, ok := e().Unpack()
	if !ok {
		return Option[tuple.Sextet[A, B, C, D, E, F]]{}
	}
	fv, ok := f().Unpack()
	if !ok {
		return Option[tuple.Sextet[A, B, C, D, E, F]]{}
	}
	return Some(tuple.NewSextet(av, bv, cv, dv, ev, fv))
}

// Zip7Func is the lazy form of Zip7.
func Zip7Func[A, B, C, D, E, F, G any](a func() Option[A], b func() Option[B], c func() Option[C], d func() Option[D], e func() Option[E], f func() Option[F], g func() Option[G]) Option[tuple.Septet[A, B, C, D, E, F, G]] {
	av, ok := a().Unpack()
	if !ok {
		return Option[tuple.Septet[A, B, C, D, E, F, G]]{}
	}
	bv, ok := b().Unpack()
	if !ok {
		return Option[tuple.Septet[A, B, C, D, E, F, G]]{}
	}
	cv, ok := c().Unpack()
	if !ok {
		return Option[tuple.Septet[A, B, C, D, E, F, G]]{}
	}
	dv, ok := d().Unpack()
	if !ok {
		return Option[tuple.Septet[A, B, C, D, E, F, G]]{}
	}
	ev, ok := e().Unpack()
	if !ok {
		return Option[tuple.Septet[A, B, C, D, E, F, G]]{}
	}
	fv, ok := f().Unpack()
	if !ok {
		return Option[tuple.Septet[A, B, C, D, E, F, G]]{}
	}
	gv, ok := g().Unpack()
	if !ok {
		return Option[tuple.Septet[A, B, C, D, E, F, G]]{}
	}
	return Some(tuple.NewSeptet(av, bv, cv, dv, ev, fv, gv))
}

// Zip8Func is the lazy form of Zip8.
func Zip8Func[A, B, C, D, E, F, G, H any](a func() Option[A], b func() Option[B], c func() Option[C], d func() Option[D], e func() Option[E], f func() Option[F], g func() Option[G], h func() Option[H]) Option[tuple.Octet[A, B, C, D, E, F, G, H]] {
	av, ok := a().Unpack()
	if !ok {
		return Option[tuple.Octet[A, B, C, D, E, F, G, H]]{}
	}
	bv, ok := b().Unpack()
	if !ok {
		return Option[tuple.Octet[A, B, C, D, E, F, G, H]]{}
	}
	cv, ok := c().Unpack()
	if !ok {
		return Option[tuple.Octet[A, B, C, D, E, F, G, H]]{}
	}
	dv, ok := d().Unpack()
	if !ok {
		return Option[tuple.Octet[A, B, C, D, E, F, G, H]]{}
	}
	ev, ok := e().Unpack()
	if !ok {
		return Option[tuple.Octet[A, B, C, D, E, F, G, H]]{}
	}
	fv, ok := f().Unpack()
	if !ok {
		return Option[tuple.Octet[A, B, C, D, E, F, G, H]]{}
	}
	gv, ok := g().Unpack()
	if !ok {
		return Option[tuple.Octet[A, B, C, D, E, F, G, H]]{}
	}
	hv, ok := h().Unpack()
	if !ok {
		return Option[tuple.Octet[A, B, C, D, E, F, G, H]]{}
	}
	return Some(tuple.NewOctet(av, bv, cv, dv, ev, fv, gv, hv))
}
