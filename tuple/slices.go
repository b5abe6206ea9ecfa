package tuple

// Zip combines two slices into a slice of pairs, truncating to the shorter
// length.
func Zip[A, B any](as []A, bs []B) []Pair[A, B] {
	n := min(len(as), len(bs))
	result := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		result[i] = Pair[A, B]{First: as[i], Second: bs[i]}
	}
	return result
}

// Unzip splits a slice of pairs into two slices.
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i] = p.First
		bs[i] = p.Second
	}
	return as, bs
}

// ZipWith combines two slices using a function, truncating to the shorter
// length.
func ZipWith[A, B, C any](as []A, bs []B, fn func(A, B) C) []C {
	n := min(len(as), len(bs))
	result := make([]C, n)
	for i := 0; i < n; i++ {
		result[i] = fn(as[i], bs[i])
	}
	return result
}

// Zip3 combines three slices into a slice of triples, truncating to the
// shortest length.
func Zip3[A, B, C any](as []A, bs []B, cs []C) []Triple[A, B, C] {
	n := min(len(as), len(bs), len(cs))
	result := make([]Triple[A, B, C], n)
	for i := 0; i < n; i++ {
		result[i] = Triple[A, B, C]{First: as[i], Second: bs[i], Third: cs[i]}
	}
	return result
}

// Unzip3 splits a slice of triples into three slices.
func Unzip3[A, B, C any](triples []Triple[A, B, C]) ([]A, []B, []C) {
	as := make([]A, len(triples))
	bs := make([]B, len(triples))
	cs := make([]C, len(triples))
	for i, t := range triples {
		as[i] = t.First
		bs[i] = t.Second
		cs[i] = t.Third
	}
	return as, bs, cs
}

// Enumerate returns pairs of (index, value) for a slice.
func Enumerate[T any](items []T) []Pair[int, T] {
	result := make([]Pair[int, T], len(items))
	for i, item := range items {
		result[i] = Pair[int, T]{First: i, Second: item}
	}
	return result
}
