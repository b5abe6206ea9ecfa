package optional_test

import (
	"testing"

	"github.com/authcorp/optional"
	"github.com/authcorp/optional/tuple"
)

func TestZipEager(t *testing.T) {
	t.Run("Zip of two Somes pairs the values", func(t *testing.T) {
		got := optional.Zip(optional.Some(1), optional.Some(true))
		pair, ok := got.Unpack()
		if !ok {
			t.Fatal("expected Some")
		}
		if pair.First != 1 || pair.Second != true {
			t.Errorf("unexpected pair %v", pair)
		}
	})

	t.Run("Zip with any None is None", func(t *testing.T) {
		if optional.Zip(optional.None[int](), optional.Some(true)).IsSome() {
			t.Error("expected None when first is None")
		}
		if optional.Zip(optional.Some(1), optional.None[bool]()).IsSome() {
			t.Error("expected None when second is None")
		}
	})

	t.Run("Zip3 through Zip8 require every input", func(t *testing.T) {
		some := optional.Some(1)
		none := optional.None[int]()

		if v, ok := optional.Zip3(some, some, some).Unpack(); !ok || v != tuple.NewTriple(1, 1, 1) {
			t.Error("Zip3 all-Some failed")
		}
		if optional.Zip3(some, none, some).IsSome() {
			t.Error("Zip3 with a None must be None")
		}

		if v, ok := optional.Zip4(some, some, some, some).Unpack(); !ok || v != tuple.NewQuad(1, 1, 1, 1) {
			t.Error("Zip4 all-Some failed")
		}
		if optional.Zip4(some, some, some, none).IsSome() {
			t.Error("Zip4 with a None must be None")
		}

		if v, ok := optional.Zip5(some, some, some, some, some).Unpack(); !ok || v != tuple.NewQuint(1, 1, 1, 1, 1) {
			t.Error("Zip5 all-Some failed")
		}
		if optional.Zip5(none, some, some, some, some).IsSome() {
			t.Error("Zip5 with a None must be None")
		}

		if v, ok := optional.Zip6(some, some, some, some, some, some).Unpack(); !ok || v != tuple.NewSextet(1, 1, 1, 1, 1, 1) {
			t.Error("Zip6 all-Some failed")
		}
		if optional.Zip6(some, some, none, some, some, some).IsSome() {
			t.Error("Zip6 with a None must be None")
		}

		if v, ok := optional.Zip7(some, some, some, some, some, some, some).Unpack(); !ok || v != tuple.NewSeptet(1, 1, 1, 1, 1, 1, 1) {
			t.Error("Zip7 all-Some failed")
		}
		if optional.Zip7(some, some, some, some, some, some, none).IsSome() {
			t.Error("Zip7 with a None must be None")
		}

		if v, ok := optional.Zip8(some, some, some, some, some, some, some, some).Unpack(); !ok || v != tuple.NewOctet(1, 1, 1, 1, 1, 1, 1, 1) {
			t.Error("Zip8 all-Some failed")
		}
		if optional.Zip8(some, some, some, some, none, some, some, some).IsSome() {
			t.Error("Zip8 with a None must be None")
		}
	})
}

func TestZipLazy(t *testing.T) {
	t.Run("producers run left to right and stop at the first None", func(t *testing.T) {
		var order []string
		got := optional.Zip3Func(
			func() optional.Option[int] {
				order = append(order, "a")
				return optional.Some(1)
			},
			func() optional.Option[string] {
				order = append(order, "b")
				return optional.None[string]()
			},
			func() optional.Option[bool] {
				order = append(order, "c")
				return optional.Some(true)
			},
		)
		if got.IsSome() {
			t.Error("expected None")
		}
		if len(order) != 2 || order[0] != "a" || order[1] != "b" {
			t.Errorf("expected producers [a b] to run in order, got %v", order)
		}
	})

	t.Run("ZipFunc pairs the produced values when both are Some", func(t *testing.T) {
		got := optional.ZipFunc(
			func() optional.Option[int] { return optional.Some(2) },
			func() optional.Option[string] { return optional.Some("x") },
		)
		pair, ok := got.Unpack()
		if !ok || pair.First != 2 || pair.Second != "x" {
			t.Errorf("expected Some((2, x)), got %v", got)
		}
	})

	t.Run("ZipFunc does not run the second producer when the first is None", func(t *testing.T) {
		got := optional.ZipFunc(
			func() optional.Option[int] { return optional.None[int]() },
			func() optional.Option[string] {
				t.Fatal("second producer must not run")
				return optional.None[string]()
			},
		)
		if got.IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("Zip8Func runs every producer exactly once on the all-Some path", func(t *testing.T) {
		calls := 0
		produce := func() optional.Option[int] {
			calls++
			return optional.Some(calls)
		}
		got := optional.Zip8Func(produce, produce, produce, produce, produce, produce, produce, produce)
		v, ok := got.Unpack()
		if !ok {
			t.Fatal("expected Some")
		}
		if calls != 8 {
			t.Errorf("expected 8 producer calls, got %d", calls)
		}
		if v != tuple.NewOctet(1, 2, 3, 4, 5, 6, 7, 8) {
			t.Errorf("unexpected octet %v", v)
		}
	})

	t.Run("short-circuit holds at the widest arity", func(t *testing.T) {
		calls := 0
		someProduce := func() optional.Option[int] {
			calls++
			return optional.Some(calls)
		}
		noneProduce := func() optional.Option[int] {
			calls++
			return optional.None[int]()
		}
		never := func() optional.Option[int] {
			t.Fatal("producer past the first None must not run")
			return optional.None[int]()
		}
		got := optional.Zip8Func(someProduce, someProduce, noneProduce, never, never, never, never, never)
		if got.IsSome() {
			t.Error("expected None")
		}
		if calls != 3 {
			t.Errorf("expected 3 producer calls, got %d", calls)
		}
	})
}
