package optional_test

import (
	"strconv"
	"testing"

	"github.com/authcorp/optional"
)

func TestMap(t *testing.T) {
	t.Run("Map on Some applies function", func(t *testing.T) {
		o := optional.Some(21)
		mapped := optional.Map(o, func(x int) int { return x * 2 })
		if mapped.UnwrapOr(0) != 42 {
			t.Error("expected Some(42)")
		}
	})

	t.Run("Map on None never invokes function", func(t *testing.T) {
		mapped := optional.Map(optional.None[int](), func(x int) string {
			t.Fatal("fn must not run on None")
			return ""
		})
		if mapped.IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("Map changing the value type", func(t *testing.T) {
		o := optional.Map(optional.Some(42), strconv.Itoa)
		if o.UnwrapOr("") != "42" {
			t.Error("expected Some(\"42\")")
		}
	})

	t.Run("Map result collapses nil", func(t *testing.T) {
		o := optional.Map(optional.Some(1), func(int) *int { return nil })
		if o.IsSome() {
			t.Error("expected nil result to collapse to None")
		}
	})

	t.Run("method Map keeps the value type", func(t *testing.T) {
		o := optional.Some(2).Map(func(x int) int { return x + 1 })
		if o.UnwrapOr(0) != 3 {
			t.Error("expected Some(3)")
		}
	})
}

func TestFlatMap(t *testing.T) {
	t.Run("FlatMap on Some is exactly fn(value)", func(t *testing.T) {
		fn := func(x int) optional.Option[int] { return optional.Some(x * 2) }
		got := optional.FlatMap(optional.Some(42), fn)
		if !optional.Equal(got, fn(42)) {
			t.Error("expected FlatMap(Some(v), fn) == fn(v)")
		}
	})

	t.Run("FlatMap propagates an inner None", func(t *testing.T) {
		got := optional.FlatMap(optional.Some(1), func(int) optional.Option[int] {
			return optional.None[int]()
		})
		if got.IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("FlatMap on None never invokes function", func(t *testing.T) {
		got := optional.FlatMap(optional.None[int](), func(int) optional.Option[int] {
			t.Fatal("fn must not run on None")
			return optional.None[int]()
		})
		if got.IsSome() {
			t.Error("expected None")
		}
	})
}

func TestFlatten(t *testing.T) {
	t.Run("Flatten None is None", func(t *testing.T) {
		if optional.Flatten(optional.None[optional.Option[int]]()).IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("Flatten Some(None) is None", func(t *testing.T) {
		if optional.Flatten(optional.Some(optional.None[int]())).IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("Flatten Some(Some(v)) is Some(v)", func(t *testing.T) {
		got := optional.Flatten(optional.Some(optional.Some(7)))
		if got.UnwrapOr(0) != 7 {
			t.Error("expected Some(7)")
		}
	})
}

func TestMatchReturning(t *testing.T) {
	t.Run("Match applies the Some branch", func(t *testing.T) {
		got := optional.Match(optional.Some(6),
			func(v int) string { return strconv.Itoa(v) },
			func() string {
				t.Fatal("None branch must not run")
				return ""
			},
		)
		if got != "6" {
			t.Errorf("expected %q, got %q", "6", got)
		}
	})

	t.Run("Match evaluates the None branch lazily", func(t *testing.T) {
		got := optional.Match(optional.None[int](),
			func(v int) string {
				t.Fatal("Some branch must not run")
				return ""
			},
			func() string { return "absent" },
		)
		if got != "absent" {
			t.Errorf("expected %q, got %q", "absent", got)
		}
	})

	t.Run("MatchOr supplies the fallback eagerly", func(t *testing.T) {
		double := func(v int) int { return v * 2 }
		if optional.MatchOr(optional.Some(4), double, -1) != 8 {
			t.Error("expected 8")
		}
		if optional.MatchOr(optional.None[int](), double, -1) != -1 {
			t.Error("expected fallback")
		}
	})
}

func TestInspect(t *testing.T) {
	t.Run("Inspect observes without altering the chain", func(t *testing.T) {
		var seen int
		o := optional.Some(5).Inspect(func(v int) { seen = v })
		if seen != 5 {
			t.Error("expected side effect to observe 5")
		}
		if !optional.Equal(o, optional.Some(5)) {
			t.Error("expected option unchanged")
		}
	})

	t.Run("Inspect skips the hook on None", func(t *testing.T) {
		optional.None[int]().Inspect(func(int) {
			t.Fatal("hook must not run on None")
		})
	})

	t.Run("InspectNone fires only on None", func(t *testing.T) {
		fired := false
		o := optional.None[int]().InspectNone(func() { fired = true })
		if !fired {
			t.Error("expected hook to fire")
		}
		if o.IsSome() {
			t.Error("expected option unchanged")
		}
		optional.Some(1).InspectNone(func() {
			t.Fatal("hook must not run on Some")
		})
	})
}

func TestFilter(t *testing.T) {
	t.Run("Filter keeps matching values", func(t *testing.T) {
		filtered := optional.Some(42).Filter(func(x int) bool { return x > 0 })
		if filtered.UnwrapOr(0) != 42 {
			t.Error("expected Some(42)")
		}
	})

	t.Run("Filter removes non-matching values", func(t *testing.T) {
		filtered := optional.Some(42).Filter(func(x int) bool { return x < 0 })
		if filtered.IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("Filter on None returns None", func(t *testing.T) {
		filtered := optional.None[int]().Filter(func(int) bool { return true })
		if filtered.IsSome() {
			t.Error("expected None")
		}
	})
}

func TestLogicalCombination(t *testing.T) {
	t.Run("And yields the second option only when the first is Some", func(t *testing.T) {
		if got := optional.And(optional.Some(1), optional.Some("x")); got.UnwrapOr("") != "x" {
			t.Error("expected Some(\"x\")")
		}
		if optional.And(optional.None[int](), optional.Some("x")).IsSome() {
			t.Error("expected None")
		}
		if optional.And(optional.Some(1), optional.None[string]()).IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("Or prefers the receiver", func(t *testing.T) {
		if optional.Some(1).Or(optional.Some(2)).UnwrapOr(0) != 1 {
			t.Error("expected Some(1)")
		}
		if optional.None[int]().Or(optional.Some(2)).UnwrapOr(0) != 2 {
			t.Error("expected Some(2)")
		}
	})

	t.Run("OrElse does not invoke producer on Some", func(t *testing.T) {
		got := optional.Some(1).OrElse(func() optional.Option[int] {
			t.Fatal("producer must not run when value is present")
			return optional.None[int]()
		})
		if got.UnwrapOr(0) != 1 {
			t.Error("expected Some(1)")
		}
		fallback := optional.None[int]().OrElse(func() optional.Option[int] {
			return optional.Some(3)
		})
		if fallback.UnwrapOr(0) != 3 {
			t.Error("expected Some(3)")
		}
	})

	t.Run("Xor requires exactly one Some", func(t *testing.T) {
		if optional.Some(1).Xor(optional.None[int]()).UnwrapOr(0) != 1 {
			t.Error("expected Some(1)")
		}
		if optional.None[int]().Xor(optional.Some(2)).UnwrapOr(0) != 2 {
			t.Error("expected Some(2)")
		}
		if optional.Some(1).Xor(optional.Some(2)).IsSome() {
			t.Error("expected None for two Somes")
		}
		if optional.None[int]().Xor(optional.None[int]()).IsSome() {
			t.Error("expected None for two Nones")
		}
	})
}
