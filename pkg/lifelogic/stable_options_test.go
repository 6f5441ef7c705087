package lifelogic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// allOptions returns every 8-bit exclusion vector, the empty set included.
func allOptions() []StableOptions {
	result := make([]StableOptions, 0, 256)
	for i := 0; i < 256; i++ {
		result = append(result, StableOptions(i))
	}
	return result
}

// allIntervals returns every valid interval over the neighbourhood.
func allIntervals() []CellUnknownNeighbourhood {
	var result []CellUnknownNeighbourhood
	for _, center := range States {
		for count := 0; count <= NeighbourhoodSize; count++ {
			for unknown := 0; count+unknown <= NeighbourhoodSize; unknown++ {
				result = append(result, CellUnknownNeighbourhood{Center: center, Count: count, Unknown: unknown})
			}
		}
	}
	return result
}

func TestStableOptions_EspressoString(t *testing.T) {
	tests := []struct {
		name string
		opts StableOptions
		want string
	}{
		{"on", OnOptions(), "00111111"},
		{"off", OffOptions(), "11000000"},
		{"impossible", ImpossibleOptions(), "11111111"},
		{"unknown", UnknownOptions(), "00000000"},
		{"dead4 excluded", NewStableOptions(Dead4), "00000100"},
		{"live3 and dead6 excluded", NewStableOptions(Live3, Dead6), "01000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.EspressoString(); got != tt.want {
				t.Errorf("EspressoString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStableOptions(t *testing.T) {
	for _, o := range allOptions() {
		parsed, err := ParseStableOptions(o.EspressoString())
		if err != nil {
			t.Fatalf("ParseStableOptions(%q) error: %v", o.EspressoString(), err)
		}
		if parsed != o {
			t.Errorf("ParseStableOptions(%q) = %v, want %v", o.EspressoString(), parsed, o)
		}
	}

	for _, bad := range []string{"", "0000000", "000000000", "0000-000", "abcdefgh"} {
		if _, err := ParseStableOptions(bad); err == nil {
			t.Errorf("ParseStableOptions(%q) should fail", bad)
		}
	}
}

func TestStableOptions_LatticeLaws(t *testing.T) {
	top, bottom := UnknownOptions(), ImpossibleOptions()

	for _, o := range allOptions() {
		if o.Intersect(o) != o {
			t.Errorf("%v: Intersect is not idempotent", o)
		}
		if o.Union(o) != o {
			t.Errorf("%v: Union is not idempotent", o)
		}
		if o.Intersect(bottom) != bottom {
			t.Errorf("%v: Intersect with impossible = %v", o, o.Intersect(bottom))
		}
		if o.Union(top) != top {
			t.Errorf("%v: Union with unknown = %v", o, o.Union(top))
		}
		if o.Intersect(top) != o || o.Union(bottom) != o {
			t.Errorf("%v: top/bottom are not identities", o)
		}

		for _, p := range allOptions() {
			if o.Intersect(p) != p.Intersect(o) || o.Union(p) != p.Union(o) {
				t.Fatalf("%v, %v: not commutative", o, p)
			}
			if o.Intersect(o.Union(p)) != o || o.Union(o.Intersect(p)) != o {
				t.Fatalf("%v, %v: absorption fails", o, p)
			}
			meet := o.Intersect(p)
			if meet.PossibilitiesCount() > o.PossibilitiesCount() {
				t.Fatalf("%v, %v: Intersect increased possibilities", o, p)
			}
			if join := o.Union(p); join.PossibilitiesCount() < o.PossibilitiesCount() {
				t.Fatalf("%v, %v: Union decreased possibilities", o, p)
			}
		}
	}
}

func TestStableOptions_Queries(t *testing.T) {
	for _, o := range allOptions() {
		flagsFalse := 0
		for s := Scenario(0); s < ScenarioCount; s++ {
			if !o.Excludes(s) {
				flagsFalse++
			}
		}
		if got := o.PossibilitiesCount(); got != flagsFalse {
			t.Errorf("%v: PossibilitiesCount() = %d, want %d", o, got, flagsFalse)
		}
		if got := len(o.PossibleNeighbourhoods()); got != flagsFalse {
			t.Errorf("%v: len(PossibleNeighbourhoods()) = %d, want %d", o, got, flagsFalse)
		}
		if o.IsMaximal() != (flagsFalse == 1) {
			t.Errorf("%v: IsMaximal() = %v with %d possibilities", o, o.IsMaximal(), flagsFalse)
		}
		if o.IsImpossible() != (flagsFalse == 0) {
			t.Errorf("%v: IsImpossible() = %v", o, o.IsImpossible())
		}

		if o.IsImpossible() {
			continue
		}
		want := Unknown
		switch {
		case o.MaybeLive() && !o.MaybeDead():
			want = On
		case o.MaybeDead() && !o.MaybeLive():
			want = Off
		}
		if got := o.ToThreeState(); got != want {
			t.Errorf("%v: ToThreeState() = %v, want %v", o, got, want)
		}
		for _, n := range o.PossibleNeighbourhoods() {
			if !n.LifeStable() {
				t.Errorf("%v: scenario %v is not stable", o, n)
			}
		}
	}
}

func TestStableOptions_SingleOnOff(t *testing.T) {
	tests := []struct {
		opts      StableOptions
		singleOn  bool
		singleOff bool
	}{
		{UnknownOptions(), false, false},
		{OnOptions(), false, false},
		{OnOptions().Exclude(Live3), true, false},
		{OffOptions().Exclude(Dead0, Dead1, Dead2, Dead4, Dead5), false, true},
		{NewStableOptions(Live3, Dead0, Dead1, Dead2, Dead4, Dead5), true, true},
	}

	for _, tt := range tests {
		if got := tt.opts.SingleOn(); got != tt.singleOn {
			t.Errorf("%v: SingleOn() = %v, want %v", tt.opts, got, tt.singleOn)
		}
		if got := tt.opts.SingleOff(); got != tt.singleOff {
			t.Errorf("%v: SingleOff() = %v, want %v", tt.opts, got, tt.singleOff)
		}
	}
}

func TestStableOptions_Upperset(t *testing.T) {
	for _, o := range allOptions() {
		k := o.PossibilitiesCount()
		upperset := o.Upperset()

		if len(upperset) != (1<<k)-1 {
			t.Fatalf("%v: len(Upperset()) = %d, want %d", o, len(upperset), (1<<k)-1)
		}

		seen := make(map[StableOptions]bool, len(upperset))
		selfCount := 0
		for _, u := range upperset {
			if seen[u] {
				t.Fatalf("%v: duplicate %v in upperset", o, u)
			}
			seen[u] = true
			if u.IsImpossible() {
				t.Fatalf("%v: upperset contains the empty set", o)
			}
			if !u.Refines(o) {
				t.Fatalf("%v: %v does not refine the receiver", o, u)
			}
			if u == o {
				selfCount++
			} else if u.PossibilitiesCount() >= o.PossibilitiesCount() {
				t.Fatalf("%v: %v is not a strict refinement", o, u)
			}
		}
		if k > 0 && selfCount != 1 {
			t.Errorf("%v: receiver appears %d times", o, selfCount)
		}
	}
}

func TestStableOptions_UppersetOrder(t *testing.T) {
	got := OnOptions().Upperset()
	want := []StableOptions{
		OnOptions().Exclude(Live3),
		OnOptions().Exclude(Live2),
		OnOptions(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Upperset() mismatch (-want +got):\n%s", diff)
	}

	if n := len(AllPossibleOptions()); n != 255 {
		t.Errorf("len(AllPossibleOptions()) = %d, want 255", n)
	}
}

func TestStableOptions_ToUnknownNeighbourhood(t *testing.T) {
	tests := []struct {
		name string
		opts StableOptions
		want CellUnknownNeighbourhood
	}{
		{"unknown", UnknownOptions(), CellUnknownNeighbourhood{Unknown, 0, 6}},
		{"on", OnOptions(), CellUnknownNeighbourhood{On, 2, 1}},
		{"off", OffOptions(), CellUnknownNeighbourhood{Off, 0, 6}},
		{"dead4 or dead5", OffOptions().Exclude(Dead0, Dead1, Dead2, Dead6), CellUnknownNeighbourhood{Off, 4, 1}},
		{"live3 only", OnOptions().Exclude(Live2), CellUnknownNeighbourhood{On, 3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.opts.ToUnknownNeighbourhood()
			if !ok {
				t.Fatal("ToUnknownNeighbourhood() failed")
			}
			if got != tt.want {
				t.Errorf("ToUnknownNeighbourhood() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, ok := ImpossibleOptions().ToUnknownNeighbourhood(); ok {
		t.Error("ToUnknownNeighbourhood() of the empty set should fail")
	}
}

func TestMaximalOptions(t *testing.T) {
	tests := []struct {
		n    CellUnknownNeighbourhood
		want string
	}{
		{CellUnknownNeighbourhood{On, 2, 0}, "01111111"},
		{CellUnknownNeighbourhood{On, 0, 8}, "00111111"},
		{CellUnknownNeighbourhood{Off, 3, 0}, "11111111"},
		{CellUnknownNeighbourhood{Off, 0, 8}, "11000000"},
		{CellUnknownNeighbourhood{Unknown, 0, 8}, "00000000"},
		{CellUnknownNeighbourhood{Unknown, 2, 1}, "00110111"},
		{CellUnknownNeighbourhood{Unknown, 7, 1}, "11111111"},
	}

	for _, tt := range tests {
		if got := MaximalOptions(tt.n).EspressoString(); got != tt.want {
			t.Errorf("MaximalOptions(%v) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestCompatibleOptions(t *testing.T) {
	unknown := CompatibleOptions(CellUnknownNeighbourhood{Unknown, 2, 1})
	want := []StableOptions{
		NewStableOptions(Live3, Dead0, Dead1, Dead4, Dead5, Dead6),
		NewStableOptions(Live2, Dead0, Dead1, Dead4, Dead5, Dead6),
		NewStableOptions(Dead0, Dead1, Dead4, Dead5, Dead6),
	}
	if diff := cmp.Diff(want, unknown); diff != "" {
		t.Errorf("CompatibleOptions mismatch (-want +got):\n%s", diff)
	}

	if got := len(CompatibleOptions(CellUnknownNeighbourhood{On, 2, 1})); got != 3 {
		t.Errorf("len(CompatibleOptions(ON[2..3])) = %d, want 3", got)
	}

	for _, n := range allIntervals() {
		maximal := MaximalOptions(n)
		for _, o := range CompatibleOptions(n) {
			if !o.Refines(maximal) {
				t.Fatalf("%v: %v does not refine %v", n, o, maximal)
			}
			if n.Center == Unknown && o.ToThreeState() != Unknown {
				t.Fatalf("%v: %v pins the center", n, o)
			}
		}
	}

	if got := len(CompatibleOptionsForState(Off)); got != 63 {
		t.Errorf("len(CompatibleOptionsForState(Off)) = %d, want 63", got)
	}
}

func TestStableOptions_RestrictToMonotone(t *testing.T) {
	for _, o := range allOptions() {
		for _, u := range allIntervals() {
			r := o.RestrictTo(u)
			if r.PossibilitiesCount() > o.PossibilitiesCount() {
				t.Fatalf("%v.RestrictTo(%v) = %v increased possibilities", o, u, r)
			}
			// Soundness: a scenario of o that fits u must survive.
			for _, s := range o.Scenarios() {
				fits := u.Contains(s.Count()) && (u.Center == Unknown || u.Center == s.Center())
				if fits && r.Excludes(s) {
					t.Fatalf("%v.RestrictTo(%v) dropped possible scenario %v", o, u, s)
				}
			}
		}
	}
}

func TestGaloisRoundTrip(t *testing.T) {
	for _, o := range allOptions() {
		if o.IsImpossible() {
			continue
		}
		abstract, ok := o.ToUnknownNeighbourhood()
		if !ok {
			t.Fatalf("%v: abstraction failed", o)
		}
		concrete := MaximalOptions(abstract)
		if !o.Refines(concrete) {
			t.Errorf("%v: MaximalOptions(%v) = %v loses a scenario", o, abstract, concrete)
		}
		if o.IsMaximal() && concrete.PossibilitiesCount() < o.PossibilitiesCount() {
			t.Errorf("%v: round trip under-approximates", o)
		}
	}
}
