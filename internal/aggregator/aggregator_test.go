package aggregator

import (
	"math"
	"testing"
)

type row struct {
	who  string
	runs int
	game int
}

func byWho(r row) (string, bool) { return r.who, r.who != "" }

func TestTallyZeroRead(t *testing.T) {
	tl := Sum([]row{{"a", 4, 1}, {"b", 0, 1}, {"a", 6, 1}, {"", 9, 1}}, byWho, func(r row) int { return r.runs })

	if got := tl.Get("a"); got != 10 {
		t.Errorf("a: got %d, want 10", got)
	}
	if !tl.Has("b") || tl.Get("b") != 0 {
		t.Error("b should be present with zero")
	}
	if tl.Has("zzz") || tl.Get("zzz") != 0 {
		t.Error("absent key should read as zero")
	}
	if tl.Len() != 2 {
		t.Errorf("blank key should be skipped, got %d keys", tl.Len())
	}
	var nilTally *Tally[string]
	if nilTally.Get("a") != 0 || nilTally.Len() != 0 {
		t.Error("nil tally should read as empty")
	}
}

func TestNuniqueCountsDistinct(t *testing.T) {
	rows := []row{{"a", 1, 10}, {"a", 1, 10}, {"a", 1, 10}, {"a", 1, 11}, {"b", 1, 10}}
	d := Nunique(rows, byWho, func(r row) int { return r.game })
	if got := d.Count("a"); got != 2 {
		t.Errorf("a: got %d innings, want 2", got)
	}
	if got := d.Count("b"); got != 1 {
		t.Errorf("b: got %d innings, want 1", got)
	}
	if got := d.Values("a"); len(got) != 2 || got[0] != 10 {
		t.Errorf("values: %v", got)
	}
}

func TestJoinFillUnionOfPartials(t *testing.T) {
	runs := NewTally[string]()
	runs.Add("a", 10)
	runs.Add("b", 3)
	dismissals := NewTally[string]()
	dismissals.Add("c", 1)
	extras := NewTally[string]()
	extras.Add("b", 2)
	extras.Add("d", 1)

	type joined struct {
		key                   string
		runs, dismissals, ext int
	}
	rows := JoinFill(func(k string) joined {
		return joined{k, runs.Get(k), dismissals.Get(k), extras.Get(k)}
	}, runs, dismissals, extras)

	want := []joined{{"a", 10, 0, 0}, {"b", 3, 0, 2}, {"c", 0, 1, 0}, {"d", 0, 0, 1}}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(rows), len(want), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestJoinFillEmpty(t *testing.T) {
	rows := JoinFill(func(k string) string { return k }, NewTally[string](), KeyList[string](nil))
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", rows)
	}
}

func TestRatioNonFinite(t *testing.T) {
	if r := Ratio(10, 0); !math.IsInf(float64(r), 1) {
		t.Errorf("10/0: got %v, want +Inf", float64(r))
	}
	if r := Ratio(0, 0); !math.IsNaN(float64(r)) {
		t.Errorf("0/0: got %v, want NaN", float64(r))
	}
	if r := Percent(15, 5); r != 300 {
		t.Errorf("percent: got %v", float64(r))
	}
	if r := PerOver(30, 60); r != 3 {
		t.Errorf("economy: got %v", float64(r))
	}
	if r := Round2(Ratio(1, 3)); r != 0.33 {
		t.Errorf("round: got %v", float64(r))
	}
	if r := Round2(Ratio(1, 0)); r.Finite() {
		t.Error("rounding must keep non-finite values")
	}
	if r := Mean(nil); !math.IsNaN(float64(r)) {
		t.Errorf("mean of nothing: got %v", float64(r))
	}
}
