package filter

import (
	"errors"
	"testing"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

func TestSeasonsContains(t *testing.T) {
	cases := []struct {
		name   string
		sel    Seasons
		season string
		want   bool
	}{
		{"all", All(), "2016", true},
		{"zero value is all", Seasons{}, "2016", true},
		{"single hit", Season("2016"), "2016", true},
		{"single miss", Season("2016"), "2017", false},
		{"list hit", SeasonList("2016", "2018"), "2018", true},
		{"list miss", SeasonList("2016", "2018"), "2017", false},
		{"label season", Season("2007/08"), "2007/08", true},
	}
	for _, c := range cases {
		if got := c.sel.Contains(c.season); got != c.want {
			t.Errorf("%s: Contains(%q) = %v, want %v", c.name, c.season, got, c.want)
		}
	}
}

func TestEmptyListRejected(t *testing.T) {
	if err := SeasonList().Validate(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if err := All().Validate(); err != nil {
		t.Errorf("All: unexpected error: %v", err)
	}
	if err := Season("2020").Validate(); err != nil {
		t.Errorf("Season: unexpected error: %v", err)
	}
}

func TestParseSeasons(t *testing.T) {
	if s := ParseSeasons(nil); !s.IsAll() {
		t.Errorf("nil input should select all, got %v", s)
	}
	if s := ParseSeasons([]string{"all"}); !s.IsAll() {
		t.Errorf("\"all\" should select all, got %v", s)
	}
	s := ParseSeasons([]string{"2016, 2017", "2018"})
	if got := s.Values(); len(got) != 3 || got[2] != "2018" {
		t.Errorf("unexpected values %v", got)
	}
	if s := ParseSeasons([]string{" "}); !errors.Is(s.Validate(), ErrNoSelection) {
		t.Errorf("blank values should yield an invalid empty list")
	}
	if s := ParseSeasons([]string{"2019"}); s.String() != "2019" || s.IsAll() {
		t.Errorf("single season parsed as %v", s)
	}
	for _, raw := range [][]string{{"All,2008"}, {"2008", "ALL"}} {
		s := ParseSeasons(raw)
		if !s.IsAll() || !s.Contains("2012") {
			t.Errorf("%q should collapse to all, got %v", raw, s)
		}
	}
}

func TestQuotedTeamNames(t *testing.T) {
	m := &model.Match{ID: 1, Team1: "King's XI", Team2: `Team "B"`}
	if !Involving("King's XI")(m) {
		t.Error("team with apostrophe should match")
	}
	if !Between(`Team "B"`, "King's XI")(m) {
		t.Error("rival predicate should match regardless of seat")
	}
}

func TestRelabel(t *testing.T) {
	m := &model.Match{ID: 7, Team1: "A", Team2: "B"}
	seats, err := Relabel(m, "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seats.Self != "B" || seats.Rival != "A" {
		t.Errorf("got %+v", seats)
	}
	if _, err := Relabel(m, "C"); err == nil {
		t.Error("expected error for a team that did not play")
	}
}

func TestAndSkipsNil(t *testing.T) {
	d := &model.Delivery{BattingTeam: "A", BowlingTeam: "B"}
	b := model.Ball{Delivery: d, Match: &model.Match{Season: "2020"}}
	p := And(BallSeasons(All()), BattingTeam("A"), BowlingTeam(""))
	if !p(b) {
		t.Error("expected match")
	}
	if And(BattingTeam("B"))(b) {
		t.Error("expected no match")
	}
	rows := Where([]model.Ball{b, b}, BallSeasons(Season("2019")))
	if rows == nil || len(rows) != 0 {
		t.Errorf("Where should return an empty non-nil slice, got %v", rows)
	}
}
