package model

// ---- Derived records returned by the engine ----

// BattingCounts are the raw tallies behind a batting record.
type BattingCounts struct {
	Innings    int `json:"innings"`
	Runs       int `json:"runs"`
	Balls      int `json:"balls"`
	Sixes      int `json:"sixes"`
	Fours      int `json:"fours"`
	Threes     int `json:"threes"`
	Twos       int `json:"twos"`
	Ones       int `json:"ones"`
	Dots       int `json:"dots"`
	Dismissals int `json:"dismissals"`
	NotOuts    int `json:"not_outs"`
}

// BattingRecord is one batter's aggregate over a slice of deliveries,
// optionally scoped to a season or team.
type BattingRecord struct {
	Batter string `json:"batter"`
	Season string `json:"season,omitempty"`
	Team   string `json:"team,omitempty"`
	BattingCounts

	StrikeRate        Rate   `json:"strike_rate"`
	Average           Rate   `json:"average"`
	BoundaryDominance Rate   `json:"boundary_dominance"`
	DotBallReliance   Rate   `json:"dot_ball_reliance"`
	Category          string `json:"category,omitempty"`
}

// BoundaryRuns returns runs scored in fours and sixes.
func (c BattingCounts) BoundaryRuns() int {
	return 6*c.Sixes + 4*c.Fours
}

// BowlingCounts are the raw tallies behind a bowling record.
type BowlingCounts struct {
	Matches        int `json:"matches"`
	Balls          int `json:"balls"`
	Runs           int `json:"runs_conceded"`
	Wickets        int `json:"wickets"`
	Dots           int `json:"dot_balls"`
	SixesConceded  int `json:"sixes_conceded"`
	FoursConceded  int `json:"fours_conceded"`
	ThreesConceded int `json:"threes_conceded"`
	TwosConceded   int `json:"twos_conceded"`
	OnesConceded   int `json:"ones_conceded"`
	Extras         int `json:"extras_conceded"`
}

// BowlingRecord is one bowler's aggregate, keyed by bowler plus optional
// season, inning or rival scope.
type BowlingRecord struct {
	Bowler string `json:"bowler"`
	Season string `json:"season,omitempty"`
	Inning int    `json:"inning,omitempty"`
	Team   string `json:"team,omitempty"`
	Rival  string `json:"rival,omitempty"`
	BowlingCounts

	Overs           Rate   `json:"overs"`
	Economy         Rate   `json:"economy"`
	Average         Rate   `json:"average"`
	StrikeRate      Rate   `json:"strike_rate"`
	DotBallPct      Rate   `json:"dot_ball_pct"`
	// BoundaryBallPct is the percentage (0-100) of balls hit for four or six.
	BoundaryBallPct Rate   `json:"boundary_ball_pct"`
	WicketsPerMatch Rate   `json:"wickets_per_match"`
	Category        string `json:"category,omitempty"`
}

// FieldingRecord counts one fielder's dismissals of a single kind.
type FieldingRecord struct {
	Fielder string `json:"fielder"`
	Count   int    `json:"count"`
}

// TeamRecord is a team's match record within a scope such as a match type,
// a season or home/away. Lost is Matches minus Won, so no-result fixtures
// count as lost.
type TeamRecord struct {
	Team    string `json:"team"`
	Rival   string `json:"rival,omitempty"`
	Scope   string `json:"scope,omitempty"`
	Matches int    `json:"matches"`
	Won     int    `json:"won"`
	Lost    int    `json:"lost"`
	WinPct  Rate   `json:"win_pct"`
}
