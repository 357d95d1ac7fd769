package engine

import (
	"sort"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// Progression outcomes.
const (
	Champion   = "Champion"
	RunnerUp   = "Runner Up"
	Eliminated = "Eliminated"
)

// Stage categories a match type rolls up to.
const (
	StageLeague     = "League"
	StagePlayoff    = "Playoff"
	StageQualifier2 = "Qualifier 2"
	StageFinal      = "Final"
)

// NotPlayed fills progression cells for stages a team did not reach.
const NotPlayed = "-"

var stageOf = map[string]string{
	model.League:     StageLeague,
	model.Qualifier1: StagePlayoff,
	model.Eliminator: StagePlayoff,
	model.ThirdPlace: StagePlayoff,
	model.SemiFinal:  StagePlayoff,
	model.Qualifier2: StageQualifier2,
	model.Final:      StageFinal,
}

// Stage returns the stage category of a match type, or "" if unknown.
func Stage(matchType string) string { return stageOf[matchType] }

type levelKey struct {
	matchType string
	won       bool
}

var progression = map[levelKey]string{
	{model.Qualifier1, true}:  model.Final,
	{model.Qualifier2, true}:  model.Final,
	{model.Eliminator, true}:  model.Qualifier2,
	{model.SemiFinal, true}:   model.Final,
	{model.Final, true}:       Champion,
	{model.Qualifier1, false}: model.Qualifier2,
	{model.Final, false}:      RunnerUp,
}

// NextLevel returns where a result in matchType sends a team.
func NextLevel(matchType string, won bool) string {
	if next, ok := progression[levelKey{matchType, won}]; ok {
		return next
	}
	return Eliminated
}

var stageRank = map[string]int{
	model.League:     0,
	model.Qualifier1: 1,
	model.Eliminator: 2,
	model.SemiFinal:  3,
	model.Qualifier2: 4,
	model.ThirdPlace: 5,
	model.Final:      6,
}

// sortByStage orders rows by how deep into a season their match type sits.
// Unknown types sort last, by name.
func sortByStage[T any](rows []T, matchType func(T) string) {
	rank := func(t string) int {
		if r, ok := stageRank[t]; ok {
			return r
		}
		return len(stageRank)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := matchType(rows[i]), matchType(rows[j])
		if rank(a) != rank(b) {
			return rank(a) < rank(b)
		}
		return a < b
	})
}

// PlayoffRun is one season of a team's knockout progression.
type PlayoffRun struct {
	Season           string `json:"season"`
	Stage            string `json:"stage"`
	StageType        string `json:"stage_type"`
	StageWinner      string `json:"stage_winner"`
	AfterStage       string `json:"after_stage"`
	Qualifier2Winner string `json:"qualifier2_winner"`
	AfterQualifier2  string `json:"after_qualifier2"`
	FinalWinner      string `json:"final_winner"`
	Result           string `json:"result"`
}

type stageResult struct {
	matchType string
	winner    string
	next      string
}

// LevelHierarchy traces team's progression through each season's knockouts.
// Seasons where the team played only league matches are omitted. A season
// with two first-round knockout matches yields one row per match.
func (e *Engine) LevelHierarchy(team string) []PlayoffRun {
	type season struct {
		playoff, q2, final []stageResult
	}
	order := []string{}
	bySeason := map[string]*season{}
	for _, m := range e.selectMatches(filter.Involving(team)) {
		stage := Stage(m.MatchType)
		if stage == StageLeague || stage == "" {
			continue
		}
		s, ok := bySeason[m.Season]
		if !ok {
			s = &season{}
			bySeason[m.Season] = s
			order = append(order, m.Season)
		}
		r := stageResult{matchType: m.MatchType, winner: m.Winner, next: NextLevel(m.MatchType, m.Winner == team)}
		switch stage {
		case StagePlayoff:
			s.playoff = append(s.playoff, r)
		case StageQualifier2:
			s.q2 = append(s.q2, r)
		case StageFinal:
			s.final = append(s.final, r)
		}
	}

	missing := []stageResult{{NotPlayed, NotPlayed, NotPlayed}}
	orMissing := func(rs []stageResult) []stageResult {
		if len(rs) == 0 {
			return missing
		}
		return rs
	}
	rows := make([]PlayoffRun, 0, len(order))
	for _, name := range order {
		s := bySeason[name]
		for _, p := range orMissing(s.playoff) {
			for _, q := range orMissing(s.q2) {
				for _, f := range orMissing(s.final) {
					run := PlayoffRun{
						Season:           name,
						Stage:            StagePlayoff,
						StageType:        p.matchType,
						StageWinner:      p.winner,
						AfterStage:       p.next,
						Qualifier2Winner: q.winner,
						AfterQualifier2:  q.next,
						FinalWinner:      f.winner,
						Result:           f.next,
					}
					if len(s.playoff) == 0 {
						run.Stage = NotPlayed
					}
					if run.Result == NotPlayed {
						run.Result = Eliminated
					}
					rows = append(rows, run)
				}
			}
		}
	}
	return rows
}
