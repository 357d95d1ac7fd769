// Package ingest reads and cleans the raw matches.csv and deliveries.csv
// exports into model rows.
package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// ErrMissingColumn means a required header is absent from a CSV file.
var ErrMissingColumn = errors.New("missing column")

// DefaultAliases maps retired franchise names onto the name used throughout
// the dataset.
var DefaultAliases = map[string]string{
	"Delhi Daredevils":            "Delhi Capitals",
	"Punjab Kings":                "Kings XI Punjab",
	"Royal Challengers Bangalore": "Royal Challengers Bengaluru",
	"Rising Pune Supergiant":      "Rising Pune Supergiants",
	"Deccan Chargers":             "Sunrisers Hyderabad",
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "2006/01/02"}

var matchColumns = []string{
	"id", "season", "city", "date", "match_type", "player_of_match", "venue",
	"team1", "team2", "toss_winner", "toss_decision", "winner", "result",
	"result_margin", "target_runs", "target_overs", "super_over", "method",
	"umpire1", "umpire2",
}

var deliveryColumns = []string{
	"match_id", "inning", "batting_team", "bowling_team", "over", "ball",
	"batter", "bowler", "non_striker", "batsman_runs", "extra_runs",
	"total_runs", "extras_type", "is_wicket", "player_dismissed",
	"dismissal_kind", "fielder",
}

// Cleaner normalizes raw field values.
type Cleaner struct {
	aliases map[string]string
}

// NewCleaner returns a Cleaner renaming teams through aliases. A nil map uses
// DefaultAliases.
func NewCleaner(aliases map[string]string) *Cleaner {
	if aliases == nil {
		aliases = DefaultAliases
	}
	return &Cleaner{aliases: aliases}
}

// Team returns the canonical franchise name.
func (c *Cleaner) Team(name string) string {
	if to, ok := c.aliases[name]; ok {
		return to
	}
	return name
}

// ---- CSV plumbing ----

// table reads a CSV stream with a header row, looking fields up by name.
type table struct {
	r    *csv.Reader
	cols map[string]int
	rec  []string
	line int
}

func newTable(r io.Reader, required []string) (*table, error) {
	br := bufio.NewReader(r)
	// Strip a UTF-8 byte order mark.
	if ch, _, err := br.ReadRune(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	} else if ch != '\uFEFF' {
		_ = br.UnreadRune()
	}
	cr := csv.NewReader(br)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}
	cr.FieldsPerRecord = len(header)
	return &table{r: cr, cols: cols, line: 1}, nil
}

func (t *table) next() (bool, error) {
	rec, err := t.r.Read()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	t.rec = rec
	t.line++
	return true, nil
}

// str returns a trimmed field with NA and NaN read as empty.
func (t *table) str(name string) string {
	v := strings.TrimSpace(t.rec[t.cols[name]])
	switch v {
	case "NA", "NaN", "nan", "null":
		return ""
	}
	return v
}

// num parses a numeric field, accepting "140.0". Empty reads as 0.
func (t *table) num(name string) (float64, error) {
	v := t.str(name)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s: %w", t.line, name, err)
	}
	return f, nil
}

func (t *table) integer(name string, errp *error) int {
	if *errp != nil {
		return 0
	}
	f, err := t.num(name)
	*errp = err
	return int(f)
}

func parseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	var err error
	for _, layout := range dateLayouts {
		var d time.Time
		if d, err = time.Parse(layout, v); err == nil {
			return d, nil
		}
	}
	return time.Time{}, err
}

// ---- readers ----

// ReadMatches parses a matches.csv stream. Blank winners become No Result and
// the legacy Elimination Final match type becomes Eliminator.
func (c *Cleaner) ReadMatches(r io.Reader) ([]model.Match, error) {
	t, err := newTable(r, matchColumns)
	if err != nil {
		return nil, fmt.Errorf("matches: %w", err)
	}
	var out []model.Match
	for {
		ok, err := t.next()
		if err != nil {
			return nil, fmt.Errorf("matches: %w", err)
		}
		if !ok {
			return out, nil
		}
		m, err := c.match(t)
		if err != nil {
			return nil, fmt.Errorf("matches: %w", err)
		}
		out = append(out, m)
	}
}

func (c *Cleaner) match(t *table) (model.Match, error) {
	var err error
	m := model.Match{
		ID:            int64(t.integer("id", &err)),
		Season:        t.str("season"),
		City:          t.str("city"),
		MatchType:     t.str("match_type"),
		PlayerOfMatch: t.str("player_of_match"),
		Venue:         t.str("venue"),
		Team1:         c.Team(t.str("team1")),
		Team2:         c.Team(t.str("team2")),
		TossWinner:    c.Team(t.str("toss_winner")),
		TossDecision:  t.str("toss_decision"),
		Winner:        c.Team(t.str("winner")),
		Result:        t.str("result"),
		ResultMargin:  t.integer("result_margin", &err),
		TargetRuns:    t.integer("target_runs", &err),
		SuperOver:     t.str("super_over"),
		Method:        t.str("method"),
		Umpire1:       t.str("umpire1"),
		Umpire2:       t.str("umpire2"),
	}
	if err != nil {
		return m, err
	}
	if m.TargetOvers, err = t.num("target_overs"); err != nil {
		return m, err
	}
	if m.Date, err = parseDate(t.str("date")); err != nil {
		return m, fmt.Errorf("line %d: date: %w", t.line, err)
	}
	if m.Winner == "" {
		m.Winner = model.NoResult
	}
	if m.MatchType == model.EliminatorV1 {
		m.MatchType = model.Eliminator
	}
	return m, nil
}

// ReadDeliveries parses a deliveries.csv stream.
func (c *Cleaner) ReadDeliveries(r io.Reader) ([]model.Delivery, error) {
	t, err := newTable(r, deliveryColumns)
	if err != nil {
		return nil, fmt.Errorf("deliveries: %w", err)
	}
	var out []model.Delivery
	for {
		ok, err := t.next()
		if err != nil {
			return nil, fmt.Errorf("deliveries: %w", err)
		}
		if !ok {
			return out, nil
		}
		d, err := c.delivery(t)
		if err != nil {
			return nil, fmt.Errorf("deliveries: %w", err)
		}
		out = append(out, d)
	}
}

func (c *Cleaner) delivery(t *table) (model.Delivery, error) {
	var err error
	d := model.Delivery{
		MatchID:         int64(t.integer("match_id", &err)),
		Inning:          t.integer("inning", &err),
		BattingTeam:     c.Team(t.str("batting_team")),
		BowlingTeam:     c.Team(t.str("bowling_team")),
		Over:            t.integer("over", &err),
		Ball:            t.integer("ball", &err),
		Batter:          t.str("batter"),
		Bowler:          t.str("bowler"),
		NonStriker:      t.str("non_striker"),
		BatsmanRuns:     t.integer("batsman_runs", &err),
		ExtraRuns:       t.integer("extra_runs", &err),
		TotalRuns:       t.integer("total_runs", &err),
		ExtrasType:      t.str("extras_type"),
		PlayerDismissed: t.str("player_dismissed"),
		DismissalKind:   t.str("dismissal_kind"),
		Fielder:         t.str("fielder"),
	}
	if err != nil {
		return d, err
	}
	if w := t.str("is_wicket"); w != "" {
		if d.IsWicket, err = strconv.ParseBool(w); err != nil {
			return d, fmt.Errorf("line %d: is_wicket: %w", t.line, err)
		}
	}
	return d, nil
}

// ---- files ----

// Snapshot is a cleaned pair of source tables.
type Snapshot struct {
	Matches    []model.Match
	Deliveries []model.Delivery
}

// ReadFiles reads and cleans both CSV files.
func (c *Cleaner) ReadFiles(matchesPath, deliveriesPath string) (*Snapshot, error) {
	var s Snapshot
	err := readFile(matchesPath, func(r io.Reader) (err error) {
		s.Matches, err = c.ReadMatches(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = readFile(deliveriesPath, func(r io.Reader) (err error) {
		s.Deliveries, err = c.ReadDeliveries(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func readFile(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
