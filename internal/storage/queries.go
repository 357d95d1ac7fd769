package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

const dateLayout = "2006-01-02"

// Meta keys written by ReplaceSnapshot.
const (
	MetaImportedAt = "imported_at"
	MetaSource     = "source"
)

// ReplaceSnapshot swaps the stored tables for ms and ds in one transaction.
func (db *DB) ReplaceSnapshot(ms []model.Match, ds []model.Delivery, source string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range []string{"DELETE FROM deliveries", "DELETE FROM matches", "DELETE FROM snapshot_meta"} {
		if _, err := tx.Exec(q); err != nil {
			return fmt.Errorf("clear snapshot: %w", err)
		}
	}
	if err := insertMatches(tx, ms); err != nil {
		return err
	}
	if err := insertDeliveries(tx, ds); err != nil {
		return err
	}
	meta := map[string]string{
		MetaImportedAt: time.Now().UTC().Format(time.RFC3339),
		MetaSource:     source,
	}
	for k, v := range meta {
		if _, err := tx.Exec("INSERT INTO snapshot_meta(key, value) VALUES (?, ?)", k, v); err != nil {
			return fmt.Errorf("insert snapshot_meta: %w", err)
		}
	}
	return tx.Commit()
}

func insertMatches(tx *sql.Tx, ms []model.Match) error {
	stmt, err := tx.Prepare(`
		INSERT INTO matches(
			id, season, city, match_date, match_type, player_of_match, venue,
			team1, team2, toss_winner, toss_decision, winner, result,
			result_margin, target_runs, target_overs, super_over, method,
			umpire1, umpire2
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range ms {
		var date string
		if !m.Date.IsZero() {
			date = m.Date.Format(dateLayout)
		}
		_, err = stmt.Exec(
			m.ID, m.Season, m.City, date, m.MatchType, m.PlayerOfMatch, m.Venue,
			m.Team1, m.Team2, m.TossWinner, m.TossDecision, m.Winner, m.Result,
			m.ResultMargin, m.TargetRuns, m.TargetOvers, m.SuperOver, m.Method,
			m.Umpire1, m.Umpire2,
		)
		if err != nil {
			return fmt.Errorf("insert match %d: %w", m.ID, err)
		}
	}
	return nil
}

func insertDeliveries(tx *sql.Tx, ds []model.Delivery) error {
	stmt, err := tx.Prepare(`
		INSERT INTO deliveries(
			match_id, seq, inning, batting_team, bowling_team, over_no, ball_no,
			batter, bowler, non_striker, batsman_runs, extra_runs, total_runs,
			extras_type, is_wicket, player_dismissed, dismissal_kind, fielder
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	seq := map[int64]int{}
	for _, d := range ds {
		n := seq[d.MatchID]
		seq[d.MatchID] = n + 1
		_, err = stmt.Exec(
			d.MatchID, n, d.Inning, d.BattingTeam, d.BowlingTeam, d.Over, d.Ball,
			d.Batter, d.Bowler, d.NonStriker, d.BatsmanRuns, d.ExtraRuns, d.TotalRuns,
			d.ExtrasType, boolInt(d.IsWicket), d.PlayerDismissed, d.DismissalKind, d.Fielder,
		)
		if err != nil {
			return fmt.Errorf("insert delivery %d/%d: %w", d.MatchID, n, err)
		}
	}
	return nil
}

// LoadMatches returns every stored match ordered by date then id.
func (db *DB) LoadMatches() ([]model.Match, error) {
	rows, err := db.conn.Query(`
		SELECT id, season, city, match_date, match_type, player_of_match, venue,
		       team1, team2, toss_winner, toss_decision, winner, result,
		       result_margin, target_runs, target_overs, super_over, method,
		       umpire1, umpire2
		FROM matches ORDER BY match_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Match
	for rows.Next() {
		var m model.Match
		var date string
		if err := rows.Scan(
			&m.ID, &m.Season, &m.City, &date, &m.MatchType, &m.PlayerOfMatch, &m.Venue,
			&m.Team1, &m.Team2, &m.TossWinner, &m.TossDecision, &m.Winner, &m.Result,
			&m.ResultMargin, &m.TargetRuns, &m.TargetOvers, &m.SuperOver, &m.Method,
			&m.Umpire1, &m.Umpire2,
		); err != nil {
			return nil, err
		}
		if date != "" {
			if m.Date, err = time.Parse(dateLayout, date); err != nil {
				return nil, fmt.Errorf("match %d date: %w", m.ID, err)
			}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// LoadDeliveries returns every stored delivery in insertion order per match.
func (db *DB) LoadDeliveries() ([]model.Delivery, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, inning, batting_team, bowling_team, over_no, ball_no,
		       batter, bowler, non_striker, batsman_runs, extra_runs, total_runs,
		       extras_type, is_wicket, player_dismissed, dismissal_kind, fielder
		FROM deliveries ORDER BY match_id, seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Delivery
	for rows.Next() {
		var d model.Delivery
		var wicket int
		if err := rows.Scan(
			&d.MatchID, &d.Inning, &d.BattingTeam, &d.BowlingTeam, &d.Over, &d.Ball,
			&d.Batter, &d.Bowler, &d.NonStriker, &d.BatsmanRuns, &d.ExtraRuns, &d.TotalRuns,
			&d.ExtrasType, &wicket, &d.PlayerDismissed, &d.DismissalKind, &d.Fielder,
		); err != nil {
			return nil, err
		}
		d.IsWicket = wicket != 0
		out = append(out, d)
	}
	return out, rows.Err()
}

// Info describes the stored snapshot.
type Info struct {
	Matches    int
	Deliveries int
	Seasons    int
	ImportedAt time.Time
	Source     string
}

// SnapshotInfo returns row counts and import metadata. ImportedAt is zero
// when nothing has been imported.
func (db *DB) SnapshotInfo() (Info, error) {
	var info Info
	err := db.conn.QueryRow(`
		SELECT (SELECT COUNT(1) FROM matches),
		       (SELECT COUNT(1) FROM deliveries),
		       (SELECT COUNT(DISTINCT season) FROM matches)`).
		Scan(&info.Matches, &info.Deliveries, &info.Seasons)
	if err != nil {
		return info, err
	}
	var at string
	err = db.conn.QueryRow("SELECT value FROM snapshot_meta WHERE key = ?", MetaImportedAt).Scan(&at)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return info, nil
	case err != nil:
		return info, err
	}
	if info.ImportedAt, err = time.Parse(time.RFC3339, at); err != nil {
		return info, fmt.Errorf("imported_at: %w", err)
	}
	err = db.conn.QueryRow("SELECT value FROM snapshot_meta WHERE key = ?", MetaSource).Scan(&info.Source)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return info, err
	}
	return info, nil
}

// DropSeason deletes one season's matches and, by cascade, their deliveries.
// It returns the number of matches removed.
func (db *DB) DropSeason(season string) (int64, error) {
	res, err := db.conn.Exec("DELETE FROM matches WHERE season = ?", season)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Clear empties every table.
func (db *DB) Clear() error {
	return db.ReplaceSnapshot(nil, nil, "")
}

// QueryRaw runs an arbitrary query and returns column names and rows as text.
// NULL cells read as "NULL".
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var out [][]string
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = cellString(v)
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
