package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

const matchesCSV = "\uFEFFid,season,city,date,match_type,player_of_match,venue,team1,team2,toss_winner,toss_decision,winner,result,result_margin,target_runs,target_overs,super_over,method,umpire1,umpire2\n" +
	"335982,2007/08,Bangalore,2008-04-18,League,BB McCullum,M Chinnaswamy Stadium,Royal Challengers Bangalore,Kolkata Knight Riders,Royal Challengers Bangalore,field,Kolkata Knight Riders,runs,140.0,223.0,20.0,N,NA,Asad Rauf,RE Koertzen\n" +
	"501265,2011,Delhi,2011-05-21,League,NA,Feroz Shah Kotla,Delhi Daredevils,Pune Warriors,Delhi Daredevils,bat,NA,no result,NA,NA,NA,N,NA,SS Hazare,RJ Tucker\n" +
	"1216547,2020/21,Dubai,2020-11-06,Elimination Final,KS Williamson,Sheikh Zayed Stadium,Royal Challengers Bangalore,Sunrisers Hyderabad,Sunrisers Hyderabad,field,Sunrisers Hyderabad,wickets,6.0,132.0,20.0,N,NA,PR Reiffel,S Ravi\n"

const deliveriesCSV = "match_id,inning,batting_team,bowling_team,over,ball,batter,bowler,non_striker,batsman_runs,extra_runs,total_runs,extras_type,is_wicket,player_dismissed,dismissal_kind,fielder\n" +
	"335982,1,Kolkata Knight Riders,Royal Challengers Bangalore,0,1,SC Ganguly,P Kumar,BB McCullum,0,1,1,legbyes,0,NA,NA,NA\n" +
	"335982,1,Kolkata Knight Riders,Royal Challengers Bangalore,0,2,BB McCullum,P Kumar,SC Ganguly,6,0,6,NA,0,NA,NA,NA\n" +
	"335982,2,Royal Challengers Bangalore,Kolkata Knight Riders,1,3,R Dravid,AB Agarkar,W Jaffer,0,0,0,NA,1,R Dravid,bowled,NA\n"

func TestReadMatchesCleansRows(t *testing.T) {
	ms, err := NewCleaner(nil).ReadMatches(strings.NewReader(matchesCSV))
	if err != nil {
		t.Fatalf("ReadMatches: %v", err)
	}
	if len(ms) != 3 {
		t.Fatalf("got %d matches, want 3", len(ms))
	}

	m := ms[0]
	if m.ID != 335982 || m.Season != "2007/08" || m.ResultMargin != 140 || m.TargetRuns != 223 || m.TargetOvers != 20 {
		t.Errorf("match 0 = %+v", m)
	}
	if m.Team1 != "Royal Challengers Bengaluru" || m.TossWinner != "Royal Challengers Bengaluru" {
		t.Errorf("alias not applied: %q / %q", m.Team1, m.TossWinner)
	}
	if m.Date.Year() != 2008 || m.Date.Month() != 4 || m.Date.Day() != 18 {
		t.Errorf("date = %v", m.Date)
	}
	if m.Method != "" {
		t.Errorf("NA method = %q, want empty", m.Method)
	}

	wash := ms[1]
	if wash.Winner != model.NoResult {
		t.Errorf("blank winner = %q, want %q", wash.Winner, model.NoResult)
	}
	if wash.HasTarget() || wash.ResultMargin != 0 || wash.PlayerOfMatch != "" {
		t.Errorf("washed out match = %+v", wash)
	}
	if wash.Team1 != "Delhi Capitals" {
		t.Errorf("team1 = %q", wash.Team1)
	}

	if ms[2].MatchType != model.Eliminator {
		t.Errorf("match type = %q, want %q", ms[2].MatchType, model.Eliminator)
	}
}

func TestReadDeliveries(t *testing.T) {
	ds, err := NewCleaner(nil).ReadDeliveries(strings.NewReader(deliveriesCSV))
	if err != nil {
		t.Fatalf("ReadDeliveries: %v", err)
	}
	if len(ds) != 3 {
		t.Fatalf("got %d deliveries, want 3", len(ds))
	}
	if d := ds[0]; d.ExtraRuns != 1 || d.ExtrasType != "legbyes" || d.IsWicket || d.Fielder != "" {
		t.Errorf("delivery 0 = %+v", d)
	}
	if d := ds[1]; d.BatsmanRuns != 6 || d.ExtrasType != "" || d.BowlingTeam != "Royal Challengers Bengaluru" {
		t.Errorf("delivery 1 = %+v", d)
	}
	if d := ds[2]; !d.IsWicket || d.PlayerDismissed != "R Dravid" || d.DismissalKind != model.Bowled || d.Over != 1 || d.Ball != 3 {
		t.Errorf("delivery 2 = %+v", d)
	}
}

func TestCustomAliases(t *testing.T) {
	c := NewCleaner(map[string]string{"Pune Warriors": "Pune Warriors India"})
	ms, err := c.ReadMatches(strings.NewReader(matchesCSV))
	if err != nil {
		t.Fatalf("ReadMatches: %v", err)
	}
	if ms[1].Team2 != "Pune Warriors India" {
		t.Errorf("team2 = %q", ms[1].Team2)
	}
	// Custom maps replace the defaults.
	if ms[1].Team1 != "Delhi Daredevils" {
		t.Errorf("team1 = %q", ms[1].Team1)
	}
}

func TestReadErrors(t *testing.T) {
	c := NewCleaner(nil)
	if _, err := c.ReadMatches(strings.NewReader("id,season\n1,2008\n")); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("missing columns: got %v", err)
	}
	bad := strings.Replace(deliveriesCSV, "335982,1,Kolkata", "x,1,Kolkata", 1)
	if _, err := c.ReadDeliveries(strings.NewReader(bad)); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("bad match id: got %v", err)
	}
	if _, err := c.ReadDeliveries(strings.NewReader("")); err == nil {
		t.Error("empty input should fail")
	}
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	mp := filepath.Join(dir, "matches.csv")
	dp := filepath.Join(dir, "deliveries.csv")
	if err := os.WriteFile(mp, []byte(matchesCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dp, []byte(deliveriesCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := NewCleaner(nil).ReadFiles(mp, dp)
	if err != nil {
		t.Fatalf("ReadFiles: %v", err)
	}
	if len(s.Matches) != 3 || len(s.Deliveries) != 3 {
		t.Errorf("snapshot = %d matches, %d deliveries", len(s.Matches), len(s.Deliveries))
	}
	if _, err := NewCleaner(nil).ReadFiles(filepath.Join(dir, "nope.csv"), dp); err == nil {
		t.Error("missing file should fail")
	}
}
