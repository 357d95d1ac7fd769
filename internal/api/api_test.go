package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/api"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/config"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

const (
	mi  = "Mumbai Indians"
	csk = "Chennai Super Kings"
)

func over(match int64, inning int, bat, bwl, batter, bowler string, runs ...int) []model.Delivery {
	ds := make([]model.Delivery, 0, len(runs))
	for i, r := range runs {
		ds = append(ds, model.Delivery{
			MatchID: match, Inning: inning, BattingTeam: bat, BowlingTeam: bwl,
			Over: 0, Ball: i + 1, Batter: batter, Bowler: bowler, NonStriker: "ns",
			BatsmanRuns: r, TotalRuns: r,
		})
	}
	return ds
}

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	ms := []model.Match{
		{
			ID: 1, Season: "2008", City: "Mumbai", Date: time.Date(2008, 4, 20, 0, 0, 0, 0, time.UTC),
			MatchType: model.League, Venue: "Wankhede", Team1: mi, Team2: csk,
			TossWinner: mi, TossDecision: model.TossBat, Winner: mi, Result: "runs",
			ResultMargin: 5, TargetRuns: 17, TargetOvers: 20,
		},
		{
			ID: 2, Season: "2009", City: "Chennai", Date: time.Date(2009, 4, 22, 0, 0, 0, 0, time.UTC),
			MatchType: model.League, Venue: "Chepauk", Team1: csk, Team2: mi,
			TossWinner: mi, TossDecision: model.TossField, Winner: csk, Result: "runs",
			ResultMargin: 3, TargetRuns: 13, TargetOvers: 20,
		},
	}
	var ds []model.Delivery
	ds = append(ds, over(1, 1, mi, csk, "Rohit", "Dhoni", 4, 6, 1, 0, 4, 1)...)
	ds = append(ds, over(1, 2, csk, mi, "Raina", "Bumrah", 1, 1, 0, 6, 2, 1)...)
	ds = append(ds, over(2, 1, csk, mi, "Raina", "Bumrah", 4, 4, 0, 0, 2, 2)...)
	last := over(2, 2, mi, csk, "Rohit", "Dhoni", 1, 0, 0, 6, 1, 1)
	last[2].IsWicket = true
	last[2].PlayerDismissed = "Rohit"
	last[2].DismissalKind = model.Bowled
	ds = append(ds, last...)

	e, err := engine.New(ms, ds)
	require.NoError(t, err)
	return e
}

func newServer(t *testing.T, cfg config.ServerConfig) http.Handler {
	t.Helper()
	e := testEngine(t)
	idx := search.New(e.Players(), e.TeamNames())
	h, err := api.NewRouter(e, idx, cfg, nil)
	require.NoError(t, err)
	return h
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decode(t, rec, &resp)
	return resp.Error.Code
}

func TestHealth(t *testing.T) {
	h := newServer(t, config.ServerConfig{CacheSize: 8})
	rec := get(t, h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decode(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.EqualValues(t, 2, body["matches"])
	assert.EqualValues(t, 24, body["deliveries"])
	assert.NotEmpty(t, rec.Header().Get("X-Process-Time"))
}

func TestBattingCachesResponses(t *testing.T) {
	h := newServer(t, config.ServerConfig{CacheSize: 8})

	first := get(t, h, "/api/v1/batting?season=2008")
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	var rows []model.BattingRecord
	decode(t, first, &rows)
	// Rohit, Raina and the non-striker who never faced.
	require.Len(t, rows, 3)
	assert.Equal(t, "Rohit", rows[0].Batter)
	assert.Equal(t, 16, rows[0].Runs)

	second := get(t, h, "/api/v1/batting?season=2008")
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCacheDisabled(t *testing.T) {
	h := newServer(t, config.ServerConfig{})
	get(t, h, "/api/v1/teams")
	rec := get(t, h, "/api/v1/teams")
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
}

func TestInvalidFiltersAreBadRequests(t *testing.T) {
	h := newServer(t, config.ServerConfig{CacheSize: 8})
	cases := []struct {
		target string
		code   string
	}{
		{"/api/v1/batting?season=", "INVALID_FILTER"},
		{"/api/v1/batting/boundaries?boundary=5", "INVALID_FILTER"},
		{"/api/v1/bowling/split/over", "INVALID_FILTER"},
		{"/api/v1/batting/top/sixes", "BAD_PARAMETER"},
		{"/api/v1/bowling/top/economy?n=ten", "BAD_PARAMETER"},
		{"/api/v1/archetypes/fielding", "BAD_PARAMETER"},
		{"/api/v1/matches/abc", "BAD_PARAMETER"},
		{"/api/v1/search?q=rohit&kind=umpire", "BAD_PARAMETER"},
	}
	for _, c := range cases {
		t.Run(c.target, func(t *testing.T) {
			rec := get(t, h, c.target)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, c.code, errorCode(t, rec))
		})
	}
}

func TestNotFound(t *testing.T) {
	h := newServer(t, config.ServerConfig{CacheSize: 8})
	for _, target := range []string{"/api/v1/matches/99", "/api/v1/teams/zzzz", "/api/v1/players/qqq"} {
		rec := get(t, h, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "NOT_FOUND", errorCode(t, rec), target)
	}
}

func TestTeamProfileResolvesName(t *testing.T) {
	h := newServer(t, config.ServerConfig{CacheSize: 8})
	rec := get(t, h, "/api/v1/teams/mumbai%20indians")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var p api.TeamProfile
	decode(t, rec, &p)
	assert.Equal(t, mi, p.Highlights.Team)
	assert.Equal(t, 2, p.Highlights.Matches)
	require.Len(t, p.Records, 1)
	assert.Equal(t, 1, p.Records[0].Won)
	assert.Equal(t, 2, p.Toss.Distribution.Won)
	assert.Len(t, p.Seasons, 2)
}

func TestRivalAndPlayerRoutes(t *testing.T) {
	h := newServer(t, config.ServerConfig{CacheSize: 8})

	rec := get(t, h, "/api/v1/teams/Mumbai%20Indians/rivals/Chennai%20Super%20Kings/matches")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var fixtures []model.Match
	decode(t, rec, &fixtures)
	assert.Len(t, fixtures, 2)

	rec = get(t, h, "/api/v1/players/Rohit/vs/Chennai%20Super%20Kings?season=2009")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var vs engine.VsTeam
	decode(t, rec, &vs)
	assert.Equal(t, csk, vs.Rival)
	assert.Equal(t, 1, vs.Innings)
	assert.Equal(t, 9, vs.Runs)
	assert.Equal(t, 1, vs.Dismissals)

	rec = get(t, h, "/api/v1/players/rohit")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var p api.PlayerProfile
	decode(t, rec, &p)
	assert.Equal(t, "Rohit", p.Player)
	require.Len(t, p.DismissedBy, 1)
	assert.Equal(t, "Dhoni", p.DismissedBy[0].Bowler)
}

func TestSearch(t *testing.T) {
	h := newServer(t, config.ServerConfig{CacheSize: 8})
	rec := get(t, h, "/api/v1/search?q=chennai&kind=team")
	require.Equal(t, http.StatusOK, rec.Code)
	var results []search.Result
	decode(t, rec, &results)
	require.NotEmpty(t, results)
	assert.Equal(t, csk, results[0].Name)
}

func TestEmptyResultIsArray(t *testing.T) {
	h := newServer(t, config.ServerConfig{CacheSize: 8})
	rec := get(t, h, "/api/v1/scores/200")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h := newServer(t, config.ServerConfig{CacheSize: 8})
	get(t, h, "/api/v1/teams")
	rec := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `iplstats_http_requests_total{route="/api/v1/teams",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `iplstats_response_cache_total{result="miss"}`)
}

func TestRateLimit(t *testing.T) {
	h := newServer(t, config.ServerConfig{
		RateLimit: config.RateLimitConfig{Enabled: true, Requests: 2, Window: time.Minute},
	})
	first := get(t, h, "/health")
	require.Equal(t, http.StatusOK, first.Code)

	second := get(t, h, "/health")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_LIMITED", errorCode(t, second))
}
