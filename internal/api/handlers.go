package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/api/respond"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

var (
	errBadParam = errors.New("bad parameter")
	errNotFound = errors.New("not found")
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	engine  *engine.Engine
	index   *search.Index
	cache   *responseCache
	metrics *Metrics
	logger  *slog.Logger
}

// queryFunc computes one response body for a validated season selection.
type queryFunc func(r *http.Request, seasons filter.Seasons) (any, error)

// serve wraps a query with season parsing, error mapping and the response cache.
func (h *Handler) serve(fn queryFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path + "?" + r.URL.Query().Encode()
		if data, ok := h.cache.get(key); ok {
			h.metrics.cacheResult(true)
			respond.WriteJSON(w, data, true)
			return
		}

		seasons := filter.ParseSeasons(r.URL.Query()["season"])
		if err := seasons.Validate(); err != nil {
			h.writeError(w, r, err)
			return
		}
		v, err := fn(r, seasons)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		data, err := json.Marshal(v)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("encode response: %w", err))
			return
		}
		h.metrics.cacheResult(false)
		h.cache.add(key, data)
		respond.WriteJSON(w, data, false)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, filter.ErrNoSelection),
		errors.Is(err, engine.ErrInvalidBoundary),
		errors.Is(err, engine.ErrInvalidSplit):
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_FILTER", "Invalid filter", err.Error())
	case errors.Is(err, errBadParam):
		respond.WriteErrorDetail(w, http.StatusBadRequest, "BAD_PARAMETER", "Invalid parameter", err.Error())
	case errors.Is(err, search.ErrNotFound), errors.Is(err, errNotFound):
		respond.WriteErrorDetail(w, http.StatusNotFound, "NOT_FOUND", "Not found", err.Error())
	default:
		h.logger.Error("request failed", "path", r.URL.Path, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

func seasonal[T any](fn func(filter.Seasons) (T, error)) queryFunc {
	return func(_ *http.Request, s filter.Seasons) (any, error) { return fn(s) }
}

func unscoped[T any](fn func() T) queryFunc {
	return func(*http.Request, filter.Seasons) (any, error) { return fn(), nil }
}

// allTeams runs a team-scoped query across every team.
func allTeams[T any](fn func(string, filter.Seasons) (T, error)) queryFunc {
	return func(_ *http.Request, s filter.Seasons) (any, error) { return fn("", s) }
}

// forTeam runs a team-scoped query for the resolved {team}.
func forTeam[T any](fn func(string, filter.Seasons) (T, error)) queryFunc {
	return func(r *http.Request, s filter.Seasons) (any, error) { return fn(named(r, "team"), s) }
}

type nameKey string

// resolve maps the {param} path segment to a canonical name before routing on.
func (h *Handler) resolve(param string, kind search.Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name, err := h.index.Resolve(chi.URLParam(r, param), kind)
			if err != nil {
				h.writeError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), nameKey(param), name)))
		})
	}
}

// named returns the canonical name resolved for param, or "" when the route has none.
func named(r *http.Request, param string) string {
	v, _ := r.Context().Value(nameKey(param)).(string)
	return v
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, raw, errBadParam)
	}
	return v, nil
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
		"matches":       h.engine.MatchCount(),
		"deliveries":    h.engine.DeliveryCount(),
		"cache_entries": h.cache.len(),
	})
}

func (h *Handler) match(r *http.Request, _ filter.Seasons) (any, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("id=%q: %w", raw, errBadParam)
	}
	m, ok := h.engine.Match(id)
	if !ok {
		return nil, fmt.Errorf("match %d: %w", id, errNotFound)
	}
	return m, nil
}

func (h *Handler) search(r *http.Request, _ filter.Seasons) (any, error) {
	q := r.URL.Query()
	limit, err := intParam(r, "limit", 10)
	if err != nil {
		return nil, err
	}
	kind := search.Kind(q.Get("kind"))
	switch kind {
	case "", search.Player, search.Team:
	default:
		return nil, fmt.Errorf("kind=%q: %w", kind, errBadParam)
	}
	return h.index.Find(q.Get("q"), kind, limit), nil
}

func (h *Handler) topBatters(r *http.Request, s filter.Seasons) (any, error) {
	n, err := intParam(r, "n", 10)
	if err != nil {
		return nil, err
	}
	switch metric := chi.URLParam(r, "metric"); metric {
	case "strike-rate":
		return h.engine.TopStrikeRates(n, s)
	case "average":
		return h.engine.TopAverages(n, s)
	default:
		return nil, fmt.Errorf("batting metric %q: %w", metric, errBadParam)
	}
}

func (h *Handler) topBowlers(r *http.Request, s filter.Seasons) (any, error) {
	n, err := intParam(r, "n", 10)
	if err != nil {
		return nil, err
	}
	switch metric := chi.URLParam(r, "metric"); metric {
	case "economy":
		return h.engine.TopEconomy(n, s)
	case "strike-rate":
		return h.engine.TopBowlingStrikeRates(n, s)
	default:
		return nil, fmt.Errorf("bowling metric %q: %w", metric, errBadParam)
	}
}

func (h *Handler) archetypes(r *http.Request, s filter.Seasons) (any, error) {
	switch kind := chi.URLParam(r, "kind"); kind {
	case "batting":
		return h.engine.BattingArchetypes(s)
	case "bowling":
		return h.engine.BowlingArchetypes(s)
	case "containment":
		return h.engine.ContainmentArchetypes(s)
	default:
		return nil, fmt.Errorf("archetype %q: %w", kind, errBadParam)
	}
}

func (h *Handler) boundaries(r *http.Request, s filter.Seasons) (any, error) {
	b, err := intParam(r, "boundary", 0)
	if err != nil {
		return nil, err
	}
	return h.engine.Boundaries(named(r, "team"), b, s)
}

func (h *Handler) fielding(r *http.Request, s filter.Seasons) (any, error) {
	team := named(r, "team")
	switch kind := chi.URLParam(r, "kind"); kind {
	case "catches":
		return h.engine.Catches(team, s)
	case "stumpings":
		return h.engine.Stumpings(team, s)
	case "run-outs":
		return h.engine.RunOuts(team, s)
	default:
		return nil, fmt.Errorf("fielding kind %q: %w", kind, errBadParam)
	}
}

func (h *Handler) bowlingSplit(r *http.Request, s filter.Seasons) (any, error) {
	bowler := r.URL.Query().Get("bowler")
	if bowler != "" {
		name, err := h.index.Resolve(bowler, search.Player)
		if err != nil {
			return nil, err
		}
		bowler = name
	}
	return h.engine.BowlingSplit(bowler, engine.Split(chi.URLParam(r, "split")), s)
}

// SeasonToss is the league-wide toss picture.
type SeasonToss struct {
	Decisions []engine.TossDecisionCount `json:"decisions"`
	Impact    []engine.TossImpactRow     `json:"impact"`
	Venues    []engine.VenueToss         `json:"venues"`
}

func (h *Handler) seasonToss(r *http.Request, s filter.Seasons) (any, error) {
	var out SeasonToss
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { out.Decisions, err = h.engine.TossDecisions(s); return })
	g.Go(func() (err error) { out.Impact, err = h.engine.TossImpact(s); return })
	g.Go(func() (err error) { out.Venues, err = h.engine.VenueTossImpact(s); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// TeamToss pairs a team's toss record with what it did after each call.
type TeamToss struct {
	Distribution engine.TossSplit `json:"distribution"`
	Cause        engine.TossCause `json:"cause"`
}

func (h *Handler) teamToss(r *http.Request, s filter.Seasons) (any, error) {
	team := named(r, "team")
	d, err := h.engine.TossDistribution(team, s)
	if err != nil {
		return nil, err
	}
	c, err := h.engine.TossWinningCause(team, s)
	if err != nil {
		return nil, err
	}
	return TeamToss{Distribution: d, Cause: c}, nil
}

// TeamProfile bundles the headline team views into one response.
type TeamProfile struct {
	Highlights engine.Highlights    `json:"highlights"`
	Records    []model.TeamRecord   `json:"records"`
	MatchTypes []model.TeamRecord   `json:"match_types"`
	HomeAway   []model.TeamRecord   `json:"home_away"`
	Toss       TeamToss             `json:"toss"`
	Seasons    []engine.SeasonCount `json:"seasons"`
}

func (h *Handler) teamProfile(r *http.Request, s filter.Seasons) (any, error) {
	team := named(r, "team")
	var out TeamProfile
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { out.Highlights, err = h.engine.TeamHighlights(team, s); return })
	g.Go(func() (err error) { out.Records, err = h.engine.WinLoss(team, s); return })
	g.Go(func() (err error) { out.MatchTypes, err = h.engine.MatchTypeRecord(team, s); return })
	g.Go(func() (err error) { out.HomeAway, err = h.engine.HomeAway(team, s); return })
	g.Go(func() (err error) { out.Toss.Distribution, err = h.engine.TossDistribution(team, s); return })
	g.Go(func() (err error) { out.Toss.Cause, err = h.engine.TossWinningCause(team, s); return })
	g.Go(func() error {
		out.Seasons = h.engine.SeasonMatchCounts(team)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *Handler) playoffs(r *http.Request, _ filter.Seasons) (any, error) {
	return h.engine.LevelHierarchy(named(r, "team")), nil
}

func (h *Handler) rivalRecord(r *http.Request, s filter.Seasons) (any, error) {
	return h.engine.RivalMatchTypeRecord(named(r, "team"), named(r, "rival"), s)
}

func (h *Handler) rivalMatches(r *http.Request, s filter.Seasons) (any, error) {
	return h.engine.RivalMatches(named(r, "team"), named(r, "rival"), s)
}

// PlayerProfile bundles a player's career views into one response.
type PlayerProfile struct {
	Player         string               `json:"player"`
	BattingTeams   []engine.PlayerTeam  `json:"batting_teams"`
	BowlingTeams   []engine.PlayerTeam  `json:"bowling_teams"`
	InningSplits   []engine.InningSplit `json:"inning_splits"`
	DismissalKinds []engine.Dismissal   `json:"dismissal_kinds"`
	DismissedBy    []engine.Dismissal   `json:"dismissed_by"`
	VsBowlers      []engine.VsBowler    `json:"vs_bowlers"`
}

func (h *Handler) playerProfile(r *http.Request, s filter.Seasons) (any, error) {
	p := named(r, "player")
	out := PlayerProfile{Player: p}
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		out.BattingTeams = h.engine.PlayerTeams(p)
		out.BowlingTeams = h.engine.BowlerTeams(p)
		out.VsBowlers = h.engine.PlayerVsBowlers(p, 5)
		return nil
	})
	g.Go(func() (err error) { out.InningSplits, err = h.engine.PlayerInningSplit(p, s); return })
	g.Go(func() (err error) { out.DismissalKinds, err = h.engine.PlayerDismissalKinds(p, s); return })
	g.Go(func() (err error) { out.DismissedBy, err = h.engine.PlayerDismissalBowlers(p, s); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *Handler) playerInnings(r *http.Request, s filter.Seasons) (any, error) {
	return h.engine.PlayerInnings(named(r, "player"), s)
}

func (h *Handler) playerBowling(r *http.Request, s filter.Seasons) (any, error) {
	split := engine.SplitBowler
	if v := r.URL.Query().Get("split"); v != "" {
		split = engine.Split(v)
	}
	return h.engine.BowlingSplit(named(r, "player"), split, s)
}

func (h *Handler) playerVsBowlers(r *http.Request, _ filter.Seasons) (any, error) {
	n, err := intParam(r, "n", 10)
	if err != nil {
		return nil, err
	}
	return h.engine.PlayerVsBowlers(named(r, "player"), n), nil
}

func (h *Handler) playerMilestones(r *http.Request, _ filter.Seasons) (any, error) {
	minRuns, err := intParam(r, "min", 50)
	if err != nil {
		return nil, err
	}
	return h.engine.MilestoneWins(named(r, "player"), minRuns), nil
}

func (h *Handler) playerVsTeam(r *http.Request, s filter.Seasons) (any, error) {
	return h.engine.PlayerVsTeam(named(r, "player"), named(r, "rival"), s)
}
