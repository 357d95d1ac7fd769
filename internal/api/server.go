// Package api serves the statistics engine as a read-only JSON HTTP API.
package api

import (
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/config"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(e *engine.Engine, idx *search.Index, cfg config.ServerConfig, logger *slog.Logger) (*chi.Mux, error) {
	cache, err := newResponseCache(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	metrics := NewMetrics()
	h := &Handler{engine: e, index: idx, cache: cache, metrics: metrics, logger: logger}

	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(TimingMiddleware)
	r.Use(RequestLogger(logger))
	r.Use(metrics.Middleware)
	r.Use(middleware.Compress(5))

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := corslib.New(corslib.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "X-Request-Id"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	if rl := cfg.RateLimit; rl.Enabled {
		r.Use(RateLimitMiddleware(rl.Requests, rl.Window))
	}

	// --- Routes ---
	r.Get("/health", h.HealthCheck)
	r.Method("GET", "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/overview", h.serve(seasonal(e.Overview)))
		r.Get("/titles", h.serve(unscoped(e.Titles)))
		r.Get("/venues", h.serve(seasonal(e.Venues)))
		r.Get("/matches/{id}", h.serve(h.match))
		r.Get("/search", h.serve(h.search))

		r.Route("/seasons", func(r chi.Router) {
			r.Get("/", h.serve(unscoped(e.SeasonSummaries)))
			r.Get("/teams", h.serve(seasonal(e.SeasonTeams)))
			r.Get("/match-types", h.serve(seasonal(e.MatchTypeCounts)))
			r.Get("/innings-averages", h.serve(seasonal(e.AverageInningsScores)))
			r.Get("/milestones", h.serve(seasonal(e.SeasonMilestones)))
			r.Get("/toss", h.serve(h.seasonToss))
		})

		r.Route("/batting", func(r chi.Router) {
			r.Get("/", h.serve(seasonal(e.BattingStats)))
			r.Get("/by-season", h.serve(seasonal(e.BattingStatsBySeason)))
			r.Get("/top/{metric}", h.serve(h.topBatters))
			r.Get("/scores", h.serve(allTeams(e.IndividualScores)))
			r.Get("/run-scorers", h.serve(allTeams(e.LeadingRunScorers)))
			r.Get("/boundaries", h.serve(h.boundaries))
		})

		r.Route("/bowling", func(r chi.Router) {
			r.Get("/", h.serve(seasonal(e.BowlingStats)))
			r.Get("/top/{metric}", h.serve(h.topBowlers))
			r.Get("/split/{split}", h.serve(h.bowlingSplit))
			r.Get("/figures", h.serve(allTeams(e.BestBowlingFigures)))
			r.Get("/hauls", h.serve(allTeams(e.WicketHauls)))
			r.Get("/wicket-takers", h.serve(allTeams(e.LeadingWicketTakers)))
		})

		r.Get("/fielding/{kind}", h.serve(h.fielding))
		r.Get("/archetypes/{kind}", h.serve(h.archetypes))

		r.Route("/scores/200", func(r chi.Router) {
			r.Get("/", h.serve(seasonal(e.TwoHundredInnings)))
			r.Get("/split", h.serve(seasonal(e.TwoHundredSplit)))
			r.Get("/win-rates", h.serve(seasonal(e.TwoHundredWinRates)))
			r.Get("/counts", h.serve(seasonal(e.TwoHundredCounts)))
		})

		r.Get("/teams", h.serve(unscoped(e.Teams)))
		r.Get("/teams/records", h.serve(allTeams(e.WinLoss)))
		r.Get("/teams/scores", h.serve(allTeams(e.TeamScores)))
		r.Route("/teams/{team}", func(r chi.Router) {
			r.Use(h.resolve("team", search.Team))
			r.Get("/", h.serve(h.teamProfile))
			r.Get("/records", h.serve(forTeam(e.WinLoss)))
			r.Get("/match-types", h.serve(forTeam(e.MatchTypeRecord)))
			r.Get("/home-away", h.serve(forTeam(e.HomeAway)))
			r.Get("/toss", h.serve(h.teamToss))
			r.Get("/playoffs", h.serve(h.playoffs))
			r.Get("/batting", h.serve(forTeam(e.TeamBattingStats)))
			r.Get("/bowling", h.serve(forTeam(e.TeamBowlingStats)))
			r.Get("/run-scorers", h.serve(forTeam(e.LeadingRunScorers)))
			r.Get("/wicket-takers", h.serve(forTeam(e.LeadingWicketTakers)))
			r.Get("/scores", h.serve(forTeam(e.IndividualScores)))
			r.Get("/team-scores", h.serve(forTeam(e.TeamScores)))
			r.Get("/figures", h.serve(forTeam(e.BestBowlingFigures)))
			r.Get("/milestones", h.serve(forTeam(e.Milestones)))
			r.Get("/awards", h.serve(forTeam(e.PlayerOfMatchAwards)))
			r.Get("/boundaries", h.serve(h.boundaries))
			r.Get("/fielding/{kind}", h.serve(h.fielding))
			r.Get("/rivals", h.serve(forTeam(e.RivalRecord)))
			r.Route("/rivals/{rival}", func(r chi.Router) {
				r.Use(h.resolve("rival", search.Team))
				r.Get("/", h.serve(h.rivalRecord))
				r.Get("/matches", h.serve(h.rivalMatches))
			})
		})

		r.Route("/players/{player}", func(r chi.Router) {
			r.Use(h.resolve("player", search.Player))
			r.Get("/", h.serve(h.playerProfile))
			r.Get("/innings", h.serve(h.playerInnings))
			r.Get("/bowling", h.serve(h.playerBowling))
			r.Get("/vs-bowlers", h.serve(h.playerVsBowlers))
			r.Get("/milestones", h.serve(h.playerMilestones))
			r.Route("/vs/{rival}", func(r chi.Router) {
				r.Use(h.resolve("rival", search.Team))
				r.Get("/", h.serve(h.playerVsTeam))
			})
		})
	})

	return r, nil
}
