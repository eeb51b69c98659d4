package app

import (
	"fmt"
	"net/http"

	"github.com/haakonrs/kampplan/internal/config"
	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/plan"
	"github.com/haakonrs/kampplan/internal/domain/player"
	"github.com/haakonrs/kampplan/internal/domain/roster"
	"github.com/haakonrs/kampplan/internal/domain/savedplan"
	"github.com/haakonrs/kampplan/internal/infrastructure/export"
	"github.com/haakonrs/kampplan/internal/infrastructure/repository/memory"
	"github.com/haakonrs/kampplan/internal/infrastructure/repository/sqlite"
	"github.com/haakonrs/kampplan/internal/interfaces/httpapi"
	"github.com/haakonrs/kampplan/internal/platform/cache"
	idgen "github.com/haakonrs/kampplan/internal/platform/id"
	"github.com/haakonrs/kampplan/internal/platform/logging"
	"github.com/haakonrs/kampplan/internal/usecase"
	"github.com/haakonrs/kampplan/migrations"
)

type repositories struct {
	players     player.Repository
	matches     match.Repository
	rosters     roster.Repository
	assignments plan.Repository
	savedPlans  savedplan.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var summaryCache *cache.Store
	if cfg.CacheEnabled {
		summaryCache = cache.NewStore(cfg.CacheTTL)
	}

	ids := idgen.NewRandomGenerator()

	playerSvc := usecase.NewPlayerService(repos.players, repos.rosters, repos.assignments, ids)
	matchSvc := usecase.NewMatchService(repos.matches, repos.rosters, repos.assignments, repos.savedPlans, ids)
	rosterSvc := usecase.NewRosterService(repos.matches, repos.players, repos.rosters)
	planSvc := usecase.NewPlanService(repos.matches, repos.players, repos.rosters, repos.assignments)
	playtimeSvc := usecase.NewPlaytimeService(repos.matches, repos.players, repos.rosters, repos.assignments, summaryCache)
	savedPlanSvc := usecase.NewSavedPlanService(repos.matches, repos.assignments, repos.savedPlans, ids)

	// Every mutation that changes what is on the grid must drop the cached
	// playtime summary for that match.
	playerSvc.SetInvalidator(playtimeSvc)
	matchSvc.SetInvalidator(playtimeSvc)
	planSvc.SetInvalidator(playtimeSvc)
	savedPlanSvc.SetInvalidator(playtimeSvc)

	exportSvc := export.NewService(planSvc, playtimeSvc, cfg.ExportWorkers)

	verifier := httpapi.NewStaticSessionVerifier(cfg.SessionToken, cfg.OwnerUserID)
	handler := httpapi.NewHandler(playerSvc, matchSvc, rosterSvc, planSvc, playtimeSvc, savedPlanSvc, exportSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DemoMode() {
		logger.Info("no DB_PATH configured, using seeded in-memory storage", "owner", cfg.OwnerUserID)
		return repositories{
			players:     memory.NewPlayerRepository(memory.SeedPlayers(cfg.OwnerUserID)),
			matches:     memory.NewMatchRepository(memory.SeedMatches(cfg.OwnerUserID)),
			rosters:     memory.NewRosterRepository(),
			assignments: memory.NewAssignmentRepository(),
			savedPlans:  memory.NewSavedPlanRepository(),
		}, nil
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		return repositories{}, err
	}

	if cfg.AutoMigrate {
		if err := sqlite.RunMigrations(db.DB, migrations.FS); err != nil {
			return repositories{}, fmt.Errorf("run migrations: %w", err)
		}
	}

	logger.Info("using sqlite storage", "path", cfg.DBPath, "auto_migrate", cfg.AutoMigrate)

	return repositories{
		players:     sqlite.NewPlayerRepository(db),
		matches:     sqlite.NewMatchRepository(db),
		rosters:     sqlite.NewRosterRepository(db),
		assignments: sqlite.NewAssignmentRepository(db),
		savedPlans:  sqlite.NewSavedPlanRepository(db),
	}, nil
}
