package app

import (
	"context"
	gameAPI "investsim_backend/internal/api/game"
	resultAPI "investsim_backend/internal/api/result"
	"investsim_backend/internal/config"
	"investsim_backend/internal/config/env"
	"investsim_backend/internal/database"
	"investsim_backend/internal/repository"
	"investsim_backend/internal/repository/result_repo"
	"investsim_backend/internal/repository/user_repo"
	"investsim_backend/internal/service"
	"investsim_backend/internal/service/game"
	"investsim_backend/internal/service/result"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// User bits
	userRepo repository.UserRepository

	// Game engine bits
	gameCfg  config.GameConfig
	gameServ service.GameService
	gameHand *gameAPI.Handler

	// Result bits
	resultRepo repository.GameResultRepository
	resultServ service.ResultService
	resultHand *resultAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = database.RunMigrations(dbc)
		if err != nil {
			panic("failed to run migrations: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}

		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) GameResultRepo(ctx context.Context) repository.GameResultRepository {
	if sp.resultRepo == nil {
		sp.resultRepo = result_repo.NewGameResultRepository(sp.DBClient(ctx))
	}
	return sp.resultRepo
}

func (sp *ServiceProvider) GameService() service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(sp.GameCfg(), game.DefaultRand())
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler() *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) ResultService(ctx context.Context) service.ResultService {
	if sp.resultServ == nil {
		sp.resultServ = result.NewResultService(
			sp.GameCfg(),
			sp.UserRepo(ctx),
			sp.GameResultRepo(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.resultServ
}

func (sp *ServiceProvider) ResultHandler(ctx context.Context) *resultAPI.Handler {
	if sp.resultHand == nil {
		sp.resultHand = resultAPI.NewHandler(resultAPI.HandlerDeps{
			Serv: sp.ResultService(ctx),
		})
	}
	return sp.resultHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Engine endpoints
		gameHandler := sp.GameHandler()
		r.Route("/game", func(rr chi.Router) {
			rr.Get("/restrictions/{round}", gameHandler.Restrictions)
			rr.Post("/validate", gameHandler.Validate)
			rr.Post("/draw-event", gameHandler.DrawEvent)
			rr.Post("/calculate", gameHandler.Calculate)
			rr.Post("/new", gameHandler.NewGame)
			rr.Post("/advance", gameHandler.Advance)
		})

		// Persistence endpoints
		resultHandler := sp.ResultHandler(ctx)
		r.Route("/api", func(rr chi.Router) {
			rr.Post("/users", resultHandler.CreateUser)
			rr.Post("/game-results", resultHandler.SaveResult)
			rr.Get("/game-results/{userId}", resultHandler.UserResults)
			rr.Get("/leaderboard", resultHandler.Leaderboard)
		})

		sp.router = r
	}

	return sp.router
}
