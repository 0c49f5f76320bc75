package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"richmondtech/config"
	"richmondtech/internal/adapters/gemini"
	"richmondtech/internal/adapters/secrets"
	deliveryhttp "richmondtech/internal/delivery/http"
	"richmondtech/internal/delivery/http/controllers"
	"richmondtech/internal/delivery/http/middleware"
	"richmondtech/internal/domain"
	"richmondtech/internal/repository/dynamo"
	"richmondtech/internal/seed"
	"richmondtech/internal/services"
)

// App holds the wired application services shared by the CLI and the
// serverless entrypoint.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	Store  *dynamo.Store
	Data   domain.DataService
	Ask    domain.AskService
	Health domain.HealthService
	Seeder domain.Seeder
	Model  domain.ModelClient
}

// Build connects to the record store, resolves model credentials, and
// wires every service. The model is optional; everything else is not.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	client, err := dynamo.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect record store: %w", err)
	}
	store := dynamo.NewStore(client, cfg.DynamoDBTable)

	venues := dynamo.NewVenueRepository(store)
	companies := dynamo.NewCompanyRepository(store)
	groups := dynamo.NewMeetupGroupRepository(store)
	events := dynamo.NewEventRepository(store)

	model := buildModel(ctx, cfg, logger)
	data := services.NewDataService(venues, companies, groups, events, cfg.RequestTimeout)

	return &App{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Data:   data,
		Ask:    services.NewAskService(data, model, cfg.AskMode, logger, cfg.RequestTimeout),
		Health: services.NewHealthService(store, model, logger, cfg.RequestTimeout),
		Seeder: seed.NewSeeder(venues, companies, groups, events, logger),
		Model:  model,
	}, nil
}

func buildModel(ctx context.Context, cfg *config.Config, logger *slog.Logger) domain.ModelClient {
	key, err := secrets.ResolveModelKey(ctx, cfg)
	if err != nil {
		logger.Warn("model key resolution failed, model disabled", "error", err)
		return gemini.NewDisabled()
	}
	if key == "" {
		logger.Info("no model key configured, running classifier-only")
		return gemini.NewDisabled()
	}
	client, err := gemini.New(ctx, key, cfg.ModelName, logger)
	if err != nil {
		logger.Warn("model client init failed, model disabled", "error", err)
		return gemini.NewDisabled()
	}
	return client
}

// Handler assembles the full HTTP handler: routes plus logging and CORS.
func (a *App) Handler() http.Handler {
	router := deliveryhttp.NewRouter(
		controllers.NewAskController(a.Logger, a.Ask),
		controllers.NewHealthController(a.Health),
		controllers.NewAdminController(a.Logger, a.Seeder),
		a.Config.AdminToken,
	)
	return middleware.Logging(a.Logger, middleware.CORS(nil, router))
}
