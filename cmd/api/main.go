package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/listyapp/listy/docs"
	"github.com/listyapp/listy/internal/config"
	"github.com/listyapp/listy/internal/family"
	"github.com/listyapp/listy/internal/gateway"
	"github.com/listyapp/listy/internal/item"
	"github.com/listyapp/listy/internal/list"
	"github.com/listyapp/listy/internal/metrics"
	"github.com/listyapp/listy/internal/user"
	"github.com/listyapp/listy/pkg/logging"
	mw "github.com/listyapp/listy/pkg/middleware"
)

// @title        Listy API
// @version      1.0
// @description  Shared family wish-list service with purchase claims
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Open the persistence gateway
	gw, err := openGateway(cfg)
	if err != nil {
		slog.Error("failed to open gateway", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer gw.Close()

	slog.Info("gateway ready", "driver", cfg.DatabaseDriver)

	// Identity binding
	verifier := mw.NewVerifier(cfg.JWTSecret)

	// User feature
	userRepo := user.NewRepository(gw)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	// Family feature
	familyRepo := family.NewRepository(gw)
	familyService := family.NewService(familyRepo)
	familyHandler := family.NewHandler(familyService, userService)

	// List feature
	listRepo := list.NewRepository(gw)
	listService := list.NewService(listRepo, familyService)
	listHandler := list.NewHandler(listService)

	// Item feature
	itemRepo := item.NewRepository(gw)
	itemService := item.NewService(itemRepo, listService)
	itemHandler := item.NewHandler(itemService)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(metrics.Middleware)
	r.Use(mw.RequestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.DevIdentity {
			r.Use(mw.DevIdentityMiddleware)
		}
		r.Use(verifier.RequireIdentity)

		// Mount feature routers
		r.Mount("/users", userHandler.Routes())
		r.Mount("/families", familyHandler.Routes())
		r.Mount("/lists", listHandler.Routes())
		r.Mount("/items", itemHandler.Routes())
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// openGateway selects the gateway backend from configuration.
func openGateway(cfg *config.Config) (gateway.Gateway, error) {
	switch cfg.DatabaseDriver {
	case "postgres":
		return gateway.NewPostgres(cfg.DatabaseURL)
	case "sqlite":
		return gateway.NewSQLite(cfg.SQLitePath)
	case "memory":
		return gateway.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
}
