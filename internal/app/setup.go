// Package app contains the application setup for the bookstore service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/Nerzal/gocloak/v13"
	"github.com/abgdnv/bookstore/internal/cart"
	"github.com/abgdnv/bookstore/internal/catalog"
	"github.com/abgdnv/bookstore/internal/config"
	"github.com/abgdnv/bookstore/internal/middleware"
	"github.com/abgdnv/bookstore/internal/order"
	"github.com/abgdnv/bookstore/internal/store"
	"github.com/abgdnv/bookstore/internal/transport/rest"
	"github.com/abgdnv/bookstore/internal/user"
	"github.com/abgdnv/bookstore/pkg/auth"
	"github.com/abgdnv/bookstore/pkg/server"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependencies struct {
	Catalog  *catalog.Service
	Carts    *cart.Service
	Orders   *order.Service
	Users    *user.Service
	Verifier auth.Verifier
	Logger   *slog.Logger
}

func SetupDependencies(dbPool *pgxpool.Pool, verifier auth.Verifier, cfg *config.Config, logger *slog.Logger) *Dependencies {
	kv := store.NewPgStore(dbPool)
	cartSvc := cart.NewService(kv)
	kcClient := gocloak.NewClient(cfg.Keycloak.URL)

	return &Dependencies{
		Catalog:  catalog.NewService(kv),
		Carts:    cartSvc,
		Orders:   order.NewService(kv, cartSvc),
		Users:    user.NewService(kcClient, cfg.Keycloak.Realm, cfg.Keycloak.ClientID, cfg.Keycloak.Secret),
		Verifier: verifier,
		Logger:   logger,
	}
}

// SetupHttpHandler initializes the router and routes for the bookstore service.
// Also used by handler tests to stand up the full middleware chain.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	handler := rest.NewHandler(deps.Catalog, deps.Carts, deps.Orders, deps.Users, deps.Logger)
	handler.RegisterRoutes(mux, middleware.AuthMiddleware(deps.Verifier, deps.Logger))
	return mux
}

// SetupHttpServer creates and configures the HTTP server for the bookstore service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
