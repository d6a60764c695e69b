// Package app wires configuration, database, and HTTP surface together.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/config"
	"github.com/rtservizi/fieldtrack/internal/db"
	"github.com/rtservizi/fieldtrack/internal/http/api"
	"github.com/rtservizi/fieldtrack/internal/store"
	log "github.com/sirupsen/logrus"
)

// shutdownTimeout bounds graceful HTTP server shutdown.
const shutdownTimeout = 10 * time.Second

// Migrate opens the database and runs migrations.
func Migrate(ctx context.Context, cfg config.AppConfig) error {
	configPath := config.ResolveConfigPath(cfg.ConfigPath)
	dsn, err := config.LoadDatabaseDSN(configPath)
	if err != nil {
		return err
	}
	conn, err := db.Open(dsn)
	if err != nil {
		return err
	}
	return db.Migrate(conn)
}

// RunServer boots the API server with database-backed components.
func RunServer(ctx context.Context, cfg config.AppConfig, port int) error {
	configPath := config.ResolveConfigPath(cfg.ConfigPath)
	dsn, err := config.LoadDatabaseDSN(configPath)
	if err != nil {
		return err
	}
	conn, err := db.Open(dsn)
	if err != nil {
		return err
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}

	st := store.New(conn)
	if errSeed := EnsureProtectedUser(ctx, st); errSeed != nil {
		return errSeed
	}

	jwtCfg, _ := config.LoadJWTConfig(configPath)
	if jwtCfg.Secret == "" {
		return fmt.Errorf("missing jwt secret (set `jwt.secret` in config file or env %s)", config.EnvJWTSecret)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	api.RegisterRoutes(engine, st, jwtCfg)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("starting server on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case errServe := <-errCh:
		if errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			return errServe
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if errShutdown := srv.Shutdown(shutdownCtx); errShutdown != nil {
			log.Errorf("server shutdown error: %v", errShutdown)
		}
		return ctx.Err()
	}
}

// EnsureProtectedUser seeds the protected admin account on first boot. The
// generated temporary password is logged once so the installer can sign in.
func EnsureProtectedUser(ctx context.Context, st *store.Store) error {
	users, errList := st.ListUsers(ctx)
	if errList != nil {
		return errList
	}
	for _, u := range users {
		if u.IsProtected {
			return nil
		}
	}
	if len(users) > 0 {
		return nil
	}

	user, errCreate := st.CreateUser(ctx, store.UserParams{
		FirstName: "System",
		LastName:  "Administrator",
		Email:     "admin@localhost",
		Username:  "admin",
		Role:      "Dirigente",
	})
	if errCreate != nil {
		return errCreate
	}
	if errProtect := st.MarkUserProtected(ctx, user.ID); errProtect != nil {
		return errProtect
	}
	log.Infof("created protected admin account %q with temporary password %s", user.Username, user.TempPassword)
	return nil
}
