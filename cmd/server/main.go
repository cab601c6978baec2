package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/auth"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/config"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/handler"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/router"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/storage"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Law firm content and lead intake API",
	Long:  `Serves the public content API, the lead submission endpoints and the authenticated admin API.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), config.Load())
	},
}

func init() {
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newCreateAdminCommand())
	rootCmd.AddCommand(newSeedCommand())
}

func initLogger(mode string) {
	level := slog.LevelInfo
	if mode == gin.DebugMode {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
		}),
	))
}

func openDatabase(cfg config.AppConfig) (*gorm.DB, error) {
	return db.Open(db.Config{
		Driver:          cfg.Database.Driver,
		Path:            cfg.Database.Path,
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
}

func serve(ctx context.Context, cfg config.AppConfig) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	if err := db.EnsureUser(gdb, cfg.SuperRootUserName, cfg.SuperRootPassword); err != nil {
		return fmt.Errorf("ensure admin user: %w", err)
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		return err
	}
	media := storage.NewLocal(cfg.MediaDir, cfg.MediaURLPath, cfg.MaxUploadBytes)

	api := handler.NewAPI(gdb, tokens, media, slog.Default()).WithBodyLimit(cfg.MaxBodyBytes)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router.SetupRouter(api, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.ListenAddr, "prefix", cfg.APIPrefix)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	initLogger(os.Getenv("GIN_MODE"))
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
