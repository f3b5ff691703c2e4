package reddypet

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"reddypet/internal/handlers"
	"reddypet/internal/logger"
	"reddypet/internal/platform"
	"reddypet/internal/server"
	"reddypet/internal/service"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the host-platform companion server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Server.Port = servePort
		}

		log := logger.Get(cfg.Log.Level)
		defer func() { _ = log.Sync() }()
		if cfg.Log.Level != logger.DebugLevel {
			gin.SetMode(gin.ReleaseMode)
		}

		client := &platform.Client{
			BaseURL:    cfg.Platform.BaseURL,
			Token:      cfg.Platform.Token,
			HTTPClient: &http.Client{Timeout: cfg.Platform.Timeout},
		}
		posts := service.NewPostService(client, cfg.Platform.AppDisplayName, cfg.Platform.Subreddit)
		apiHandler := handlers.NewHandler(posts, log)

		srv := server.New(cfg.Server.Port, apiHandler.InitRoutes())
		errCh := make(chan error, 1)
		go func() {
			log.Infow("server listening", "addr", srv.Addr())
			errCh <- srv.Run()
		}()

		return waitForShutdown(srv, errCh, log)
	},
}

// waitForShutdown blocks until a termination signal or a server failure,
// then drains in-flight requests.
func waitForShutdown(srv *server.Server, errCh <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			log.Errorw("error running server", "err", err)
		}
		return err
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return err
	}
	return <-errCh
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
