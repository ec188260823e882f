package cli

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/dockyard/pkg/cli/config"
	"github.com/secmon-lab/dockyard/pkg/controller/server"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/infra"
	"github.com/secmon-lab/dockyard/pkg/usecase"
	"github.com/secmon-lab/dockyard/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 30 * time.Second

func serveCommand() *cli.Command {
	var (
		addr            string
		port            int64
		scanConcurrency int64
		archiveBranches []string
		corsOrigins     []string

		github    config.GitHub
		mongoDB   config.MongoDB
		firestore config.Firestore
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding host",
			Value:       "0.0.0.0",
			Sources:     cli.EnvVars("DOCKYARD_ADDR"),
			Destination: &addr,
		},
		&cli.Int64Flag{
			Name:        "port",
			Aliases:     []string{"p"},
			Usage:       "Listening port",
			Value:       5000,
			Sources:     cli.EnvVars("DOCKYARD_PORT", "PORT"),
			Destination: &port,
		},
		&cli.Int64Flag{
			Name:        "scan-concurrency",
			Usage:       "Maximum number of directory listings in flight per scan",
			Value:       usecase.DefaultScanConcurrency,
			Sources:     cli.EnvVars("DOCKYARD_SCAN_CONCURRENCY"),
			Destination: &scanConcurrency,
		},
		&cli.StringSliceFlag{
			Name:        "archive-branch",
			Usage:       "Branch tried in order for archive download (default: main, master)",
			Sources:     cli.EnvVars("DOCKYARD_ARCHIVE_BRANCH"),
			Destination: &archiveBranches,
		},
		&cli.StringSliceFlag{
			Name:        "cors-origin",
			Usage:       "Allowed CORS origin (default: all origins)",
			Sources:     cli.EnvVars("DOCKYARD_CORS_ORIGIN"),
			Destination: &corsOrigins,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			mongoDB.Flags(),
			firestore.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			listenAddr := net.JoinHostPort(addr, strconv.FormatInt(port, 10))

			logging.Default().Info("starting serve",
				slog.String("Addr", listenAddr),
				slog.Int64("ScanConcurrency", scanConcurrency),
				slog.Any("ArchiveBranches", archiveBranches),
				slog.Any("CORSOrigins", corsOrigins),
				slog.Any("GitHub", &github),
				slog.Any("MongoDB", &mongoDB),
				slog.Any("Firestore", &firestore),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			store, closeStore, err := newRepositoryStore(ctx, &mongoDB, &firestore)
			if err != nil {
				return err
			}
			defer closeStore()

			clients := infra.New(
				infra.WithGitHub(ghClient),
				infra.WithRepositoryStore(store),
			)

			branches := make([]types.BranchName, 0, len(archiveBranches))
			for _, b := range archiveBranches {
				branches = append(branches, types.BranchName(b))
			}

			uc := usecase.New(clients,
				usecase.WithScanConcurrency(int(scanConcurrency)),
				usecase.WithArchiveBranches(branches...),
			)
			s := server.New(uc, server.WithCORSOrigins(corsOrigins...))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    listenAddr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// No WriteTimeout: registration scans and archive streams can take longer than any fixed limit
			}

			go func() {
				logging.Default().Info("starting http server", "addr", listenAddr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
