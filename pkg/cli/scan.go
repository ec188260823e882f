package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/dockyard/pkg/cli/config"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/infra"
	"github.com/secmon-lab/dockyard/pkg/usecase"
	"github.com/secmon-lab/dockyard/pkg/utils/logging"
	"github.com/secmon-lab/dockyard/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func scanCommand() *cli.Command {
	var (
		input           model.ScanDockerfileInput
		output          string
		scanConcurrency int64

		github config.GitHub
	)

	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"sc"},
		Usage:   "Scan a GitHub repository for a Dockerfile once and print the result as JSON",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "GitHub repository owner",
				Required:    true,
				Destination: &input.Owner,
			},
			&cli.StringFlag{
				Name:        "repo",
				Usage:       "GitHub repository name",
				Required:    true,
				Destination: &input.RepoName,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "Output file path [-|<file>]",
				Value:       "-",
				Destination: &output,
			},
			&cli.Int64Flag{
				Name:        "scan-concurrency",
				Usage:       "Maximum number of directory listings in flight",
				Value:       usecase.DefaultScanConcurrency,
				Sources:     cli.EnvVars("DOCKYARD_SCAN_CONCURRENCY"),
				Destination: &scanConcurrency,
			},
		}, github.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting scan",
				slog.String("owner", input.Owner),
				slog.String("repo", input.RepoName),
				slog.Any("GitHub", &github),
			)

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithGitHub(ghClient)),
				usecase.WithScanConcurrency(int(scanConcurrency)),
			)

			result, err := uc.ScanDockerfile(ctx, &input)
			if err != nil {
				return err
			}

			if err := writeScanResult(output, result); err != nil {
				return err
			}

			if !result.Found {
				return goerr.Wrap(types.ErrNoDockerfile, "Dockerfile is not found",
					goerr.V("owner", input.Owner),
					goerr.V("repo", input.RepoName),
				)
			}
			return nil
		},
	}
}

func writeScanResult(output string, result *model.ScanResult) error {
	var w io.Writer = os.Stdout
	if output != "" && output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
		}
		defer safe.Close(f)
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return goerr.Wrap(err, "failed to write scan result")
	}
	return nil
}
