package usecase

import (
	"context"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

const dockerfileName = "dockerfile"

type listingResult struct {
	path    string
	entries []*model.ContentEntry
	err     error
}

// ScanDockerfile walks the repository tree through the GitHub contents API and reports whether a file
// named Dockerfile (case-insensitive) exists anywhere. The walk stops at the first match. A directory that
// cannot be listed is recorded in Failures and skipped; it never aborts the scan.
func (x *UseCase) ScanDockerfile(ctx context.Context, input *model.ScanDockerfileInput) (*model.ScanResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh := x.clients.GitHub()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx).With(
		slog.String("owner", input.Owner),
		slog.String("repo", input.RepoName),
	)

	result := &model.ScanResult{
		Owner:    input.Owner,
		RepoName: input.RepoName,
	}

	scanCtx, cancel := context.WithCancel(ctx)
	var eg errgroup.Group
	eg.SetLimit(x.scanConcurrency)
	defer func() {
		cancel()
		_ = eg.Wait()
	}()

	// Buffer is as large as the number of in-flight listings, so workers never block on send
	// and always finish after cancel.
	results := make(chan *listingResult, x.scanConcurrency)
	pending := []string{""}
	inFlight := 0

	for len(pending) > 0 || inFlight > 0 {
		for len(pending) > 0 && inFlight < x.scanConcurrency {
			dir := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			inFlight++

			eg.Go(func() error {
				entries, err := gh.ListDirectory(scanCtx, &interfaces.ListDirectoryInput{
					Owner: input.Owner,
					Repo:  input.RepoName,
					Path:  dir,
				})
				results <- &listingResult{path: dir, entries: entries, err: err}
				return nil
			})
		}

		var listing *listingResult
		select {
		case listing = <-results:
		case <-ctx.Done():
			return nil, goerr.Wrap(ctx.Err(), "scan is interrupted", goerr.V("visited_dirs", result.VisitedDirs))
		}
		inFlight--
		result.VisitedDirs++

		if listing.err != nil {
			if ctx.Err() != nil {
				return nil, goerr.Wrap(ctx.Err(), "scan is interrupted", goerr.V("visited_dirs", result.VisitedDirs))
			}

			logger.Warn("failed to list directory, skip subtree",
				slog.String("path", listing.path),
				slog.Any("error", listing.err),
			)
			result.Failures = append(result.Failures, &model.ScanFailure{
				Path:  listing.path,
				Error: listing.err.Error(),
			})
			continue
		}

		var subDirs []string
		for _, entry := range listing.entries {
			switch {
			case entry.IsFile() && strings.EqualFold(entry.Name, dockerfileName):
				result.Found = true
				result.DockerfilePath = path.Join(listing.path, entry.Name)
				logger.Info("Dockerfile found", slog.Any("result", result))
				return result, nil

			case entry.IsDir():
				subDirs = append(subDirs, path.Join(listing.path, entry.Name))
			}
		}

		// Reversed so that the first listed directory is popped first
		slices.Reverse(subDirs)
		pending = append(pending, subDirs...)
	}

	logger.Info("Dockerfile not found", slog.Any("result", result))
	return result, nil
}
