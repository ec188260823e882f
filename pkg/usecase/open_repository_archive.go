package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/utils/logging"
)

// OpenRepositoryArchive opens the zipball of the first branch in the fallback list that can be downloaded.
// The caller must close Body of the returned archive.
func (x *UseCase) OpenRepositoryArchive(ctx context.Context, input *model.DownloadArchiveInput) (*model.RepositoryArchive, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh := x.clients.GitHub()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx)

	for _, branch := range x.archiveBranches {
		body, err := gh.OpenArchive(ctx, &interfaces.OpenArchiveInput{
			Owner:  input.Owner,
			Repo:   input.RepoName,
			Branch: branch,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, goerr.Wrap(ctx.Err(), "archive download is interrupted",
					goerr.V("owner", input.Owner),
					goerr.V("repo", input.RepoName),
				)
			}

			logger.Warn("failed to open archive, try next branch",
				slog.String("owner", input.Owner),
				slog.String("repo", input.RepoName),
				slog.String("branch", string(branch)),
				slog.Any("error", err),
			)
			continue
		}

		logger.Info("archive opened",
			slog.String("owner", input.Owner),
			slog.String("repo", input.RepoName),
			slog.String("branch", string(branch)),
		)

		return &model.RepositoryArchive{
			Owner:    input.Owner,
			RepoName: input.RepoName,
			Branch:   branch,
			Body:     body,
		}, nil
	}

	return nil, goerr.Wrap(types.ErrArchiveNotFound, "no branch provided an archive",
		goerr.V("owner", input.Owner),
		goerr.V("repo", input.RepoName),
		goerr.V("branches", x.archiveBranches),
	)
}
