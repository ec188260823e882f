package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/utils/logging"
)

// RegisterRepository scans the repository and stores a record only when a Dockerfile is found.
func (x *UseCase) RegisterRepository(ctx context.Context, input *model.RegisterRepositoryInput) (*model.Repository, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	store := x.clients.RepositoryStore()
	if store == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository store is not configured")
	}

	result, err := x.ScanDockerfile(ctx, &model.ScanDockerfileInput{GitHubRepo: input.GitHubRepo()})
	if err != nil {
		return nil, err
	}
	if !result.Found {
		return nil, goerr.Wrap(types.ErrNoDockerfile, "repository has no Dockerfile",
			goerr.V("owner", input.OwnerName),
			goerr.V("repo", input.RepoLink),
			goerr.V("visited_dirs", result.VisitedDirs),
			goerr.V("failures", len(result.Failures)),
		)
	}

	repo := &model.Repository{
		ID:            types.NewRepositoryID(),
		OwnerName:     input.OwnerName,
		RepoLink:      input.RepoLink,
		HasDockerfile: true,
		CreatedAt:     logging.CtxTime(ctx),
	}

	if err := store.InsertRepository(ctx, repo); err != nil {
		return nil, goerr.Wrap(err, "failed to insert repository",
			goerr.V("owner", input.OwnerName),
			goerr.V("repo", input.RepoLink),
		)
	}

	logging.From(ctx).Info("repository registered",
		slog.String("id", string(repo.ID)),
		slog.String("owner", repo.OwnerName),
		slog.String("repo", repo.RepoLink),
		slog.String("dockerfile", result.DockerfilePath),
	)

	return repo, nil
}
