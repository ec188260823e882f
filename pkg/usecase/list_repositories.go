package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
)

// ListRepositoriesByOwner returns records registered by the owner. No record is reported as types.ErrNotFound.
func (x *UseCase) ListRepositoriesByOwner(ctx context.Context, owner string) ([]*model.Repository, error) {
	if owner == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}

	store := x.clients.RepositoryStore()
	if store == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository store is not configured")
	}

	repos, err := store.FindRepositoriesByOwner(ctx, owner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find repositories", goerr.V("owner", owner))
	}
	if len(repos) == 0 {
		return nil, goerr.Wrap(types.ErrNotFound, "no repository registered by owner", goerr.V("owner", owner))
	}

	return repos, nil
}

func (x *UseCase) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	store := x.clients.RepositoryStore()
	if store == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository store is not configured")
	}

	repos, err := store.ListRepositories(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}

	return repos, nil
}
