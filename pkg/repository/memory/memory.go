package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/repository"
)

type repositoryStore struct {
	mu    sync.RWMutex
	ids   map[string]struct{}
	repos []*model.Repository
}

var _ interfaces.RepositoryStore = (*repositoryStore)(nil)

// New creates a new in-memory repository store. Records are kept in insertion order.
func New() interfaces.RepositoryStore {
	return &repositoryStore{
		ids: make(map[string]struct{}),
	}
}

func (r *repositoryStore) InsertRepository(ctx context.Context, repo *model.Repository) error {
	if repo == nil || repo.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[string(repo.ID)]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "repository already exists",
			goerr.V("id", repo.ID),
		)
	}

	r.ids[string(repo.ID)] = struct{}{}
	r.repos = append(r.repos, copyRepository(repo))

	return nil
}

func (r *repositoryStore) FindRepositoriesByOwner(ctx context.Context, owner string) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var repos []*model.Repository
	for _, repo := range r.repos {
		if repo.OwnerName == owner {
			repos = append(repos, copyRepository(repo))
		}
	}

	return repos, nil
}

func (r *repositoryStore) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repos := make([]*model.Repository, 0, len(r.repos))
	for _, repo := range r.repos {
		repos = append(repos, copyRepository(repo))
	}

	return repos, nil
}

func copyRepository(repo *model.Repository) *model.Repository {
	copied := *repo
	return &copied
}
