package interfaces

import (
	"context"

	"github.com/secmon-lab/dockyard/pkg/domain/model"
)

//go:generate moq -out ../mock/repository_store_mock.go -pkg mock . RepositoryStore

// RepositoryStore persists registered repositories. Records are create-only.
type RepositoryStore interface {
	InsertRepository(ctx context.Context, repo *model.Repository) error
	FindRepositoriesByOwner(ctx context.Context, owner string) ([]*model.Repository, error)
	ListRepositories(ctx context.Context) ([]*model.Repository, error)
}
