package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/dockyard/pkg/domain/model"
)

type UseCase interface {
	ScanDockerfile(ctx context.Context, input *model.ScanDockerfileInput) (*model.ScanResult, error)
	RegisterRepository(ctx context.Context, input *model.RegisterRepositoryInput) (*model.Repository, error)
	ListRepositoriesByOwner(ctx context.Context, owner string) ([]*model.Repository, error)
	ListRepositories(ctx context.Context) ([]*model.Repository, error)
	OpenRepositoryArchive(ctx context.Context, input *model.DownloadArchiveInput) (*model.RepositoryArchive, error)
}
