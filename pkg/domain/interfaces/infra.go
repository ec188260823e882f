package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"
	"io"

	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
)

// GitHub is the source-hosting API used for directory listing and archive download
type GitHub interface {
	ListDirectory(ctx context.Context, input *ListDirectoryInput) ([]*model.ContentEntry, error)
	OpenArchive(ctx context.Context, input *OpenArchiveInput) (io.ReadCloser, error)
}

type ListDirectoryInput struct {
	Owner string
	Repo  string
	Path  string
}

type OpenArchiveInput struct {
	Owner  string
	Repo   string
	Branch types.BranchName
}
