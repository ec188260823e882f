package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/mock"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/infra"
	"github.com/secmon-lab/dockyard/pkg/usecase"
)

func TestNew(t *testing.T) {
	t.Run("default options", func(t *testing.T) {
		uc := usecase.New(infra.New())
		gt.V(t, uc.ScanConcurrencyForTest()).Equal(usecase.DefaultScanConcurrency)
		gt.V(t, uc.ArchiveBranchesForTest()).Equal(types.DefaultArchiveBranches)
	})

	t.Run("scan concurrency is at least 1", func(t *testing.T) {
		uc := usecase.New(infra.New(), usecase.WithScanConcurrency(0))
		gt.V(t, uc.ScanConcurrencyForTest()).Equal(1)

		uc = usecase.New(infra.New(), usecase.WithScanConcurrency(16))
		gt.V(t, uc.ScanConcurrencyForTest()).Equal(16)
	})

	t.Run("empty archive branches keep default", func(t *testing.T) {
		uc := usecase.New(infra.New(), usecase.WithArchiveBranches())
		gt.V(t, uc.ArchiveBranchesForTest()).Equal(types.DefaultArchiveBranches)

		uc = usecase.New(infra.New(), usecase.WithArchiveBranches("develop"))
		gt.V(t, uc.ArchiveBranchesForTest()).Equal([]types.BranchName{"develop"})
	})
}

func TestMissingClients(t *testing.T) {
	uc := usecase.New(infra.New())
	ctx := context.Background()
	repo := model.GitHubRepo{Owner: "octocat", RepoName: "hello-world"}

	_, err := uc.ScanDockerfile(ctx, &model.ScanDockerfileInput{GitHubRepo: repo})
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, err = uc.RegisterRepository(ctx, &model.RegisterRepositoryInput{OwnerName: "octocat", RepoLink: "hello-world"})
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, err = uc.ListRepositories(ctx)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, err = uc.OpenRepositoryArchive(ctx, &model.DownloadArchiveInput{GitHubRepo: repo})
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

// tree maps a directory path to its listing. Paths in failures return the error instead.
type tree struct {
	dirs     map[string][]*model.ContentEntry
	failures map[string]error
}

func (x *tree) listDirectory(ctx context.Context, input *interfaces.ListDirectoryInput) ([]*model.ContentEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := x.failures[input.Path]; ok {
		return nil, err
	}
	entries, ok := x.dirs[input.Path]
	if !ok {
		return nil, types.ErrNotFound
	}
	return entries, nil
}

func (x *tree) mock() *mock.GitHubMock {
	return &mock.GitHubMock{
		ListDirectoryFunc: x.listDirectory,
	}
}

func file(name string) *model.ContentEntry {
	return &model.ContentEntry{Name: name, Type: types.ContentTypeFile}
}

func dir(name string) *model.ContentEntry {
	return &model.ContentEntry{Name: name, Type: types.ContentTypeDir}
}

func listedPaths(m *mock.GitHubMock) []string {
	var paths []string
	for _, call := range m.ListDirectoryCalls() {
		paths = append(paths, call.Input.Path)
	}
	return paths
}

type archiveBody struct {
	io.Reader
	closed bool
}

func (x *archiveBody) Close() error {
	x.closed = true
	return nil
}

func newArchiveBody(s string) *archiveBody {
	return &archiveBody{Reader: strings.NewReader(s)}
}
