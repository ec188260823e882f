package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/mock"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/infra"
	"github.com/secmon-lab/dockyard/pkg/usecase"
)

func downloadInput() *model.DownloadArchiveInput {
	return &model.DownloadArchiveInput{
		GitHubRepo: model.GitHubRepo{Owner: "octocat", RepoName: "hello-world"},
	}
}

func archiveMock(bodies map[types.BranchName]string) *mock.GitHubMock {
	return &mock.GitHubMock{
		OpenArchiveFunc: func(ctx context.Context, input *interfaces.OpenArchiveInput) (io.ReadCloser, error) {
			body, ok := bodies[input.Branch]
			if !ok {
				return nil, types.ErrNotFound
			}
			return newArchiveBody(body), nil
		},
	}
}

func branchesOf(m *mock.GitHubMock) []types.BranchName {
	var branches []types.BranchName
	for _, call := range m.OpenArchiveCalls() {
		branches = append(branches, call.Input.Branch)
	}
	return branches
}

func TestOpenRepositoryArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("primary branch", func(t *testing.T) {
		gh := archiveMock(map[types.BranchName]string{"main": "main-bytes", "master": "master-bytes"})
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		archive, err := uc.OpenRepositoryArchive(ctx, downloadInput())
		gt.NoError(t, err)
		defer archive.Body.Close()

		gt.V(t, archive.Branch).Equal(types.BranchName("main"))
		gt.V(t, archive.FileName()).Equal("hello-world_main.zip")
		data := gt.R1(io.ReadAll(archive.Body)).NoError(t)
		gt.V(t, string(data)).Equal("main-bytes")
		gt.V(t, branchesOf(gh)).Equal([]types.BranchName{"main"})
	})

	t.Run("fallback branch", func(t *testing.T) {
		gh := archiveMock(map[types.BranchName]string{"master": "master-bytes"})
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		archive, err := uc.OpenRepositoryArchive(ctx, downloadInput())
		gt.NoError(t, err)
		defer archive.Body.Close()

		gt.V(t, archive.Branch).Equal(types.BranchName("master"))
		gt.V(t, archive.FileName()).Equal("hello-world_master.zip")
		data := gt.R1(io.ReadAll(archive.Body)).NoError(t)
		gt.V(t, string(data)).Equal("master-bytes")
		gt.V(t, branchesOf(gh)).Equal([]types.BranchName{"main", "master"})
	})

	t.Run("all branches fail", func(t *testing.T) {
		gh := archiveMock(map[types.BranchName]string{})
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		archive, err := uc.OpenRepositoryArchive(ctx, downloadInput())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrArchiveNotFound))
		gt.V(t, archive).Equal(nil)
		gt.V(t, branchesOf(gh)).Equal([]types.BranchName{"main", "master"})
	})

	t.Run("custom branch list", func(t *testing.T) {
		gh := archiveMock(map[types.BranchName]string{"develop": "dev-bytes", "main": "main-bytes"})
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithArchiveBranches("trunk", "develop"))

		archive, err := uc.OpenRepositoryArchive(ctx, downloadInput())
		gt.NoError(t, err)
		defer archive.Body.Close()

		gt.V(t, archive.Branch).Equal(types.BranchName("develop"))
		gt.V(t, branchesOf(gh)).Equal([]types.BranchName{"trunk", "develop"})
	})

	t.Run("invalid input", func(t *testing.T) {
		gh := archiveMock(nil)
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		_, err := uc.OpenRepositoryArchive(ctx, &model.DownloadArchiveInput{
			GitHubRepo: model.GitHubRepo{Owner: "octocat", RepoName: "a/b"},
		})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(gh.OpenArchiveCalls())).Equal(0)
	})
}
