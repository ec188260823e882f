package model_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
)

func TestGitHubRepoValidate(t *testing.T) {
	t.Run("valid repo passes validation", func(t *testing.T) {
		repo := &model.GitHubRepo{Owner: "secmon-lab", RepoName: "dockyard"}
		gt.NoError(t, repo.Validate())
	})

	t.Run("repo name with dot and underscore passes validation", func(t *testing.T) {
		repo := &model.GitHubRepo{Owner: "octocat", RepoName: "my_repo.go"}
		gt.NoError(t, repo.Validate())
	})

	testCases := []struct {
		name string
		repo model.GitHubRepo
	}{
		{name: "missing owner", repo: model.GitHubRepo{RepoName: "dockyard"}},
		{name: "missing repo name", repo: model.GitHubRepo{Owner: "secmon-lab"}},
		{name: "owner with slash", repo: model.GitHubRepo{Owner: "secmon-lab/x", RepoName: "dockyard"}},
		{name: "owner starting with hyphen", repo: model.GitHubRepo{Owner: "-secmon", RepoName: "dockyard"}},
		{name: "too long owner", repo: model.GitHubRepo{Owner: strings.Repeat("a", 40), RepoName: "dockyard"}},
		{name: "repo with path traversal", repo: model.GitHubRepo{Owner: "secmon-lab", RepoName: ".."}},
		{name: "repo with slash", repo: model.GitHubRepo{Owner: "secmon-lab", RepoName: "a/../b"}},
		{name: "repo with query", repo: model.GitHubRepo{Owner: "secmon-lab", RepoName: "repo?ref=x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name+" fails validation", func(t *testing.T) {
			err := tc.repo.Validate()
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrValidationFailed))
		})
	}
}

func TestContentEntry(t *testing.T) {
	file := &model.ContentEntry{Name: "Dockerfile", Type: types.ContentTypeFile}
	gt.True(t, file.IsFile())
	gt.False(t, file.IsDir())

	dir := &model.ContentEntry{Name: "src", Type: types.ContentTypeDir}
	gt.True(t, dir.IsDir())
	gt.False(t, dir.IsFile())

	link := &model.ContentEntry{Name: "link", Type: types.ContentTypeSymlink}
	gt.False(t, link.IsDir())
	gt.False(t, link.IsFile())
}
