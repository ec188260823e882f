package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
)

var (
	// GitHub login: alphanumeric and single hyphens, up to 39 characters
	ptnValidOwner = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,37}[A-Za-z0-9])?$`)
	ptnValidRepo  = regexp.MustCompile(`^[A-Za-z0-9._-]{1,100}$`)
)

type GitHubRepo struct {
	Owner    string `json:"owner"`
	RepoName string `json:"repo_name"`
}

// Validate checks owner and repository names before they are put into a request path of GitHub API
func (x *GitHubRepo) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if !ptnValidOwner.MatchString(x.Owner) {
		return goerr.Wrap(types.ErrValidationFailed, "invalid owner name", goerr.V("owner", x.Owner))
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is empty")
	}
	if x.RepoName == "." || x.RepoName == ".." || !ptnValidRepo.MatchString(x.RepoName) {
		return goerr.Wrap(types.ErrValidationFailed, "invalid repository name", goerr.V("repo", x.RepoName))
	}
	return nil
}

// ContentEntry is an entry of a directory listing returned by GitHub contents API
type ContentEntry struct {
	Name string            `json:"name"`
	Path string            `json:"path"`
	Type types.ContentType `json:"type"`
}

func (x *ContentEntry) IsFile() bool {
	return x.Type == types.ContentTypeFile
}

func (x *ContentEntry) IsDir() bool {
	return x.Type == types.ContentTypeDir
}
