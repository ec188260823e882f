package model

import (
	"io"

	"github.com/secmon-lab/dockyard/pkg/domain/types"
)

// RegisterRepositoryInput is the body of a registration request
type RegisterRepositoryInput struct {
	OwnerName string `json:"name"`
	RepoLink  string `json:"repoLink"`
}

func (x *RegisterRepositoryInput) Validate() error {
	repo := x.GitHubRepo()
	return repo.Validate()
}

func (x *RegisterRepositoryInput) GitHubRepo() GitHubRepo {
	return GitHubRepo{Owner: x.OwnerName, RepoName: x.RepoLink}
}

type DownloadArchiveInput struct {
	GitHubRepo
}

func (x *DownloadArchiveInput) Validate() error {
	return x.GitHubRepo.Validate()
}

// RepositoryArchive is an opened zipball of a repository branch. Body must be closed by the caller.
type RepositoryArchive struct {
	Owner    string
	RepoName string
	Branch   types.BranchName
	Body     io.ReadCloser
}

func (x *RepositoryArchive) FileName() string {
	return x.RepoName + "_" + string(x.Branch) + ".zip"
}
