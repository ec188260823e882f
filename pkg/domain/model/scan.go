package model

import (
	"log/slog"
)

type ScanDockerfileInput struct {
	GitHubRepo
}

func (x *ScanDockerfileInput) Validate() error {
	return x.GitHubRepo.Validate()
}

// ScanResult is the outcome of a Dockerfile presence scan. Found is the only field
// that drives control flow; Failures are diagnostics of directories that could not be listed.
type ScanResult struct {
	Owner          string         `json:"owner"`
	RepoName       string         `json:"repo_name"`
	Found          bool           `json:"found"`
	DockerfilePath string         `json:"dockerfile_path,omitempty"`
	VisitedDirs    int            `json:"visited_dirs"`
	Failures       []*ScanFailure `json:"failures,omitempty"`
}

// ScanFailure records a directory whose listing failed. Its subtree is treated as not containing a Dockerfile.
type ScanFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

func (x *ScanResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("owner", x.Owner),
		slog.String("repo", x.RepoName),
		slog.Bool("found", x.Found),
		slog.String("dockerfile_path", x.DockerfilePath),
		slog.Int("visited_dirs", x.VisitedDirs),
		slog.Int("failures", len(x.Failures)),
	)
}
