package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")

	// ErrNotFound is returned when no record exists for the requested owner
	ErrNotFound = goerr.New("not found")

	// ErrNoDockerfile is returned when a scan finished without finding a Dockerfile
	ErrNoDockerfile = goerr.New("no Dockerfile found")

	// ErrArchiveNotFound is returned when every candidate branch failed to provide an archive
	ErrArchiveNotFound = goerr.New("archive not found")
)
