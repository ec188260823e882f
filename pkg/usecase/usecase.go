package usecase

import (
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/infra"
)

const DefaultScanConcurrency = 4

type UseCase struct {
	clients         *infra.Clients
	scanConcurrency int
	archiveBranches []types.BranchName
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithScanConcurrency sets the maximum number of directory listings in flight during a scan. Values below 1 are treated as 1.
func WithScanConcurrency(n int) Option {
	return func(x *UseCase) {
		if n < 1 {
			n = 1
		}
		x.scanConcurrency = n
	}
}

// WithArchiveBranches overrides the branch fallback list used for archive download. An empty list keeps the default.
func WithArchiveBranches(branches ...types.BranchName) Option {
	return func(x *UseCase) {
		if len(branches) > 0 {
			x.archiveBranches = branches
		}
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:         clients,
		scanConcurrency: DefaultScanConcurrency,
		archiveBranches: types.DefaultArchiveBranches,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
