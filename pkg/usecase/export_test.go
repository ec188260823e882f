package usecase

import "github.com/secmon-lab/dockyard/pkg/domain/types"

func (x *UseCase) ScanConcurrencyForTest() int {
	return x.scanConcurrency
}

func (x *UseCase) ArchiveBranchesForTest() []types.BranchName {
	return x.archiveBranches
}
