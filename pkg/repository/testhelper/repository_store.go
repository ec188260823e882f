package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/repository"
)

// TestAll runs all test cases for RepositoryStore
// This is the main entry point for testing any RepositoryStore implementation
func TestAll(t *testing.T, store interfaces.RepositoryStore) {
	t.Run("InsertAndFindByOwner", func(t *testing.T) {
		TestInsertAndFindByOwner(t, store)
	})
	t.Run("FindUnknownOwner", func(t *testing.T) {
		TestFindUnknownOwner(t, store)
	})
	t.Run("ListRepositories", func(t *testing.T) {
		TestListRepositories(t, store)
	})
	t.Run("DuplicateID", func(t *testing.T) {
		TestDuplicateID(t, store)
	})
	t.Run("InvalidInput", func(t *testing.T) {
		TestInvalidInput(t, store)
	})
}

func newTestRepository(owner, repoName string) *model.Repository {
	return &model.Repository{
		ID:            types.NewRepositoryID(),
		OwnerName:     owner,
		RepoLink:      repoName,
		HasDockerfile: true,
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}

// TestInsertAndFindByOwner tests that records are found by owner name and other owners are not mixed
func TestInsertAndFindByOwner(t *testing.T, store interfaces.RepositoryStore) {
	ctx := context.Background()

	owner := uniqueName("owner")
	other := uniqueName("other")

	repo1 := newTestRepository(owner, uniqueName("repo"))
	repo2 := newTestRepository(owner, uniqueName("repo"))
	repo3 := newTestRepository(other, uniqueName("repo"))

	for _, repo := range []*model.Repository{repo1, repo2, repo3} {
		gt.NoError(t, store.InsertRepository(ctx, repo))
	}

	found, err := store.FindRepositoriesByOwner(ctx, owner)
	gt.NoError(t, err)
	gt.V(t, len(found)).Equal(2)

	byID := map[types.RepositoryID]*model.Repository{}
	for _, repo := range found {
		gt.V(t, repo.OwnerName).Equal(owner)
		byID[repo.ID] = repo
	}

	for _, expected := range []*model.Repository{repo1, repo2} {
		actual, ok := byID[expected.ID]
		gt.True(t, ok)
		gt.V(t, actual.RepoLink).Equal(expected.RepoLink)
		gt.V(t, actual.HasDockerfile).Equal(true)
		gt.True(t, actual.CreatedAt.Equal(expected.CreatedAt))
	}

	// Modifying returned record must not affect stored one
	found[0].RepoLink = "modified"
	again, err := store.FindRepositoriesByOwner(ctx, owner)
	gt.NoError(t, err)
	for _, repo := range again {
		gt.V(t, repo.RepoLink).NotEqual("modified")
	}
}

// TestFindUnknownOwner tests that an owner without records returns an empty result, not an error
func TestFindUnknownOwner(t *testing.T, store interfaces.RepositoryStore) {
	ctx := context.Background()

	found, err := store.FindRepositoriesByOwner(ctx, uniqueName("nobody"))
	gt.NoError(t, err)
	gt.V(t, len(found)).Equal(0)
}

// TestListRepositories tests that all inserted records appear in the global listing
func TestListRepositories(t *testing.T, store interfaces.RepositoryStore) {
	ctx := context.Background()

	repo1 := newTestRepository(uniqueName("owner"), uniqueName("repo"))
	repo2 := newTestRepository(uniqueName("owner"), uniqueName("repo"))
	gt.NoError(t, store.InsertRepository(ctx, repo1))
	gt.NoError(t, store.InsertRepository(ctx, repo2))

	all, err := store.ListRepositories(ctx)
	gt.NoError(t, err)
	gt.True(t, len(all) >= 2)

	seen := map[types.RepositoryID]bool{}
	for _, repo := range all {
		seen[repo.ID] = true
	}
	gt.True(t, seen[repo1.ID])
	gt.True(t, seen[repo2.ID])
}

// TestDuplicateID tests that a record cannot be created twice with the same ID
func TestDuplicateID(t *testing.T, store interfaces.RepositoryStore) {
	ctx := context.Background()

	repo := newTestRepository(uniqueName("owner"), uniqueName("repo"))
	gt.NoError(t, store.InsertRepository(ctx, repo))

	err := store.InsertRepository(ctx, repo)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))
}

// TestInvalidInput tests that a record without ID is rejected
func TestInvalidInput(t *testing.T, store interfaces.RepositoryStore) {
	ctx := context.Background()

	repo := newTestRepository(uniqueName("owner"), uniqueName("repo"))
	repo.ID = ""

	err := store.InsertRepository(ctx, repo)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}
