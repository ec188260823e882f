package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/mock"
	"github.com/secmon-lab/dockyard/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.RepositoryStore()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(interfaces.GitHub(mockGH))
	})

	t.Run("WithRepositoryStore option sets store", func(t *testing.T) {
		mockStore := &mock.RepositoryStoreMock{}
		clients := infra.New(infra.WithRepositoryStore(mockStore))
		gt.V(t, clients.RepositoryStore()).Equal(interfaces.RepositoryStore(mockStore))
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockStore := &mock.RepositoryStoreMock{}

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithRepositoryStore(mockStore),
		)

		gt.V(t, clients.GitHub()).Equal(interfaces.GitHub(mockGH))
		gt.V(t, clients.RepositoryStore()).Equal(interfaces.RepositoryStore(mockStore))
	})
}
