package infra

import (
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
)

// Clients bundles external collaborators. It is built once at startup and shared by all requests.
type Clients struct {
	github          interfaces.GitHub
	repositoryStore interfaces.RepositoryStore
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}

func (x *Clients) RepositoryStore() interfaces.RepositoryStore {
	return x.repositoryStore
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithRepositoryStore(store interfaces.RepositoryStore) Option {
	return func(x *Clients) {
		x.repositoryStore = store
	}
}
