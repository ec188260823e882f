package firestore

import (
	"context"
	"slices"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionRepositories = "repositories"

// Store is a Firestore-based RepositoryStore. Document ID is the repository record ID.
type Store struct {
	client *firestore.Client
}

var _ interfaces.RepositoryStore = (*Store)(nil)

// New creates a new Firestore-based repository store
func New(ctx context.Context, projectID, databaseID string) (*Store, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Store{
		client: client,
	}, nil
}

func (x *Store) Close() error {
	if err := x.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Firestore client")
	}
	return nil
}

func (x *Store) InsertRepository(ctx context.Context, repo *model.Repository) error {
	if repo == nil || repo.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository ID is empty")
	}

	docRef := x.client.Collection(collectionRepositories).Doc(string(repo.ID))
	if _, err := docRef.Create(ctx, repo); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "repository already exists",
				goerr.V("id", repo.ID),
			)
		}
		return goerr.Wrap(err, "failed to create repository",
			goerr.V("id", repo.ID),
			goerr.V("owner", repo.OwnerName),
		)
	}

	return nil
}

func (x *Store) FindRepositoriesByOwner(ctx context.Context, owner string) ([]*model.Repository, error) {
	query := x.client.Collection(collectionRepositories).Where("name", "==", owner)

	repos, err := collect(query.Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find repositories by owner", goerr.V("owner", owner))
	}
	return repos, nil
}

func (x *Store) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	repos, err := collect(x.client.Collection(collectionRepositories).Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}
	return repos, nil
}

// collect drains the iterator and orders records by creation time. Ordering is done
// here so that owner queries do not require a composite index.
func collect(iter *firestore.DocumentIterator) ([]*model.Repository, error) {
	defer iter.Stop()

	var repos []*model.Repository
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents")
		}

		var repo model.Repository
		if err := doc.DataTo(&repo); err != nil {
			return nil, goerr.Wrap(err, "failed to decode repository", goerr.V("docID", doc.Ref.ID))
		}
		repos = append(repos, &repo)
	}

	slices.SortStableFunc(repos, func(a, b *model.Repository) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return repos, nil
}
