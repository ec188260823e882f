package mongodb

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	DefaultDatabase   = "dockyard"
	DefaultCollection = "users"

	connectTimeout = 10 * time.Second
)

// Store is a MongoDB-based RepositoryStore. One document per registered repository.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

var _ interfaces.RepositoryStore = (*Store)(nil)

type repositoryDocument struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	RepoLink      string    `bson:"repoLink"`
	HasDockerfile bool      `bson:"hasDockerfile"`
	CreatedAt     time.Time `bson:"createdAt"`
}

func toDocument(repo *model.Repository) *repositoryDocument {
	return &repositoryDocument{
		ID:            string(repo.ID),
		Name:          repo.OwnerName,
		RepoLink:      repo.RepoLink,
		HasDockerfile: repo.HasDockerfile,
		CreatedAt:     repo.CreatedAt,
	}
}

func (x *repositoryDocument) toModel() *model.Repository {
	return &model.Repository{
		ID:            types.RepositoryID(x.ID),
		OwnerName:     x.Name,
		RepoLink:      x.RepoLink,
		HasDockerfile: x.HasDockerfile,
		CreatedAt:     x.CreatedAt,
	}
}

// New connects to MongoDB and verifies the connection with ping
func New(ctx context.Context, uri types.MongoDBURI, database, collection string) (*Store, error) {
	if uri == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "MongoDB URI is empty")
	}
	if database == "" {
		database = DefaultDatabase
	}
	if collection == "" {
		collection = DefaultCollection
	}

	connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connCtx, options.Client().ApplyURI(string(uri)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to connect to MongoDB",
			goerr.V("database", database),
		)
	}

	if err := client.Ping(connCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, goerr.Wrap(err, "failed to ping MongoDB",
			goerr.V("database", database),
		)
	}

	coll := client.Database(database).Collection(collection)

	if _, err := coll.Indexes().CreateOne(connCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	}); err != nil {
		_ = client.Disconnect(ctx)
		return nil, goerr.Wrap(err, "failed to create index",
			goerr.V("database", database),
			goerr.V("collection", collection),
		)
	}

	return &Store{
		client:     client,
		collection: coll,
	}, nil
}

// Close disconnects from MongoDB
func (x *Store) Close(ctx context.Context) error {
	if err := x.client.Disconnect(ctx); err != nil {
		return goerr.Wrap(err, "failed to disconnect from MongoDB")
	}
	return nil
}

func (x *Store) InsertRepository(ctx context.Context, repo *model.Repository) error {
	if repo == nil || repo.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository ID is empty")
	}

	if _, err := x.collection.InsertOne(ctx, toDocument(repo)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return goerr.Wrap(repository.ErrAlreadyExists, "repository already exists",
				goerr.V("id", repo.ID),
			)
		}
		return goerr.Wrap(err, "failed to insert repository",
			goerr.V("id", repo.ID),
			goerr.V("owner", repo.OwnerName),
		)
	}

	return nil
}

func (x *Store) FindRepositoriesByOwner(ctx context.Context, owner string) ([]*model.Repository, error) {
	repos, err := x.find(ctx, bson.M{"name": owner})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find repositories by owner", goerr.V("owner", owner))
	}
	return repos, nil
}

func (x *Store) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	repos, err := x.find(ctx, bson.M{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}
	return repos, nil
}

func (x *Store) find(ctx context.Context, filter bson.M) ([]*model.Repository, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := x.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query collection")
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []*repositoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, goerr.Wrap(err, "failed to decode documents")
	}

	repos := make([]*model.Repository, 0, len(docs))
	for _, doc := range docs {
		repos = append(repos, doc.toModel())
	}
	return repos, nil
}
