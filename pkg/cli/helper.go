package cli

import (
	"context"

	"github.com/secmon-lab/dockyard/pkg/cli/config"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/repository/memory"
	"github.com/secmon-lab/dockyard/pkg/utils/logging"
)

// newRepositoryStore selects MongoDB if a URI is resolved, then Firestore if a project is set, and falls back to
// in-memory store. The returned closer must be called on shutdown.
func newRepositoryStore(ctx context.Context, mongoDB *config.MongoDB, firestore *config.Firestore) (interfaces.RepositoryStore, func(), error) {
	mongoStore, err := mongoDB.NewStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	if mongoStore != nil {
		logging.From(ctx).Info("using MongoDB repository store", "config", mongoDB)
		return mongoStore, func() {
			if err := mongoStore.Close(context.Background()); err != nil {
				logging.Default().Warn("failed to close MongoDB", "error", err)
			}
		}, nil
	}

	if firestore.Enabled() {
		fsStore, err := firestore.NewStore(ctx)
		if err != nil {
			return nil, nil, err
		}
		logging.From(ctx).Info("using Firestore repository store", "config", firestore)
		return fsStore, func() {
			if err := fsStore.Close(); err != nil {
				logging.Default().Warn("failed to close Firestore", "error", err)
			}
		}, nil
	}

	logging.From(ctx).Warn("no database is configured, registered repositories are kept in memory and lost on exit")
	return memory.New(), func() {}, nil
}
