package mongodb_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/repository/mongodb"
	"github.com/secmon-lab/dockyard/pkg/repository/testhelper"
	"github.com/secmon-lab/dockyard/pkg/utils/testutil"
)

func TestMongoDBRepositoryStore(t *testing.T) {
	uri := testutil.GetEnvOrSkip(t, "TEST_MONGODB_URI")

	ctx := context.Background()
	collection := fmt.Sprintf("test-%s", uuid.New().String()[:8])
	store, err := mongodb.New(ctx, types.MongoDBURI(uri), "dockyard-test", collection)
	gt.NoError(t, err)
	t.Cleanup(func() {
		gt.NoError(t, store.Close(context.Background()))
	})

	testhelper.TestAll(t, store)
}

func TestNewWithEmptyURI(t *testing.T) {
	store, err := mongodb.New(context.Background(), "", "", "")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
	gt.V(t, store).Equal(nil)
}
