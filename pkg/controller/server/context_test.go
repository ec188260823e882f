package server_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dockyard/pkg/controller/server"
	"github.com/secmon-lab/dockyard/pkg/utils/logging"
)

func TestDetachContext(t *testing.T) {
	logger := slog.Default().With("component", "test")
	fixedTime := time.Date(2024, 12, 25, 10, 30, 0, 0, time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	ctx = logging.With(ctx, logger)
	reqID, ctx := logging.CtxRequestID(ctx)
	ctx = logging.CtxWithTime(ctx, func() time.Time { return fixedTime })

	detached := server.DetachContext(ctx)
	cancel()

	t.Run("values are inherited", func(t *testing.T) {
		gt.V(t, logging.From(detached)).Equal(logger)

		inheritedID, _ := logging.CtxRequestID(detached)
		gt.V(t, inheritedID).Equal(reqID)

		gt.V(t, logging.CtxTime(detached)).Equal(fixedTime)
	})

	t.Run("cancel of original does not propagate", func(t *testing.T) {
		gt.V(t, ctx.Err()).Equal(context.Canceled)
		gt.V(t, detached.Err()).Equal(nil)
	})

	t.Run("empty original context", func(t *testing.T) {
		bg := server.DetachContext(context.Background())
		gt.V(t, logging.From(bg)).Equal(logging.Default())
		gt.V(t, bg.Err()).Equal(nil)
	})
}
