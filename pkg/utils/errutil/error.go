package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/utils/logging"
)

// HandleError reports an unexpected error to Sentry and logs it with the event ID.
// goerr values are attached to the Sentry event as extra data.
func HandleError(ctx context.Context, msg string, err error) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if reqID, ok := logging.LookupRequestID(ctx); ok {
			scope.SetTag("request_id", string(reqID))
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})

	var evID *sentry.EventID
	if err != nil {
		evID = hub.CaptureException(err)
	}

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
