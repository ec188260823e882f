package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dockyard/pkg/controller/server"
	"github.com/secmon-lab/dockyard/pkg/domain/mock"
	"github.com/secmon-lab/dockyard/pkg/utils/logging"
)

func TestPreProcess(t *testing.T) {
	t.Run("logger and request ID are set to context", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		gt.V(t, logging.From(capturedCtx) == logging.From(context.Background())).Equal(false)

		reqID, _ := logging.CtxRequestID(capturedCtx)
		gt.V(t, string(reqID)).NotEqual("")
		gt.V(t, w.Header().Get("X-Request-ID")).Equal(string(reqID))
	})

	t.Run("status code is passed through", func(t *testing.T) {
		testCases := map[string]struct {
			handlerFunc  http.HandlerFunc
			expectedCode int
		}{
			"explicit 404": {
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				},
				expectedCode: http.StatusNotFound,
			},
			"explicit 500": {
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				},
				expectedCode: http.StatusInternalServerError,
			},
			"implicit 200": {
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte("ok"))
				},
				expectedCode: http.StatusOK,
			},
		}

		for name, tc := range testCases {
			t.Run(name, func(t *testing.T) {
				srv := server.New(&mock.UseCaseMock{})
				mux := srv.Mux()
				mux.HandleFunc("/test", tc.handlerFunc)

				req := httptest.NewRequest(http.MethodGet, "/test", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				gt.V(t, w.Code).Equal(tc.expectedCode)
			})
		}
	})

	t.Run("response controller reaches underlying writer", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/flush", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("chunk"))
			gt.NoError(t, http.NewResponseController(w).Flush())
		})

		req := httptest.NewRequest(http.MethodGet, "/flush", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		gt.True(t, w.Flushed)
		gt.V(t, w.Body.String()).Equal("chunk")
	})
}
