package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/utils/errutil"
	"github.com/secmon-lab/dockyard/pkg/utils/logging"
	"github.com/secmon-lab/dockyard/pkg/utils/safe"
)

const maxRequestBodySize = 1 << 20

// handleClientError writes 4xx response. Client errors are not reported to Sentry.
func handleClientError(ctx context.Context, w http.ResponseWriter, code int, msg string, err error) {
	logging.From(ctx).Warn("request rejected",
		slog.Int("status_code", code),
		slog.String("message", msg),
		slog.Any("error", err),
	)
	writeMessage(w, code, msg)
}

func handleServerError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	errutil.HandleError(ctx, msg, err)
	writeMessage(w, http.StatusInternalServerError, msg)
}

func registerRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.RegisterRepositoryInput
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&input); err != nil {
			handleClientError(r.Context(), w, http.StatusBadRequest, "Invalid request body.",
				goerr.Wrap(err, "failed to decode request body"))
			return
		}

		// Scan keeps running even if the client disconnects
		ctx := DetachContext(r.Context())

		repo, err := uc.RegisterRepository(ctx, &input)
		if err != nil {
			switch {
			case errors.Is(err, types.ErrNoDockerfile):
				handleClientError(ctx, w, http.StatusBadRequest, "No Dockerfile found in the repository.", err)
			case errors.Is(err, types.ErrValidationFailed):
				handleClientError(ctx, w, http.StatusBadRequest, "Invalid user name or repository name.", err)
			default:
				handleServerError(ctx, w, "Something went wrong while adding the user.", err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, repo)
	}
}

func listRepositoriesByOwner(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := chi.URLParam(r, "username")

		repos, err := uc.ListRepositoriesByOwner(r.Context(), owner)
		if err != nil {
			switch {
			case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrValidationFailed):
				handleClientError(r.Context(), w, http.StatusNotFound, "User not found.", err)
			default:
				handleServerError(r.Context(), w,
					fmt.Sprintf("Something went wrong while fetching repositories for user %s from MongoDB.", owner), err)
			}
			return
		}

		writeJSON(w, http.StatusOK, model.Summarize(repos))
	}
}

func listRepositories(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repos, err := uc.ListRepositories(r.Context())
		if err != nil {
			handleServerError(r.Context(), w, "Something went wrong while fetching user repositories from MongoDB.", err)
			return
		}

		writeJSON(w, http.StatusOK, model.Summarize(repos))
	}
}

func downloadRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner := chi.URLParam(r, "username")
		repoName := chi.URLParam(r, "repoName")

		archive, err := uc.OpenRepositoryArchive(ctx, &model.DownloadArchiveInput{
			GitHubRepo: model.GitHubRepo{Owner: owner, RepoName: repoName},
		})
		if err != nil {
			switch {
			case errors.Is(err, types.ErrArchiveNotFound), errors.Is(err, types.ErrValidationFailed):
				handleClientError(ctx, w, http.StatusNotFound, "Repository not found or download failed for all branches.", err)
			default:
				handleServerError(ctx, w,
					fmt.Sprintf("Something went wrong while handling download request for repository %s for user %s.", repoName, owner), err)
			}
			return
		}
		defer safe.Close(archive.Body)

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, archive.FileName()))
		w.WriteHeader(http.StatusOK)

		// Status is already sent, a copy failure can only be logged
		n, err := io.Copy(w, archive.Body)
		if err != nil {
			logging.From(ctx).Warn("failed to stream archive",
				slog.String("owner", owner),
				slog.String("repo", repoName),
				slog.String("branch", string(archive.Branch)),
				slog.Int64("written", n),
				slog.Any("error", err),
			)
		}
	}
}
