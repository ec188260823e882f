package cli_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dockyard/pkg/cli"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
)

func newContentsAPI(t *testing.T) *httptest.Server {
	listings := map[string]map[string]string{
		"hello-world": {
			"":    `[{"name":"src","path":"src","type":"dir"},{"name":"go.mod","path":"go.mod","type":"file"}]`,
			"src": `[{"name":"Dockerfile","path":"src/Dockerfile","type":"file"}]`,
		},
		"empty": {
			"": `[{"name":"README.md","path":"README.md","type":"file"}]`,
		},
	}

	r := chi.NewRouter()
	r.Get("/repos/octocat/{repo}/contents/*", func(w http.ResponseWriter, r *http.Request) {
		body, ok := listings[chi.URLParam(r, "repo")][chi.URLParam(r, "*")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func runScan(t *testing.T, apiURL, repo string) (*model.ScanResult, error) {
	t.Helper()
	t.Setenv("DOCKYARD_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")

	output := filepath.Join(t.TempDir(), "result.json")
	err := cli.New().Run([]string{
		"dockyard", "--log-output", "stderr",
		"scan",
		"--owner", "octocat",
		"--repo", repo,
		"--github-api-url", apiURL,
		"--output", output,
	})

	raw, readErr := os.ReadFile(output)
	gt.NoError(t, readErr)

	var result model.ScanResult
	gt.NoError(t, json.Unmarshal(raw, &result))
	return &result, err
}

func TestScanCommand(t *testing.T) {
	srv := newContentsAPI(t)

	t.Run("found", func(t *testing.T) {
		result, err := runScan(t, srv.URL, "hello-world")
		gt.NoError(t, err)
		gt.True(t, result.Found)
		gt.V(t, result.DockerfilePath).Equal("src/Dockerfile")
		gt.V(t, result.VisitedDirs).Equal(2)
	})

	t.Run("not found returns error", func(t *testing.T) {
		result, err := runScan(t, srv.URL, "empty")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNoDockerfile))
		gt.False(t, result.Found)
		gt.V(t, result.VisitedDirs).Equal(1)
	})
}

func TestScanCommandRequiresRepo(t *testing.T) {
	err := cli.New().Run([]string{"dockyard", "--log-output", "stderr", "scan", "--owner", "octocat"})
	gt.Error(t, err)
}
