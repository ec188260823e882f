package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dockyard/pkg/cli/config"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func newGitHubClient(t *testing.T, args ...string) error {
	t.Helper()
	for _, key := range []string{
		"DOCKYARD_GITHUB_TOKEN", "GITHUB_TOKEN",
		"DOCKYARD_GITHUB_APP_ID", "DOCKYARD_GITHUB_APP_INSTALL_ID", "DOCKYARD_GITHUB_APP_PRIVATE_KEY",
	} {
		t.Setenv(key, "")
		gt.NoError(t, os.Unsetenv(key))
	}

	var ghConfig config.GitHub
	cmd := &cli.Command{
		Name:  "test",
		Flags: ghConfig.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := ghConfig.New()
			if err != nil {
				return err
			}
			gt.True(t, client != nil)
			return nil
		},
	}
	return cmd.Run(context.Background(), append([]string{"test"}, args...))
}

func TestGitHubConfig(t *testing.T) {
	t.Run("no credentials", func(t *testing.T) {
		gt.NoError(t, newGitHubClient(t))
	})

	t.Run("token", func(t *testing.T) {
		gt.NoError(t, newGitHubClient(t, "--github-token", "ghp_test"))
	})

	t.Run("custom API URL", func(t *testing.T) {
		gt.NoError(t, newGitHubClient(t, "--github-api-url", "https://github.example.com/api/v3"))
	})

	t.Run("GitHub App without installation ID", func(t *testing.T) {
		err := newGitHubClient(t, "--github-app-id", "1234", "--github-app-private-key", "dummy")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
