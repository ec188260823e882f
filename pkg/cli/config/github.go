package config

import (
	"log/slog"

	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub is the configuration of GitHub API access. Token and GitHub App are both optional; without
// credentials only public repositories can be scanned under the unauthenticated rate limit.
type GitHub struct {
	baseURL    string
	token      types.GitHubToken `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint",
			Category:    "GitHub",
			Value:       github.DefaultBaseURL,
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("DOCKYARD_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("DOCKYARD_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("DOCKYARD_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("DOCKYARD_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("DOCKYARD_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHub) New() (*github.Client, error) {
	options := []github.Option{
		github.WithBaseURL(x.baseURL),
	}

	switch {
	case x.appID != 0:
		options = append(options, github.WithGitHubApp(x.appID, x.installID, x.privateKey))
	case x.token != "":
		options = append(options, github.WithToken(x.token))
	}

	return github.New(options...)
}

func (x *GitHub) LogValue() slog.Value {
	auth := "none"
	switch {
	case x.appID != 0:
		auth = "app"
	case x.token != "":
		auth = "token"
	}

	return slog.GroupValue(
		slog.String("BaseURL", x.baseURL),
		slog.String("Auth", auth),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("token.len", len(x.token)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
