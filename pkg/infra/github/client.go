package github

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/domain/interfaces"
	"github.com/secmon-lab/dockyard/pkg/domain/model"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/utils/logging"
	"github.com/secmon-lab/dockyard/pkg/utils/safe"
	"golang.org/x/oauth2"
)

const DefaultBaseURL = "https://api.github.com/"

type Client struct {
	client     *github.Client
	httpClient *http.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL    string
	token      types.GitHubToken
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey
	transport  http.RoundTripper
}

type Option func(*config)

// WithBaseURL sets the REST API endpoint, e.g. for GitHub Enterprise Server
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithToken authenticates API requests with a personal access token
func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

// WithGitHubApp authenticates API requests as an installation of GitHub App. It takes precedence over WithToken.
func WithGitHubApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, privateKey types.GitHubAppPrivateKey) Option {
	return func(cfg *config) {
		cfg.appID = appID
		cfg.installID = installID
		cfg.privateKey = privateKey
	}
}

// WithTransport replaces the base transport for both API and archive requests
func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{
		baseURL:   DefaultBaseURL,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}

	baseURL, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", cfg.baseURL))
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	apiTransport := cfg.transport
	switch {
	case cfg.appID != 0:
		if cfg.installID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is required for GitHub App")
		}
		if cfg.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "private key is required for GitHub App")
		}

		itr, err := ghinstallation.New(cfg.transport, int64(cfg.appID), int64(cfg.installID), []byte(cfg.privateKey))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport", goerr.V("appID", cfg.appID))
		}
		itr.BaseURL = strings.TrimSuffix(baseURL.String(), "/")
		apiTransport = itr

	case cfg.token != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(cfg.token)})
		apiTransport = &oauth2.Transport{Source: ts, Base: cfg.transport}
	}

	client := github.NewClient(&http.Client{Transport: apiTransport})
	client.BaseURL = baseURL

	return &Client{
		client: client,
		// Archive links are pre-signed, so the download itself goes without API credentials
		httpClient: &http.Client{Transport: cfg.transport},
	}, nil
}

// ListDirectory returns entries of a directory in the default branch of the repository. Empty path means the root directory.
func (x *Client) ListDirectory(ctx context.Context, input *interfaces.ListDirectoryInput) ([]*model.ContentEntry, error) {
	_, dir, resp, err := x.client.Repositories.GetContents(ctx, input.Owner, input.Repo, input.Path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, goerr.Wrap(types.ErrNotFound, "directory not found",
				goerr.V("owner", input.Owner),
				goerr.V("repo", input.Repo),
				goerr.V("path", input.Path),
			)
		}
		return nil, goerr.Wrap(err, "failed to list directory",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("path", input.Path),
		)
	}
	if dir == nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "path is not a directory",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("path", input.Path),
		)
	}

	entries := make([]*model.ContentEntry, 0, len(dir))
	for _, content := range dir {
		entries = append(entries, &model.ContentEntry{
			Name: content.GetName(),
			Path: content.GetPath(),
			Type: types.ContentType(content.GetType()),
		})
	}

	logging.From(ctx).Debug("Listed directory",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.String("path", input.Path),
		slog.Int("entries", len(entries)),
	)

	return entries, nil
}

// OpenArchive resolves the zipball link of the branch and opens the archive stream.
// The caller must close the returned body.
func (x *Client) OpenArchive(ctx context.Context, input *interfaces.OpenArchiveInput) (io.ReadCloser, error) {
	opt := &github.RepositoryContentGetOptions{
		Ref: string(input.Branch),
	}

	// https://docs.github.com/en/rest/repos/contents?apiVersion=2022-11-28#download-a-repository-archive-zip
	archiveURL, _, err := x.client.Repositories.GetArchiveLink(ctx, input.Owner, input.Repo, github.Zipball, opt, false)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get archive link",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("branch", input.Branch),
		)
	}

	logging.From(ctx).Debug("Got archive link", slog.Any("url", archiveURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL.String(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request for archive", goerr.V("url", archiveURL))
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download archive", goerr.V("url", archiveURL))
	}

	if resp.StatusCode != http.StatusOK {
		defer safe.Close(resp.Body)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "failed to download archive",
			goerr.V("url", archiveURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	return resp.Body, nil
}
