package gather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/go-github/v48/github"
	"github.com/repodocs/repodoc/logger"
	"golang.org/x/oauth2"
)

// GitHubFetcher downloads repository zipballs from the GitHub API
type GitHubFetcher struct {
	client *github.Client
}

// NewGitHubFetcher creates a fetcher. An empty token gives an unauthenticated
// client, which works for public repositories within GitHub's rate limits.
func NewGitHubFetcher(apiToken string) *GitHubFetcher {
	var httpClient *http.Client
	if apiToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiToken})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return &GitHubFetcher{
		client: github.NewClient(httpClient),
	}
}

// Zipball downloads the zip archive of owner/repo at ref (empty means the
// default branch) into destDir and returns the archive path.
func (f *GitHubFetcher) Zipball(ctx context.Context, owner, repo, ref, destDir string) (string, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	url, _, err := f.client.Repositories.GetArchiveLink(ctx, owner, repo, github.Zipball, opts, true)
	if err != nil {
		return "", fmt.Errorf("%w: failed to resolve archive link for %s/%s: %v", ErrUnavailable, owner, repo, err)
	}

	logger.Debugf("Downloading zipball for %s/%s from %s", owner, repo, url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := f.client.Client().Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to download archive for %s/%s: %v", ErrUnavailable, owner, repo, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: archive download returned status %d", ErrUnavailable, resp.StatusCode)
	}

	archive := filepath.Join(destDir, fmt.Sprintf("%s-%s.zip", owner, repo))
	out, err := os.Create(archive)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return archive, nil
}
