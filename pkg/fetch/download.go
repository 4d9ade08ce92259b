package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBranch is the only branch the archive endpoint is queried
	// for. Repositories with a different default branch surface as
	// RepoNotFoundError.
	DefaultBranch = "main"

	downloadTimeout = 30 * time.Second
)

// Version is the tool version reported in the download User-Agent.
// Overridden at build time via -ldflags.
var Version = "dev"

// archiveURL builds the canonical default-branch tarball URL for a
// repository.
func archiveURL(host, owner, repo string) string {
	return fmt.Sprintf("https://%s/%s/%s/archive/refs/heads/%s.tar.gz", host, owner, repo, DefaultBranch)
}

// download performs a single retrieval of the repository archive. Redirects
// are followed; there is no retry. A 404 maps to RepoNotFoundError, every
// other failure to TransferError.
func download(ctx context.Context, client *http.Client, host, owner, repo string) ([]byte, error) {
	if client == nil {
		client = &http.Client{Timeout: downloadTimeout}
	}

	url := archiveURL(host, owner, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "agentres/"+Version)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransferError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &RepoNotFoundError{Host: host, Owner: owner, Repo: repo}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransferError{URL: url, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransferError{URL: url, Err: err}
	}
	return data, nil
}
