// Package github fetches a user's public repositories from the GitHub API.
// It is a read-only enrichment path keyed by public handle: it never touches
// the profile store, and every failure collapses to ErrEnrichmentUnavailable
// so callers cannot mistake a GitHub outage for a missing profile.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/theleywin/Backend-Dev-Connect/src/lib"
)

const defaultBaseURL = "https://api.github.com"

// pageSize is fixed: the profile page only ever shows the five oldest repos.
const pageSize = 5

type RepoSummary struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Client struct {
	http         *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	log          lib.Logger
}

func NewClient(clientID, clientSecret string, timeout time.Duration, log lib.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		http:         &http.Client{Timeout: timeout},
		baseURL:      defaultBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		log:          log,
	}
}

// WithBaseURL points the client at a different API host. Tests use this to
// target an httptest server.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

// FetchPublicRepos looks up the handle's public repositories, oldest first,
// limited to the fixed page size.
func (c *Client) FetchPublicRepos(ctx context.Context, handle string) ([]RepoSummary, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(handle))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", lib.ErrEnrichmentUnavailable, err)
	}

	q := req.URL.Query()
	q.Set("per_page", fmt.Sprintf("%d", pageSize))
	q.Set("sort", "created:asc")
	if c.clientID != "" {
		q.Set("client_id", c.clientID)
		q.Set("client_secret", c.clientSecret)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", "dev-connect-api")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("github lookup failed", zap.String("handle", handle), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", lib.ErrEnrichmentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("github lookup returned non-200",
			zap.String("handle", handle), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", lib.ErrEnrichmentUnavailable, resp.StatusCode)
	}

	var repos []RepoSummary
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		c.log.Warn("github response undecodable", zap.String("handle", handle), zap.Error(err))
		return nil, fmt.Errorf("%w: decode response: %v", lib.ErrEnrichmentUnavailable, err)
	}

	return repos, nil
}
