package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theleywin/Backend-Dev-Connect/src/github"
	"github.com/theleywin/Backend-Dev-Connect/src/lib"
)

func TestFetchPublicRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "created:asc", r.URL.Query().Get("sort"))
		assert.Equal(t, "id", r.URL.Query().Get("client_id"))
		assert.Equal(t, "secret", r.URL.Query().Get("client_secret"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"hello-world","full_name":"octocat/hello-world","html_url":"https://github.com/octocat/hello-world","description":"First repo","stargazers_count":42,"forks_count":7,"created_at":"2011-01-26T19:01:12Z"},
			{"name":"spoon-knife","full_name":"octocat/spoon-knife","html_url":"https://github.com/octocat/spoon-knife","description":"","stargazers_count":1,"forks_count":0,"created_at":"2011-01-27T19:01:12Z"}
		]`))
	}))
	defer srv.Close()

	client := github.NewClient("id", "secret", time.Second, lib.NewNopLogger()).WithBaseURL(srv.URL)

	repos, err := client.FetchPublicRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "hello-world", repos[0].Name)
	assert.Equal(t, "octocat/hello-world", repos[0].FullName)
	assert.Equal(t, 42, repos[0].Stars)
	assert.Equal(t, 2011, repos[0].CreatedAt.Year())
}

func TestFetchPublicReposUnknownHandle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := github.NewClient("", "", time.Second, lib.NewNopLogger()).WithBaseURL(srv.URL)

	_, err := client.FetchPublicRepos(context.Background(), "nobody-here")
	assert.ErrorIs(t, err, lib.ErrEnrichmentUnavailable)
	assert.NotErrorIs(t, err, lib.ErrNotFound, "enrichment failures never look like a missing profile")
}

func TestFetchPublicReposNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := github.NewClient("", "", time.Second, lib.NewNopLogger()).WithBaseURL(srv.URL)

	_, err := client.FetchPublicRepos(context.Background(), "octocat")
	assert.ErrorIs(t, err, lib.ErrEnrichmentUnavailable)
}

func TestFetchPublicReposMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	client := github.NewClient("", "", time.Second, lib.NewNopLogger()).WithBaseURL(srv.URL)

	_, err := client.FetchPublicRepos(context.Background(), "octocat")
	assert.ErrorIs(t, err, lib.ErrEnrichmentUnavailable)
}
