package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"github.com/google/go-querystring/query"
)

// DefaultAPIBaseURL is the directory endpoint used when none is configured.
// It can be overridden at build time with -ldflags "-X ...".
var DefaultAPIBaseURL = "https://api.github.com/"

// Client defines the GitHub API methods used by this application.
type Client interface {
	SearchUsers(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.UsersSearchResult, *gh.Response, error)
	GetUser(ctx context.Context, login string) (*gh.User, *gh.Response, error)
	ListUserRepositories(ctx context.Context, login string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error)
}

// realClient wraps the go-github client to implement Client.
type realClient struct {
	inner *gh.Client
}

// NewClient creates an unauthenticated GitHub API client rooted at baseURL.
// An empty baseURL selects DefaultAPIBaseURL.
func NewClient(baseURL string, httpClient *http.Client) (Client, error) {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing API base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API base URL %q must be absolute", baseURL)
	}

	inner := gh.NewClient(httpClient)
	inner.BaseURL = u
	return &realClient{inner: inner}, nil
}

func (c *realClient) SearchUsers(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.UsersSearchResult, *gh.Response, error) {
	params, err := queryValues(opts)
	if err != nil {
		return nil, nil, err
	}
	params.Set("q", query)

	var payload struct {
		Total      *int           `json:"total_count,omitempty"`
		Incomplete *bool          `json:"incomplete_results,omitempty"`
		Users      []*userPayload `json:"items,omitempty"`
	}
	resp, err := c.get(ctx, "search/users?"+params.Encode(), &payload)
	if err != nil {
		return nil, resp, err
	}

	result := &gh.UsersSearchResult{Total: payload.Total, IncompleteResults: payload.Incomplete}
	for _, u := range payload.Users {
		result.Users = append(result.Users, u.user())
	}
	return result, resp, nil
}

func (c *realClient) GetUser(ctx context.Context, login string) (*gh.User, *gh.Response, error) {
	var payload userPayload
	resp, err := c.get(ctx, "users/"+url.PathEscape(login), &payload)
	if err != nil {
		return nil, resp, err
	}
	return payload.user(), resp, nil
}

func (c *realClient) ListUserRepositories(ctx context.Context, login string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error) {
	params, err := queryValues(opts)
	if err != nil {
		return nil, nil, err
	}
	u := "users/" + url.PathEscape(login) + "/repos"
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var payload []*repoPayload
	resp, err := c.get(ctx, u, &payload)
	if err != nil {
		return nil, resp, err
	}
	repos := make([]*gh.Repository, 0, len(payload))
	for _, r := range payload {
		repos = append(repos, r.repository())
	}
	return repos, resp, nil
}

func (c *realClient) get(ctx context.Context, u string, v any) (*gh.Response, error) {
	req, err := c.inner.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return c.inner.Do(ctx, req, v)
}

func queryValues(opts any) (url.Values, error) {
	if opts == nil {
		return url.Values{}, nil
	}
	params, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding query options: %w", err)
	}
	return params, nil
}
