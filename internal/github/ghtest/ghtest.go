// Package ghtest provides a fake GitHub client for tests.
package ghtest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"

	gh "github.com/google/go-github/v68/github"
)

// Client implements github.Client with overridable functions. Calls to an
// unset function fail with a 501 error response. Call counts are safe for
// concurrent use.
type Client struct {
	SearchUsersFn          func(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.UsersSearchResult, *gh.Response, error)
	GetUserFn              func(ctx context.Context, login string) (*gh.User, *gh.Response, error)
	ListUserRepositoriesFn func(ctx context.Context, login string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error)

	mu    sync.Mutex
	calls map[string]int
}

func (c *Client) record(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[key]++
}

// Calls returns how many times the named method was invoked.
func (c *Client) Calls(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[method]
}

// TotalCalls returns the number of calls across all methods.
func (c *Client) TotalCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.calls {
		total += n
	}
	return total
}

func (c *Client) SearchUsers(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.UsersSearchResult, *gh.Response, error) {
	c.record("SearchUsers")
	if c.SearchUsersFn == nil {
		return nil, nil, StatusError(http.StatusNotImplemented)
	}
	return c.SearchUsersFn(ctx, query, opts)
}

func (c *Client) GetUser(ctx context.Context, login string) (*gh.User, *gh.Response, error) {
	c.record("GetUser")
	if c.GetUserFn == nil {
		return nil, nil, StatusError(http.StatusNotImplemented)
	}
	return c.GetUserFn(ctx, login)
}

func (c *Client) ListUserRepositories(ctx context.Context, login string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error) {
	c.record("ListUserRepositories")
	if c.ListUserRepositoriesFn == nil {
		return nil, nil, StatusError(http.StatusNotImplemented)
	}
	return c.ListUserRepositoriesFn(ctx, login, opts)
}

// OK returns a *gh.Response for a successful single-page call.
func OK() *gh.Response {
	return &gh.Response{Response: &http.Response{StatusCode: http.StatusOK}}
}

// StatusError builds the error go-github returns for a non-success status.
func StatusError(status int) *gh.ErrorResponse {
	req := httptest.NewRequest(http.MethodGet, "https://api.github.com/test", nil)
	return &gh.ErrorResponse{
		Response: &http.Response{StatusCode: status, Request: req},
		Message:  http.StatusText(status),
	}
}

// User builds a summary user record as returned by the search endpoint.
func User(login string) *gh.User {
	return &gh.User{
		Login:     gh.Ptr(login),
		ID:        gh.Ptr(int64(len(login))),
		AvatarURL: gh.Ptr("https://avatars.example.com/" + login),
		HTMLURL:   gh.Ptr("https://github.com/" + login),
		Type:      gh.Ptr("User"),
	}
}

// Repo builds a repository record owned by login.
func Repo(login, name string, stars int) *gh.Repository {
	return &gh.Repository{
		ID:              gh.Ptr(int64(len(login) + len(name))),
		Name:            gh.Ptr(name),
		FullName:        gh.Ptr(login + "/" + name),
		Owner:           &gh.User{Login: gh.Ptr(login)},
		StargazersCount: gh.Ptr(stars),
		HTMLURL:         gh.Ptr("https://github.com/" + login + "/" + name),
	}
}

// SearchResult wraps users in a search response.
func SearchResult(users ...*gh.User) *gh.UsersSearchResult {
	return &gh.UsersSearchResult{
		Total:             gh.Ptr(len(users)),
		IncompleteResults: gh.Ptr(false),
		Users:             users,
	}
}
