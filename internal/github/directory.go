package github

import (
	"context"

	gh "github.com/google/go-github/v68/github"
)

// Page sizes for the directory lookups.
const (
	SearchPageSize     = 30
	RepositoryPageSize = 6
)

// SearchProfiles looks up profiles matching a free-text query. Items are
// returned in the directory's relevance order and carry only the summary
// fields the search endpoint provides.
func SearchProfiles(ctx context.Context, client Client, query string) (SearchResult, error) {
	opts := &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: SearchPageSize}}
	results, _, err := client.SearchUsers(ctx, query, opts)
	if err != nil {
		return SearchResult{}, classify(err, false)
	}
	if results == nil {
		return SearchResult{}, nil
	}

	items := make([]Profile, 0, len(results.Users))
	for _, u := range results.Users {
		if u == nil {
			continue
		}
		items = append(items, convertUser(u))
	}
	return SearchResult{
		Total:      results.GetTotal(),
		Incomplete: results.GetIncompleteResults(),
		Items:      items,
	}, nil
}

// FetchProfile retrieves the full profile for login.
func FetchProfile(ctx context.Context, client Client, login string) (Profile, error) {
	if login == "" {
		return Profile{}, ErrNotFound
	}
	user, _, err := client.GetUser(ctx, login)
	if err != nil {
		return Profile{}, classify(err, true)
	}
	if user == nil {
		return Profile{}, ErrDecode
	}
	return convertUser(user), nil
}

// ListRepositories returns the most recently updated repositories owned by login.
func ListRepositories(ctx context.Context, client Client, login string) ([]Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: RepositoryPageSize},
	}
	repos, _, err := client.ListUserRepositories(ctx, login, opts)
	if err != nil {
		return nil, classify(err, false)
	}

	out := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if r == nil {
			continue
		}
		out = append(out, convertRepo(r))
	}
	return out, nil
}
