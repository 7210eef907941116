package github

import (
	"time"

	gh "github.com/google/go-github/v68/github"
)

// Profile is a directory account. Optional text fields are empty when the
// directory omits them; timestamps are kept as ISO-8601 strings and are
// empty when absent.
type Profile struct {
	ID              int64  `json:"id"`
	Login           string `json:"login"`
	Name            string `json:"name,omitempty"`
	Bio             string `json:"bio,omitempty"`
	Location        string `json:"location,omitempty"`
	Company         string `json:"company,omitempty"`
	Blog            string `json:"blog,omitempty"`
	Email           string `json:"email,omitempty"`
	TwitterUsername string `json:"twitter_username,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"`
	HTMLURL         string `json:"html_url,omitempty"`
	Type            string `json:"type,omitempty"`
	Followers       int    `json:"followers"`
	Following       int    `json:"following"`
	PublicRepos     int    `json:"public_repos"`
	PublicGists     int    `json:"public_gists"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

// DisplayName returns the profile's name, falling back to its login.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

// Repository is a repository owned by a single profile.
type Repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	HTMLURL     string `json:"html_url,omitempty"`
}

// SearchResult is one page of user search results in relevance order.
type SearchResult struct {
	Total      int       `json:"total_count"`
	Incomplete bool      `json:"incomplete_results"`
	Items      []Profile `json:"items"`
}

func convertUser(u *gh.User) Profile {
	return Profile{
		ID:              u.GetID(),
		Login:           u.GetLogin(),
		Name:            u.GetName(),
		Bio:             u.GetBio(),
		Location:        u.GetLocation(),
		Company:         u.GetCompany(),
		Blog:            u.GetBlog(),
		Email:           u.GetEmail(),
		TwitterUsername: u.GetTwitterUsername(),
		AvatarURL:       u.GetAvatarURL(),
		HTMLURL:         u.GetHTMLURL(),
		Type:            u.GetType(),
		Followers:       u.GetFollowers(),
		Following:       u.GetFollowing(),
		PublicRepos:     u.GetPublicRepos(),
		PublicGists:     u.GetPublicGists(),
		CreatedAt:       timestampString(u.CreatedAt),
		UpdatedAt:       timestampString(u.UpdatedAt),
	}
}

func convertRepo(r *gh.Repository) Repository {
	return Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Owner:       r.GetOwner().GetLogin(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		UpdatedAt:   timestampString(r.UpdatedAt),
		HTMLURL:     r.GetHTMLURL(),
	}
}

func timestampString(ts *gh.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
