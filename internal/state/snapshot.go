// Package state holds the view state shared between the search and detail
// orchestrators and whatever presentation layer observes them.
package state

import "github.com/stahnma/gh-devfinder/internal/github"

// Phase names the screen a snapshot represents.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSearching
	PhaseResults
	PhaseErrored
	PhaseDetail
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSearching:
		return "searching"
	case PhaseResults:
		return "results"
	case PhaseErrored:
		return "errored"
	case PhaseDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session. New snapshots are derived
// from old ones through the transition methods below; slices held by a
// published snapshot are never modified afterwards.
type Snapshot struct {
	Query        string              `json:"query"`
	Users        []github.Profile    `json:"users"`
	Selected     *github.Profile     `json:"selected_user"`
	Repositories []github.Repository `json:"repositories"`
	Loading      bool                `json:"loading"`
	Error        string              `json:"error,omitempty"`
	HasSearched  bool                `json:"has_searched"`
}

// Initial returns the empty session snapshot.
func Initial() Snapshot {
	return Snapshot{
		Users:        []github.Profile{},
		Repositories: []github.Repository{},
	}
}

// Phase derives the screen from the snapshot fields.
func (s Snapshot) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseSearching
	case s.Error != "":
		return PhaseErrored
	case s.Selected != nil:
		return PhaseDetail
	case s.HasSearched:
		return PhaseResults
	default:
		return PhaseIdle
	}
}

// StartLoading marks a request in flight and clears any previous error.
func (s Snapshot) StartLoading() Snapshot {
	s.Loading = true
	s.Error = ""
	return s
}

// Failed ends a request with msg. searched records whether the failed
// request was a search; results and selection are kept as they were.
func (s Snapshot) Failed(msg string, searched bool) Snapshot {
	s.Loading = false
	s.Error = msg
	if searched {
		s.HasSearched = true
	}
	return s
}

// WithResults ends a search with users in relevance order.
func (s Snapshot) WithResults(query string, users []github.Profile) Snapshot {
	if users == nil {
		users = []github.Profile{}
	}
	s.Query = query
	s.Users = users
	s.Loading = false
	s.Error = ""
	s.HasSearched = true
	return s
}

// WithDetail ends a detail fetch, selecting profile. Search results are kept
// so that closing the detail view restores them.
func (s Snapshot) WithDetail(profile github.Profile, repos []github.Repository) Snapshot {
	if repos == nil {
		repos = []github.Repository{}
	}
	s.Selected = &profile
	s.Repositories = repos
	s.Loading = false
	s.Error = ""
	return s
}

// WithoutError dismisses the current error message.
func (s Snapshot) WithoutError() Snapshot {
	s.Error = ""
	return s
}

// WithoutSelection leaves the detail view.
func (s Snapshot) WithoutSelection() Snapshot {
	s.Selected = nil
	s.Repositories = []github.Repository{}
	return s
}
