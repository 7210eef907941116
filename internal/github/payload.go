package github

import (
	gh "github.com/google/go-github/v68/github"
)

// looseTimestamp decodes a timestamp field without ever failing. Values
// that are not valid timestamps decode as absent.
type looseTimestamp struct {
	ts *gh.Timestamp
}

func (l *looseTimestamp) UnmarshalJSON(data []byte) error {
	var ts gh.Timestamp
	if err := ts.UnmarshalJSON(data); err != nil || ts.IsZero() {
		l.ts = nil
		return nil
	}
	l.ts = &ts
	return nil
}

// userPayload shadows the timestamp fields of gh.User.
type userPayload struct {
	*gh.User
	CreatedAt   looseTimestamp `json:"created_at"`
	UpdatedAt   looseTimestamp `json:"updated_at"`
	SuspendedAt looseTimestamp `json:"suspended_at"`
}

func (p *userPayload) user() *gh.User {
	if p == nil {
		return nil
	}
	u := p.User
	if u == nil {
		u = &gh.User{}
	}
	u.CreatedAt = p.CreatedAt.ts
	u.UpdatedAt = p.UpdatedAt.ts
	u.SuspendedAt = p.SuspendedAt.ts
	return u
}

// repoPayload shadows the timestamp fields of gh.Repository.
type repoPayload struct {
	*gh.Repository
	CreatedAt looseTimestamp `json:"created_at"`
	UpdatedAt looseTimestamp `json:"updated_at"`
	PushedAt  looseTimestamp `json:"pushed_at"`
}

func (p *repoPayload) repository() *gh.Repository {
	if p == nil {
		return nil
	}
	r := p.Repository
	if r == nil {
		r = &gh.Repository{}
	}
	r.CreatedAt = p.CreatedAt.ts
	r.UpdatedAt = p.UpdatedAt.ts
	r.PushedAt = p.PushedAt.ts
	return r
}
