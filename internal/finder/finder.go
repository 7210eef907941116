// Package finder drives searches and profile lookups against the GitHub
// directory and publishes their progress as state snapshots.
package finder

import (
	"cmp"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/iter"
	ghub "github.com/stahnma/gh-devfinder/internal/github"
	"github.com/stahnma/gh-devfinder/internal/state"
	"golang.org/x/sync/errgroup"
)

// MaxEnriched is the number of search results enriched with full profiles.
const MaxEnriched = 12

// Finder runs the search and detail flows. It is the only writer of its
// Store.
type Finder struct {
	client ghub.Client
	store  *state.Store
	log    *logrus.Entry

	mu        sync.Mutex
	submitted string
}

// New creates a Finder publishing to store. A nil logger discards logs.
func New(client ghub.Client, store *state.Store, log *logrus.Entry) *Finder {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Finder{client: client, store: store, log: log}
}

// Store returns the store the finder publishes to.
func (f *Finder) Store() *state.Store {
	return f.store
}

// Search looks up profiles matching query and enriches the first
// MaxEnriched of them. Blank queries are ignored. The returned snapshot is
// the one current when the search finished; if a newer request superseded
// this one its results are discarded.
func (f *Finder) Search(ctx context.Context, query string) state.Snapshot {
	if strings.TrimSpace(query) == "" {
		return f.store.Snapshot()
	}

	f.mu.Lock()
	f.submitted = query
	f.mu.Unlock()

	log := f.log.WithField("query", query)
	epoch, _ := f.store.Begin(state.Snapshot.StartLoading)

	res, err := ghub.SearchProfiles(ctx, f.client, query)
	if err != nil {
		log.WithError(err).Warn("search failed")
		snap, _ := f.store.Commit(epoch, func(cur state.Snapshot) state.Snapshot {
			return cur.Failed(errorMessage(err, msgSearchFailed), true)
		})
		return snap
	}
	log.WithField("total", res.Total).Debug("search returned")

	users := f.enrich(ctx, res.Items)

	snap, ok := f.store.Commit(epoch, func(cur state.Snapshot) state.Snapshot {
		return cur.WithResults(query, users)
	})
	if !ok {
		log.Debug("search superseded, results discarded")
	}
	return snap
}

// Retry re-issues the most recently submitted query, whether or not it
// succeeded.
func (f *Finder) Retry(ctx context.Context) state.Snapshot {
	f.mu.Lock()
	query := f.submitted
	f.mu.Unlock()
	return f.Search(ctx, query)
}

// enrich replaces each of the first MaxEnriched summaries with the full
// profile. A failed lookup keeps the summary. Order follows summaries.
func (f *Finder) enrich(ctx context.Context, summaries []ghub.Profile) []ghub.Profile {
	if len(summaries) > MaxEnriched {
		summaries = summaries[:MaxEnriched]
	}
	mapper := iter.Mapper[ghub.Profile, ghub.Profile]{MaxGoroutines: MaxEnriched}
	return mapper.Map(summaries, func(summary *ghub.Profile) ghub.Profile {
		full, err := ghub.FetchProfile(ctx, f.client, summary.Login)
		if err != nil {
			f.log.WithError(err).WithField("login", summary.Login).Debug("enrichment failed, keeping summary")
			return *summary
		}
		return full
	})
}

// Open fetches login's profile and repositories together and selects the
// profile. If either lookup fails nothing is selected and the error is
// published instead. A profile error takes precedence over a repository
// error.
func (f *Finder) Open(ctx context.Context, login string) state.Snapshot {
	log := f.log.WithField("login", login)
	epoch, _ := f.store.Begin(state.Snapshot.StartLoading)

	var (
		profile         ghub.Profile
		repos           []ghub.Repository
		profErr, repoErr error
	)
	var g errgroup.Group
	g.Go(func() error {
		profile, profErr = ghub.FetchProfile(ctx, f.client, login)
		return profErr
	})
	g.Go(func() error {
		repos, repoErr = ghub.ListRepositories(ctx, f.client, login)
		return repoErr
	})

	if g.Wait() != nil {
		err := cmp.Or(profErr, repoErr)
		log.WithError(err).Warn("profile lookup failed")
		snap, _ := f.store.Commit(epoch, func(cur state.Snapshot) state.Snapshot {
			return cur.Failed(errorMessage(err, msgDetailFailed), false)
		})
		return snap
	}

	snap, ok := f.store.Commit(epoch, func(cur state.Snapshot) state.Snapshot {
		return cur.WithDetail(profile, repos)
	})
	if !ok {
		log.Debug("profile lookup superseded, discarded")
	}
	return snap
}

// Close leaves the detail view, restoring the previous search results.
func (f *Finder) Close() state.Snapshot {
	return f.store.Update(state.Snapshot.WithoutSelection)
}

// Dismiss clears the error message, keeping results and selection.
func (f *Finder) Dismiss() state.Snapshot {
	return f.store.Update(state.Snapshot.WithoutError)
}

// Reset returns the session to its initial state.
func (f *Finder) Reset() state.Snapshot {
	f.mu.Lock()
	f.submitted = ""
	f.mu.Unlock()
	return f.store.Reset()
}
