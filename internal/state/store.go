package state

import "sync"

// Store owns the current Snapshot. Every change replaces the snapshot
// wholesale and is fanned out to subscribers in publication order.
//
// Requests started with Begin carry an epoch. Completions are committed
// only while their epoch is still the latest, so a slow response can never
// overwrite the result of a request issued after it.
type Store struct {
	mu      sync.RWMutex
	current Snapshot
	epoch   uint64
	subs    map[int]chan Snapshot
	nextID  int
}

// NewStore creates a store holding the initial snapshot.
func NewStore() *Store {
	return &Store{
		current: Initial(),
		subs:    make(map[int]chan Snapshot),
	}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Epoch returns the epoch of the most recently started request.
func (s *Store) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// Begin starts a new request: it supersedes any request in flight and
// publishes fn applied to the current snapshot.
func (s *Store) Begin(fn func(Snapshot) Snapshot) (uint64, Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.publishLocked(fn(s.current))
	return s.epoch, s.current
}

// Commit publishes fn applied to the current snapshot if epoch is still the
// latest request. It reports whether the snapshot was published; when it
// was not, the returned snapshot is the current one.
func (s *Store) Commit(epoch uint64, fn func(Snapshot) Snapshot) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return s.current, false
	}
	s.publishLocked(fn(s.current))
	return s.current, true
}

// Update publishes fn applied to the current snapshot without affecting
// requests in flight.
func (s *Store) Update(fn func(Snapshot) Snapshot) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishLocked(fn(s.current))
	return s.current
}

// Reset publishes the initial snapshot and discards requests in flight.
func (s *Store) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.publishLocked(Initial())
	return s.current
}

// Subscribe returns a channel receiving every snapshot published after the
// call, and a function that unsubscribes and closes the channel. When the
// subscriber falls behind by more than buffer snapshots the oldest pending
// one is dropped; the latest is always delivered.
func (s *Store) Subscribe(buffer int) (<-chan Snapshot, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Snapshot, buffer)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) publishLocked(snap Snapshot) {
	s.current = snap
	for _, ch := range s.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		// Full: drop the oldest pending snapshot to make room.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
