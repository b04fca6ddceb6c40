package listview

import (
	"context"
	"log"
	"sync"
	"time"

	"elextrio-site/internal/domain/catalog"
	"elextrio-site/internal/domain/contact"
	"elextrio-site/internal/domain/content"
	"elextrio-site/internal/domain/job"
)

// Workspace is the list state of one admin session.
type Workspace struct {
	Jobs         *Table[job.Job]
	Applications *Table[job.Application]
	Messages     *Table[contact.Message]
	Projects     *Table[catalog.Project]
	Services     *Table[catalog.Service]
	Industries   *Table[catalog.Industry]
	Content      *Table[content.WebContent]
}

func NewWorkspace() *Workspace {
	return &Workspace{
		Jobs:         NewTable(JobSchema()),
		Applications: NewTable(ApplicationSchema()),
		Messages:     NewTable(MessageSchema()),
		Projects:     NewTable(ProjectSchema()),
		Services:     NewTable(ServiceSchema()),
		Industries:   NewTable(IndustrySchema()),
		Content:      NewTable(ContentSchema()),
	}
}

type workspaceEntry struct {
	ws       *Workspace
	lastSeen time.Time
}

// WorkspaceStore keeps workspaces keyed by session and evicts the ones idle
// for longer than the configured window.
type WorkspaceStore struct {
	mu    sync.Mutex
	items map[string]*workspaceEntry
	idle  time.Duration
	now   func() time.Time
	log   *log.Logger
}

func NewWorkspaceStore(idle time.Duration, logger *log.Logger) *WorkspaceStore {
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	return &WorkspaceStore{
		items: map[string]*workspaceEntry{},
		idle:  idle,
		now:   time.Now,
		log:   logger,
	}
}

// Get returns the session's workspace, creating it on first use.
func (s *WorkspaceStore) Get(key string) *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[key]
	if !ok {
		e = &workspaceEntry{ws: NewWorkspace()}
		s.items[key] = e
	}
	e.lastSeen = s.now()
	return e.ws
}

func (s *WorkspaceStore) Drop(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

func (s *WorkspaceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Each calls fn for every live workspace, outside the store lock.
func (s *WorkspaceStore) Each(fn func(*Workspace)) {
	s.mu.Lock()
	all := make([]*Workspace, 0, len(s.items))
	for _, e := range s.items {
		all = append(all, e.ws)
	}
	s.mu.Unlock()
	for _, ws := range all {
		fn(ws)
	}
}

func (s *WorkspaceStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.idle)
	n := 0
	for k, e := range s.items {
		if e.lastSeen.Before(cutoff) {
			delete(s.items, k)
			n++
		}
	}
	return n
}

// Run sweeps on a ticker until ctx is done.
func (s *WorkspaceStore) Run(ctx context.Context) {
	interval := s.idle / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 && s.log != nil {
				s.log.Printf("[Workspace] evicted idle=%d remaining=%d", n, s.Len())
			}
		}
	}
}
