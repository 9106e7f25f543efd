package node

import (
	"sync"

	"github.com/lioia/dense-pagerank/pkg/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/sync/semaphore"
)

const (
	// Completed runs kept in memory; the oldest is evicted first
	MaxStoredRuns = 32
	// Largest graph an HTTP request may ask for (a 128 MiB transition matrix)
	MaxRequestOrder = 4096
	// Runs computed at the same time; further requests wait for a slot
	MaxConcurrentRuns = 2
)

type Node struct {
	Id         string       // Node identifier, reported by /health
	Config     utils.Config // Defaults for every request
	Connection string       // HTTP API address
	Publisher  Publisher    // Optional: nil when no broker is configured
	MaxOrder   int          // Per-request order cap
	runs       runStore     // Completed runs by id
	slots      *semaphore.Weighted
}

type runStore struct {
	mu      sync.Mutex
	reports map[string]*Report
	order   []string // Insertion order, oldest first
}

func NewNode(config utils.Config, publisher Publisher) (*Node, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	return &Node{
		Id:        id,
		Config:    config,
		Publisher: publisher,
		MaxOrder:  MaxRequestOrder,
		runs:      runStore{reports: make(map[string]*Report)},
		slots:     semaphore.NewWeighted(MaxConcurrentRuns),
	}, nil
}

func (s *runStore) put(report *Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[report.Id]; !ok {
		s.order = append(s.order, report.Id)
	}
	s.reports[report.Id] = report
	for len(s.order) > MaxStoredRuns {
		delete(s.reports, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *runStore) get(id string) (*Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	report, ok := s.reports[id]
	return report, ok
}
