package static

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/climate-solutions/solutions-backend/internal/catalog"
)

// Store is the in-memory, read-only catalog provider. It joins the seed
// projects against the seed sectors once at Initialize and serves every
// query from the enriched slice. The store owns its data; nothing is
// package-global.
type Store struct {
	mu       sync.RWMutex
	source   []catalog.Project
	sectors  []catalog.Sector
	projects []catalog.EnrichedProject
	ready    bool
}

var _ catalog.Provider = (*Store)(nil)

// NewStore returns a store over the compiled-in seed data.
func NewStore() *Store {
	return NewStoreWithData(SeedProjects, SeedSectors)
}

// NewStoreWithData returns a store over caller-supplied collections.
func NewStoreWithData(projects []catalog.Project, sectors []catalog.Sector) *Store {
	return &Store{source: projects, sectors: sectors}
}

// Initialize resolves every project's sector name. A project whose
// sector_id has no matching sector is a data bug and aborts startup.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[int]string, len(s.sectors))
	for _, sec := range s.sectors {
		byID[sec.ID] = sec.SectorName
	}

	enriched := make([]catalog.EnrichedProject, 0, len(s.source))
	for _, p := range s.source {
		name, ok := byID[p.SectorID]
		if !ok {
			return &catalog.InitializationError{
				Err: fmt.Errorf("missing sector for project id %d", p.ID),
			}
		}
		enriched = append(enriched, catalog.EnrichedProject{Project: p, Sector: name})
	}

	s.projects = enriched
	s.ready = true
	return nil
}

func (s *Store) AllProjects(ctx context.Context) ([]catalog.EnrichedProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil, catalog.ErrNotInitialized
	}

	out := make([]catalog.EnrichedProject, len(s.projects))
	copy(out, s.projects)
	return out, nil
}

func (s *Store) ProjectByID(ctx context.Context, id string) (*catalog.EnrichedProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil, catalog.ErrNotInitialized
	}

	numericID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return nil, catalog.ErrNotFound
	}

	for i := range s.projects {
		if s.projects[i].ID == numericID {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *Store) ProjectsBySector(ctx context.Context, sector string) ([]catalog.EnrichedProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil, catalog.ErrNotInitialized
	}

	term := strings.ToLower(strings.TrimSpace(sector))
	if term == "" {
		return nil, catalog.ErrInvalidSector
	}

	var matched []catalog.EnrichedProject
	for _, p := range s.projects {
		if strings.Contains(strings.ToLower(p.Sector), term) {
			matched = append(matched, p)
		}
	}

	if len(matched) == 0 {
		return nil, catalog.ErrNotFound
	}
	return matched, nil
}

func (s *Store) AllSectors(ctx context.Context) ([]catalog.Sector, error) {
	return nil, catalog.ErrReadOnlyCatalog
}

func (s *Store) AddProject(ctx context.Context, fields catalog.ProjectFields) error {
	return catalog.ErrReadOnlyCatalog
}

func (s *Store) EditProject(ctx context.Context, id int, fields catalog.ProjectFields) error {
	return catalog.ErrReadOnlyCatalog
}

func (s *Store) DeleteProject(ctx context.Context, id int) error {
	return catalog.ErrReadOnlyCatalog
}
