package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/climate-solutions/solutions-backend/internal/catalog"
	"github.com/lib/pq"
)

// Store is the relational catalog provider. It shares a single pooled
// connection across all requests and re-queries the database on every
// read; nothing is cached between requests.
type Store struct {
	db    *sql.DB
	ready atomic.Bool
}

var _ catalog.Provider = (*Store)(nil)

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Initialize verifies the connection. The schema relationship (FK from
// projects.sector_id to sectors.id) is enforced by the database, not
// re-checked here.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &catalog.InitializationError{Err: fmt.Errorf("db ping: %w", err)}
	}
	s.ready.Store(true)
	return nil
}

const enrichedColumns = `
p.id, p.title,
coalesce(p.feature_img_url, ''),
coalesce(p.summary_short, ''),
coalesce(p.intro_short, ''),
coalesce(p.impact, ''),
coalesce(p.original_source_url, ''),
p.sector_id, s.sector_name`

func (s *Store) AllProjects(ctx context.Context) ([]catalog.EnrichedProject, error) {
	if !s.ready.Load() {
		return nil, catalog.ErrNotInitialized
	}

	q := `select ` + enrichedColumns + `
from projects p
join sectors s on s.id = p.sector_id
order by p.id;`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (s *Store) ProjectByID(ctx context.Context, id string) (*catalog.EnrichedProject, error) {
	if !s.ready.Load() {
		return nil, catalog.ErrNotInitialized
	}

	numericID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return nil, catalog.ErrNotFound
	}

	q := `select ` + enrichedColumns + `
from projects p
join sectors s on s.id = p.sector_id
where p.id = $1;`

	var p catalog.EnrichedProject
	err = s.db.QueryRowContext(ctx, q, numericID).Scan(
		&p.ID, &p.Title, &p.FeatureImgURL, &p.SummaryShort, &p.IntroShort,
		&p.Impact, &p.OriginalSourceURL, &p.SectorID, &p.Sector,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query project %d: %w", numericID, err)
	}
	return &p, nil
}

func (s *Store) ProjectsBySector(ctx context.Context, sector string) ([]catalog.EnrichedProject, error) {
	if !s.ready.Load() {
		return nil, catalog.ErrNotInitialized
	}

	term := strings.TrimSpace(sector)
	if term == "" {
		return nil, catalog.ErrInvalidSector
	}

	q := `select ` + enrichedColumns + `
from projects p
join sectors s on s.id = p.sector_id
where s.sector_name ilike '%' || $1 || '%' escape '\'
order by p.id;`

	rows, err := s.db.QueryContext(ctx, q, likeEscaper.Replace(term))
	if err != nil {
		return nil, fmt.Errorf("query projects by sector: %w", err)
	}
	defer rows.Close()

	matched, err := scanProjects(rows)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, catalog.ErrNotFound
	}
	return matched, nil
}

func (s *Store) AllSectors(ctx context.Context) ([]catalog.Sector, error) {
	if !s.ready.Load() {
		return nil, catalog.ErrNotInitialized
	}

	rows, err := s.db.QueryContext(ctx, `select id, sector_name from sectors order by id;`)
	if err != nil {
		return nil, fmt.Errorf("query sectors: %w", err)
	}
	defer rows.Close()

	out := make([]catalog.Sector, 0, 8)
	for rows.Next() {
		var sec catalog.Sector
		if err := rows.Scan(&sec.ID, &sec.SectorName); err != nil {
			return nil, err
		}
		out = append(out, sec)
	}
	return out, rows.Err()
}

func (s *Store) AddProject(ctx context.Context, fields catalog.ProjectFields) error {
	if !s.ready.Load() {
		return catalog.ErrNotInitialized
	}

	// Every text field normalizes through nullable, title included: a
	// blank title becomes NULL and the NOT NULL constraint rejects it.
	const q = `
insert into projects (title, feature_img_url, summary_short, intro_short, impact, original_source_url, sector_id)
values ($1, $2, $3, $4, $5, $6, $7);`

	_, err := s.db.ExecContext(ctx, q,
		nullable(fields.Title),
		nullable(fields.FeatureImgURL),
		nullable(fields.SummaryShort),
		nullable(fields.IntroShort),
		nullable(fields.Impact),
		nullable(fields.OriginalSourceURL),
		fields.SectorID,
	)
	if err != nil {
		return &catalog.ValidationError{Err: storeError(err)}
	}
	return nil
}

func (s *Store) EditProject(ctx context.Context, id int, fields catalog.ProjectFields) error {
	if !s.ready.Load() {
		return catalog.ErrNotInitialized
	}

	const q = `
update projects
set title = $2, feature_img_url = $3, summary_short = $4, intro_short = $5,
    impact = $6, original_source_url = $7, sector_id = $8
where id = $1;`

	res, err := s.db.ExecContext(ctx, q,
		id,
		nullable(fields.Title),
		nullable(fields.FeatureImgURL),
		nullable(fields.SummaryShort),
		nullable(fields.IntroShort),
		nullable(fields.Impact),
		nullable(fields.OriginalSourceURL),
		fields.SectorID,
	)
	if err != nil {
		return &catalog.ValidationError{Err: storeError(err)}
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("edit project %d: %w", id, err)
	}
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteProject(ctx context.Context, id int) error {
	if !s.ready.Load() {
		return catalog.ErrNotInitialized
	}

	res, err := s.db.ExecContext(ctx, `delete from projects where id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func scanProjects(rows *sql.Rows) ([]catalog.EnrichedProject, error) {
	out := make([]catalog.EnrichedProject, 0, 16)
	for rows.Next() {
		var p catalog.EnrichedProject
		if err := rows.Scan(
			&p.ID, &p.Title, &p.FeatureImgURL, &p.SummaryShort, &p.IntroShort,
			&p.Impact, &p.OriginalSourceURL, &p.SectorID, &p.Sector,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// likeEscaper keeps the sector filter a literal substring match: user
// input must not smuggle LIKE wildcards into the pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// nullable maps an empty or whitespace-only form value to NULL.
func nullable(v string) sql.NullString {
	v = strings.TrimSpace(v)
	return sql.NullString{String: v, Valid: v != ""}
}

// storeError keeps constraint violations readable for the error view.
func storeError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503":
			return fmt.Errorf("unknown sector: %s", pqErr.Detail)
		case "23502":
			return fmt.Errorf("missing required field %s", pqErr.Column)
		}
	}
	return err
}
