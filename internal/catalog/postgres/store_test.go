package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/climate-solutions/solutions-backend/internal/catalog"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()
	store := NewStore(db)
	require.NoError(t, store.Initialize(context.Background()))

	return store, mock, db
}

func enrichedRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "feature_img_url", "summary_short", "intro_short",
		"impact", "original_source_url", "sector_id", "sector_name",
	})
}

func TestStore_NotInitialized(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)
	ctx := context.Background()

	_, err = store.AllProjects(ctx)
	assert.ErrorIs(t, err, catalog.ErrNotInitialized)

	_, err = store.ProjectByID(ctx, "1")
	assert.ErrorIs(t, err, catalog.ErrNotInitialized)

	err = store.AddProject(ctx, catalog.ProjectFields{Title: "X", SectorID: 1})
	assert.ErrorIs(t, err, catalog.ErrNotInitialized)
}

func TestStore_AllProjects(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	mock.ExpectQuery(`from projects p`).
		WillReturnRows(enrichedRows().
			AddRow(1, "Clinic Solar", "", "", "", "", "", 10, "Health").
			AddRow(2, "Grid Batteries", "img.png", "short", "", "", "", 20, "Energy"))

	projects, err := store.AllProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Health", projects[0].Sector)
	assert.Equal(t, "img.png", projects[1].FeatureImgURL)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ProjectByID(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	t.Run("returns one project for a known id", func(t *testing.T) {
		mock.ExpectQuery(`where p\.id = \$1`).
			WithArgs(1).
			WillReturnRows(enrichedRows().
				AddRow(1, "Clinic Solar", "", "", "", "", "", 10, "Health"))

		p, err := store.ProjectByID(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, "Clinic Solar", p.Title)
		assert.Equal(t, "Health", p.Sector)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		mock.ExpectQuery(`where p\.id = \$1`).
			WithArgs(999).
			WillReturnRows(enrichedRows())

		_, err := store.ProjectByID(context.Background(), "999")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("non-numeric id never reaches the database", func(t *testing.T) {
		_, err := store.ProjectByID(context.Background(), "abc")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ProjectsBySector(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	t.Run("matches case-insensitively by substring", func(t *testing.T) {
		mock.ExpectQuery(`ilike`).
			WithArgs("health").
			WillReturnRows(enrichedRows().
				AddRow(1, "Clinic Solar", "", "", "", "", "", 10, "Health"))

		matched, err := store.ProjectsBySector(context.Background(), " health ")
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "Health", matched[0].Sector)
	})

	t.Run("empty query is invalid without touching the database", func(t *testing.T) {
		_, err := store.ProjectsBySector(context.Background(), "  ")
		assert.ErrorIs(t, err, catalog.ErrInvalidSector)
	})

	t.Run("zero matches fail with not found", func(t *testing.T) {
		mock.ExpectQuery(`ilike`).
			WithArgs("Nonexistent").
			WillReturnRows(enrichedRows())

		_, err := store.ProjectsBySector(context.Background(), "Nonexistent")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("LIKE wildcards in the query match literally", func(t *testing.T) {
		// A bare "%" must not match every sector; it reaches the database
		// escaped and, with no sector literally containing "%", finds nothing.
		mock.ExpectQuery(`ilike`).
			WithArgs(`\%`).
			WillReturnRows(enrichedRows())

		_, err := store.ProjectsBySector(context.Background(), "%")
		assert.ErrorIs(t, err, catalog.ErrNotFound)

		mock.ExpectQuery(`ilike`).
			WithArgs(`\_`).
			WillReturnRows(enrichedRows())

		_, err = store.ProjectsBySector(context.Background(), "_")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_AllSectors(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	mock.ExpectQuery(`select id, sector_name from sectors`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sector_name"}).
			AddRow(10, "Health").
			AddRow(20, "Energy"))

	sectors, err := store.AllSectors(context.Background())
	require.NoError(t, err)
	require.Len(t, sectors, 2)
	assert.Equal(t, "Energy", sectors[1].SectorName)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_AddProject(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	t.Run("empty strings persist as NULL", func(t *testing.T) {
		mock.ExpectExec(`insert into projects`).
			WithArgs("Clinic Solar", "img.png", nil, nil, nil, nil, 10).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := store.AddProject(context.Background(), catalog.ProjectFields{
			Title:         "Clinic Solar",
			FeatureImgURL: "img.png",
			SummaryShort:  "",
			IntroShort:    "  ",
			SectorID:      10,
		})
		require.NoError(t, err)
	})

	t.Run("store rejection surfaces as a validation error", func(t *testing.T) {
		mock.ExpectExec(`insert into projects`).
			WithArgs("Orphan", nil, nil, nil, nil, nil, 99).
			WillReturnError(assert.AnError)

		err := store.AddProject(context.Background(), catalog.ProjectFields{
			Title:    "Orphan",
			SectorID: 99,
		})
		var vErr *catalog.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("blank title becomes NULL and is rejected", func(t *testing.T) {
		mock.ExpectExec(`insert into projects`).
			WithArgs(nil, nil, nil, nil, nil, nil, 10).
			WillReturnError(&pq.Error{Code: "23502", Column: "title"})

		err := store.AddProject(context.Background(), catalog.ProjectFields{
			Title:    "   ",
			SectorID: 10,
		})
		var vErr *catalog.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "title")
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_EditProject(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	t.Run("updates an existing row", func(t *testing.T) {
		mock.ExpectExec(`update projects`).
			WithArgs(1, "Renamed", nil, nil, nil, nil, nil, 20).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.EditProject(context.Background(), 1, catalog.ProjectFields{
			Title:    "Renamed",
			SectorID: 20,
		})
		require.NoError(t, err)
	})

	t.Run("missing id fails with not found", func(t *testing.T) {
		mock.ExpectExec(`update projects`).
			WithArgs(999, "Ghost", nil, nil, nil, nil, nil, 20).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := store.EditProject(context.Background(), 999, catalog.ProjectFields{
			Title:    "Ghost",
			SectorID: 20,
		})
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("blank title becomes NULL and is rejected", func(t *testing.T) {
		mock.ExpectExec(`update projects`).
			WithArgs(1, nil, nil, nil, nil, nil, nil, 20).
			WillReturnError(&pq.Error{Code: "23502", Column: "title"})

		err := store.EditProject(context.Background(), 1, catalog.ProjectFields{
			Title:    "",
			SectorID: 20,
		})
		var vErr *catalog.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "title")
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DeleteProject(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	t.Run("deletes an existing row", func(t *testing.T) {
		mock.ExpectExec(`delete from projects`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.DeleteProject(context.Background(), 1))
	})

	t.Run("missing id fails with not found", func(t *testing.T) {
		mock.ExpectExec(`delete from projects`).
			WithArgs(999).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := store.DeleteProject(context.Background(), 999)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
