// Command seed creates the catalog schema and loads the compiled-in seed
// data, so a fresh database matches what the static provider serves.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/climate-solutions/solutions-backend/config"
	"github.com/climate-solutions/solutions-backend/internal/bootstrap"
	"github.com/climate-solutions/solutions-backend/internal/catalog/static"
)

// pgx's extended protocol runs one statement per Exec.
var schema = []string{
	`create table if not exists sectors (
	id          serial primary key,
	sector_name text not null
);`,
	`create table if not exists projects (
	id                  serial primary key,
	title               text not null,
	feature_img_url     text,
	summary_short       text,
	intro_short         text,
	impact              text,
	original_source_url text,
	sector_id           integer not null references sectors (id)
);`,
}

func main() {
	reset := flag.Bool("reset", false, "truncate existing catalog rows before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, bootstrap.DSN(&cfg.Database))
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("db ping: %v", err)
	}

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalf("create schema: %v", err)
		}
	}

	if *reset {
		if _, err := pool.Exec(ctx, `truncate projects, sectors restart identity cascade;`); err != nil {
			log.Fatalf("reset catalog: %v", err)
		}
	}

	if err := seed(ctx, pool); err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Printf("seeded %d sectors and %d projects", len(static.SeedSectors), len(static.SeedProjects))
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	sectorRows := make([][]any, 0, len(static.SeedSectors))
	for _, s := range static.SeedSectors {
		sectorRows = append(sectorRows, []any{s.ID, s.SectorName})
	}

	if _, err := pool.CopyFrom(ctx,
		pgx.Identifier{"sectors"},
		[]string{"id", "sector_name"},
		pgx.CopyFromRows(sectorRows),
	); err != nil {
		return err
	}

	projectRows := make([][]any, 0, len(static.SeedProjects))
	for _, p := range static.SeedProjects {
		projectRows = append(projectRows, []any{
			p.ID, p.Title,
			textOrNil(p.FeatureImgURL),
			textOrNil(p.SummaryShort),
			textOrNil(p.IntroShort),
			textOrNil(p.Impact),
			textOrNil(p.OriginalSourceURL),
			p.SectorID,
		})
	}

	if _, err := pool.CopyFrom(ctx,
		pgx.Identifier{"projects"},
		[]string{"id", "title", "feature_img_url", "summary_short", "intro_short", "impact", "original_source_url", "sector_id"},
		pgx.CopyFromRows(projectRows),
	); err != nil {
		return err
	}

	// Seed rows carry explicit ids; move the sequences past them.
	for _, stmt := range []string{
		`select setval('sectors_id_seq', (select max(id) from sectors));`,
		`select setval('projects_id_seq', (select max(id) from projects));`,
	} {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func textOrNil(v string) any {
	if v == "" {
		return nil
	}
	return v
}
