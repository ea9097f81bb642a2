package catalog

import "context"

// Sector is a reference row projects are grouped under.
type Sector struct {
	ID         int    `json:"id"`
	SectorName string `json:"sector_name"`
}

// Project is a single catalog entry. Optional text fields use "" for
// absent; the relational store persists those as NULL.
type Project struct {
	ID                int    `json:"id"`
	Title             string `json:"title"`
	FeatureImgURL     string `json:"feature_img_url"`
	SummaryShort      string `json:"summary_short"`
	IntroShort        string `json:"intro_short"`
	Impact            string `json:"impact"`
	OriginalSourceURL string `json:"original_source_url"`
	SectorID          int    `json:"sector_id"`
}

// EnrichedProject is the read model served to handlers: a project plus its
// resolved sector display name. Both providers return this exact shape so
// the presentation layer never sees storage-specific nesting.
type EnrichedProject struct {
	Project
	Sector string `json:"sector"`
}

// ProjectFields carries user-submitted project attributes for create and
// update operations. Values are normalized (trimmed, with empty strings
// persisted as NULL) by the provider before they hit the store.
type ProjectFields struct {
	Title             string
	FeatureImgURL     string
	SummaryShort      string
	IntroShort        string
	Impact            string
	OriginalSourceURL string
	SectorID          int
}

// Provider is the catalog contract shared by the static and relational
// implementations. Initialize must succeed before any other call; queries
// on an uninitialized provider fail with ErrNotInitialized.
//
// The mutating operations and AllSectors exist only on the relational
// provider; the static provider answers them with ErrReadOnlyCatalog.
type Provider interface {
	Initialize(ctx context.Context) error
	AllProjects(ctx context.Context) ([]EnrichedProject, error)
	ProjectByID(ctx context.Context, id string) (*EnrichedProject, error)
	ProjectsBySector(ctx context.Context, sector string) ([]EnrichedProject, error)
	AllSectors(ctx context.Context) ([]Sector, error)
	AddProject(ctx context.Context, fields ProjectFields) error
	EditProject(ctx context.Context, id int, fields ProjectFields) error
	DeleteProject(ctx context.Context, id int) error
}
