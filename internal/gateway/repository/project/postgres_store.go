package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"specforge/internal/spec"
)

// PostgresStore keeps projects, sources, and spec versions in Postgres,
// reached through the pgx database/sql driver.
type PostgresStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error { return s.db.Close() }

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS projects (
  project_id TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT 'Untitled Project',
  description TEXT NOT NULL DEFAULT '',
  stack JSONB NOT NULL DEFAULT '{}'::jsonb,
  blueprint_config JSONB NOT NULL DEFAULT '[]'::jsonb,
  raw_prompt TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS project_specs (
  id TEXT PRIMARY KEY,
  project_id TEXT NOT NULL REFERENCES projects(project_id) ON DELETE CASCADE,
  version TEXT NOT NULL,
  title TEXT NOT NULL,
  cold_start_guide TEXT NOT NULL DEFAULT '',
  directory_structure TEXT NOT NULL DEFAULT '',
  implementation_plan JSONB NOT NULL DEFAULT '[]'::jsonb,
  tasks JSONB NOT NULL DEFAULT '[]'::jsonb,
  architecture_notes TEXT NOT NULL DEFAULT '',
  full_markdown_spec TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (project_id, version)
);
CREATE INDEX IF NOT EXISTS idx_project_specs_project_id ON project_specs (project_id);

CREATE TABLE IF NOT EXISTS project_sources (
  id TEXT PRIMARY KEY,
  project_id TEXT NOT NULL REFERENCES projects(project_id) ON DELETE CASCADE,
  file_name TEXT NOT NULL,
  file_type TEXT NOT NULL DEFAULT 'pasted',
  content TEXT NOT NULL DEFAULT '',
  uploaded_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_project_sources_project_id ON project_sources (project_id);
`)
	})
	return s.schemaErr
}

func (s *PostgresStore) CreateProject(ctx context.Context, p Project) (Project, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return Project{}, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Name == "" {
		p.Name = "Untitled Project"
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now

	stackJSON, selectedJSON, err := marshalProjectConfig(p)
	if err != nil {
		return Project{}, err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO projects (project_id, name, description, stack, blueprint_config, raw_prompt, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.Name, p.Description, stackJSON, selectedJSON, p.RawPrompt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *PostgresStore) GetProject(ctx context.Context, id string) (Project, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return Project{}, err
	}
	row := s.db.QueryRowContext(ctx, `
SELECT project_id, name, description, stack, blueprint_config, raw_prompt, created_at, updated_at
FROM projects WHERE project_id = $1`, id)
	return scanProject(row)
}

func (s *PostgresStore) ListProjects(ctx context.Context) ([]Project, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT project_id, name, description, stack, blueprint_config, raw_prompt, created_at, updated_at
FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateProject(ctx context.Context, id string, update func(*Project)) (Project, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return Project{}, err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Project{}, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
SELECT project_id, name, description, stack, blueprint_config, raw_prompt, created_at, updated_at
FROM projects WHERE project_id = $1 FOR UPDATE`, id)
	p, err := scanProject(row)
	if err != nil {
		return Project{}, err
	}

	update(&p)
	p.UpdatedAt = time.Now().UTC()

	stackJSON, selectedJSON, err := marshalProjectConfig(p)
	if err != nil {
		return Project{}, err
	}
	_, err = tx.ExecContext(ctx, `
UPDATE projects SET name=$2, description=$3, stack=$4, blueprint_config=$5, raw_prompt=$6, updated_at=$7
WHERE project_id=$1`,
		p.ID, p.Name, p.Description, stackJSON, selectedJSON, p.RawPrompt, p.UpdatedAt)
	if err != nil {
		return Project{}, err
	}
	if err := tx.Commit(); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *PostgresStore) DeleteProject(ctx context.Context, id string) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE project_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) AddSource(ctx context.Context, projectID string, src spec.ReferenceSource) (spec.ReferenceSource, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return spec.ReferenceSource{}, err
	}
	if src.ID == "" {
		src.ID = uuid.NewString()
	}
	if src.Kind == "" {
		src.Kind = "pasted"
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO project_sources (id, project_id, file_name, file_type, content)
VALUES ($1,$2,$3,$4,$5)`,
		src.ID, projectID, src.Name, src.Kind, src.Content)
	if err != nil {
		return spec.ReferenceSource{}, err
	}
	return src, nil
}

func (s *PostgresStore) ListSources(ctx context.Context, projectID string) ([]spec.ReferenceSource, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, file_name, file_type, content
FROM project_sources WHERE project_id = $1 ORDER BY uploaded_at ASC, id ASC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []spec.ReferenceSource{}
	for rows.Next() {
		var src spec.ReferenceSource
		if err := rows.Scan(&src.ID, &src.Name, &src.Kind, &src.Content); err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteSource(ctx context.Context, projectID, sourceID string) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM project_sources WHERE project_id = $1 AND id = $2`, projectID, sourceID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertSpec allocates the next version inside the insert transaction. The
// project row is locked first, so two concurrent generations for the same
// project serialize here and cannot observe the same version count.
func (s *PostgresStore) InsertSpec(ctx context.Context, projectID, title string, result spec.SpecificationResult) (spec.SpecVersion, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return spec.SpecVersion{}, err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return spec.SpecVersion{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var locked string
	if err := tx.QueryRowContext(ctx,
		`SELECT project_id FROM projects WHERE project_id = $1 FOR UPDATE`, projectID,
	).Scan(&locked); err != nil {
		if err == sql.ErrNoRows {
			return spec.SpecVersion{}, ErrNotFound
		}
		return spec.SpecVersion{}, err
	}

	var existing int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM project_specs WHERE project_id = $1`, projectID,
	).Scan(&existing); err != nil {
		return spec.SpecVersion{}, err
	}

	v := spec.SpecVersion{
		ID:                  uuid.NewString(),
		ProjectID:           projectID,
		Version:             spec.NextVersion(existing),
		Title:               title,
		SpecificationResult: result,
		CreatedAt:           time.Now().UTC(),
	}
	planJSON, err := json.Marshal(v.ImplementationPlan)
	if err != nil {
		return spec.SpecVersion{}, err
	}
	_, err = tx.ExecContext(ctx, `
INSERT INTO project_specs (
  id, project_id, version, title,
  cold_start_guide, directory_structure, implementation_plan, tasks,
  architecture_notes, full_markdown_spec, created_at
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		v.ID, v.ProjectID, v.Version, v.Title,
		v.ColdStartGuide, v.DirectoryStructure, planJSON, planJSON,
		v.ArchitectureNotes, v.FullMarkdownSpec, v.CreatedAt)
	if err != nil {
		return spec.SpecVersion{}, err
	}
	if err := tx.Commit(); err != nil {
		return spec.SpecVersion{}, err
	}
	return v, nil
}

func (s *PostgresStore) ListSpecs(ctx context.Context, projectID string) ([]spec.SpecVersion, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, project_id, version, title,
  cold_start_guide, directory_structure, implementation_plan,
  architecture_notes, full_markdown_spec, created_at
FROM project_specs WHERE project_id = $1 ORDER BY created_at DESC, version DESC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []spec.SpecVersion{}
	for rows.Next() {
		var v spec.SpecVersion
		var planJSON []byte
		if err := rows.Scan(&v.ID, &v.ProjectID, &v.Version, &v.Title,
			&v.ColdStartGuide, &v.DirectoryStructure, &planJSON,
			&v.ArchitectureNotes, &v.FullMarkdownSpec, &v.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(planJSON, &v.ImplementationPlan); err != nil {
			return nil, fmt.Errorf("project: decode implementation plan for spec %s: %w", v.ID, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (Project, error) {
	var p Project
	var stackJSON, selectedJSON []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &stackJSON, &selectedJSON, &p.RawPrompt, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return Project{}, ErrNotFound
	}
	if err != nil {
		return Project{}, err
	}
	if err := json.Unmarshal(stackJSON, &p.Stack); err != nil {
		return Project{}, fmt.Errorf("project: decode stack for %s: %w", p.ID, err)
	}
	if err := json.Unmarshal(selectedJSON, &p.Selected); err != nil {
		return Project{}, fmt.Errorf("project: decode blueprint config for %s: %w", p.ID, err)
	}
	return p, nil
}

func marshalProjectConfig(p Project) (stackJSON, selectedJSON []byte, err error) {
	stackJSON, err = json.Marshal(p.Stack)
	if err != nil {
		return nil, nil, err
	}
	selected := p.Selected
	if selected == nil {
		selected = []spec.SelectedModule{}
	}
	selectedJSON, err = json.Marshal(selected)
	if err != nil {
		return nil, nil, err
	}
	return stackJSON, selectedJSON, nil
}
