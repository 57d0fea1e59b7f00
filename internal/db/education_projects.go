package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AndradeTK/BryanAI/internal/resume"
)

const educationProjectColumns = `id, tipo, instituicao_projeto, titulo_curso, status, descricao_detalhada`

// ListEducationProjects retrieves all education and project records.
func (db *DB) ListEducationProjects(ctx context.Context) ([]resume.EducationProject, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+educationProjectColumns+` FROM formacao_projetos ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list education/projects: %w", err)
	}
	defer rows.Close()

	var entries []resume.EducationProject
	for rows.Next() {
		var ep resume.EducationProject
		if err := rows.Scan(&ep.ID, &ep.Kind, &ep.Institution, &ep.CourseTitle, &ep.Status, &ep.Description); err != nil {
			return nil, fmt.Errorf("failed to scan education/project: %w", err)
		}
		entries = append(entries, ep)
	}
	return entries, nil
}

// GetEducationProject retrieves one record by ID. Returns nil when not found.
func (db *DB) GetEducationProject(ctx context.Context, id int64) (*resume.EducationProject, error) {
	var ep resume.EducationProject
	err := db.pool.QueryRow(ctx,
		`SELECT `+educationProjectColumns+` FROM formacao_projetos WHERE id = $1`, id,
	).Scan(&ep.ID, &ep.Kind, &ep.Institution, &ep.CourseTitle, &ep.Status, &ep.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get education/project: %w", err)
	}
	return &ep, nil
}

// CreateEducationProject inserts a new record and fills in its ID.
func (db *DB) CreateEducationProject(ctx context.Context, ep *resume.EducationProject) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO formacao_projetos (tipo, instituicao_projeto, titulo_curso, status, descricao_detalhada)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		ep.Kind, ep.Institution, ep.CourseTitle, ep.Status, ep.Description,
	).Scan(&ep.ID)
	if err != nil {
		return fmt.Errorf("failed to create education/project: %w", err)
	}
	return nil
}

// UpdateEducationProject replaces an existing record.
func (db *DB) UpdateEducationProject(ctx context.Context, ep *resume.EducationProject) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE formacao_projetos SET tipo = $1, instituicao_projeto = $2, titulo_curso = $3, status = $4, descricao_detalhada = $5
		 WHERE id = $6`,
		ep.Kind, ep.Institution, ep.CourseTitle, ep.Status, ep.Description, ep.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update education/project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("education/project not found: %d", ep.ID)
	}
	return nil
}

// DeleteEducationProject removes a record by ID.
func (db *DB) DeleteEducationProject(ctx context.Context, id int64) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM formacao_projetos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete education/project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("education/project not found: %d", id)
	}
	return nil
}
