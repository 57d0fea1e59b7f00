package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AndradeTK/BryanAI/internal/resume"
)

const experienceColumns = `id, empresa, cargo, data_inicio, data_fim, descricao_atividades, principais_conquistas, categoria, tags_tecnicas`

// ListExperiences retrieves all experiences, most recent start first.
func (db *DB) ListExperiences(ctx context.Context) ([]resume.Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+experienceColumns+` FROM experiencias ORDER BY data_inicio DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	var experiences []resume.Experience
	for rows.Next() {
		var e resume.Experience
		if err := scanExperience(rows, &e); err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	return experiences, nil
}

// GetExperience retrieves one experience by ID. Returns nil when not found.
func (db *DB) GetExperience(ctx context.Context, id int64) (*resume.Experience, error) {
	var e resume.Experience
	err := scanExperience(db.pool.QueryRow(ctx,
		`SELECT `+experienceColumns+` FROM experiencias WHERE id = $1`, id,
	), &e)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// CreateExperience inserts a new experience and fills in its ID.
func (db *DB) CreateExperience(ctx context.Context, e *resume.Experience) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO experiencias (empresa, cargo, data_inicio, data_fim, descricao_atividades, principais_conquistas, categoria, tags_tecnicas)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		e.Company, e.Title, e.StartDate, e.EndDate, e.Activities, e.Achievements, e.Category, e.Tags,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

// UpdateExperience replaces an existing experience.
func (db *DB) UpdateExperience(ctx context.Context, e *resume.Experience) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE experiencias SET empresa = $1, cargo = $2, data_inicio = $3, data_fim = $4,
		     descricao_atividades = $5, principais_conquistas = $6, categoria = $7, tags_tecnicas = $8
		 WHERE id = $9`,
		e.Company, e.Title, e.StartDate, e.EndDate, e.Activities, e.Achievements, e.Category, e.Tags, e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("experience not found: %d", e.ID)
	}
	return nil
}

// DeleteExperience removes an experience by ID.
func (db *DB) DeleteExperience(ctx context.Context, id int64) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM experiencias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("experience not found: %d", id)
	}
	return nil
}

func scanExperience(row pgx.Row, e *resume.Experience) error {
	if err := row.Scan(&e.ID, &e.Company, &e.Title, &e.StartDate, &e.EndDate, &e.Activities, &e.Achievements, &e.Category, &e.Tags); err != nil {
		if err == pgx.ErrNoRows {
			return err
		}
		return fmt.Errorf("failed to scan experience: %w", err)
	}
	return nil
}
