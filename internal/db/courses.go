package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AndradeTK/BryanAI/internal/resume"
)

// ListCourses retrieves all courses, highlighted entries first.
func (db *DB) ListCourses(ctx context.Context) ([]resume.Course, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, emissor_instituicao, titulo_do_curso, descricao, destaque
		 FROM cursos ORDER BY destaque DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []resume.Course
	for rows.Next() {
		var c resume.Course
		if err := rows.Scan(&c.ID, &c.Issuer, &c.Title, &c.Description, &c.Highlighted); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}

// GetCourse retrieves one course by ID. Returns nil when not found.
func (db *DB) GetCourse(ctx context.Context, id int64) (*resume.Course, error) {
	var c resume.Course
	err := db.pool.QueryRow(ctx,
		`SELECT id, emissor_instituicao, titulo_do_curso, descricao, destaque
		 FROM cursos WHERE id = $1`, id,
	).Scan(&c.ID, &c.Issuer, &c.Title, &c.Description, &c.Highlighted)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &c, nil
}

// CreateCourse inserts a new course and fills in its ID.
func (db *DB) CreateCourse(ctx context.Context, c *resume.Course) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cursos (emissor_instituicao, titulo_do_curso, descricao, destaque)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		c.Issuer, c.Title, c.Description, c.Highlighted,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// UpdateCourse replaces an existing course.
func (db *DB) UpdateCourse(ctx context.Context, c *resume.Course) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE cursos SET emissor_instituicao = $1, titulo_do_curso = $2, descricao = $3, destaque = $4
		 WHERE id = $5`,
		c.Issuer, c.Title, c.Description, c.Highlighted, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("course not found: %d", c.ID)
	}
	return nil
}

// DeleteCourse removes a course by ID.
func (db *DB) DeleteCourse(ctx context.Context, id int64) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM cursos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("course not found: %d", id)
	}
	return nil
}
