package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AndradeTK/BryanAI/internal/resume"
)

// ListLanguages retrieves all spoken-language entries.
func (db *DB) ListLanguages(ctx context.Context) ([]resume.LanguageSkill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, idioma, nivel_cefr, certificacao_exame, historico_de_escolas
		 FROM idiomas ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	defer rows.Close()

	var languages []resume.LanguageSkill
	for rows.Next() {
		var l resume.LanguageSkill
		if err := rows.Scan(&l.ID, &l.Language, &l.CEFRLevel, &l.Certification, &l.SchoolHistory); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, l)
	}
	return languages, nil
}

// GetLanguage retrieves one entry by ID. Returns nil when not found.
func (db *DB) GetLanguage(ctx context.Context, id int64) (*resume.LanguageSkill, error) {
	var l resume.LanguageSkill
	err := db.pool.QueryRow(ctx,
		`SELECT id, idioma, nivel_cefr, certificacao_exame, historico_de_escolas
		 FROM idiomas WHERE id = $1`, id,
	).Scan(&l.ID, &l.Language, &l.CEFRLevel, &l.Certification, &l.SchoolHistory)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get language: %w", err)
	}
	return &l, nil
}

// CreateLanguage inserts a new entry and fills in its ID.
func (db *DB) CreateLanguage(ctx context.Context, l *resume.LanguageSkill) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO idiomas (idioma, nivel_cefr, certificacao_exame, historico_de_escolas)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		l.Language, l.CEFRLevel, l.Certification, l.SchoolHistory,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("failed to create language: %w", err)
	}
	return nil
}

// UpdateLanguage replaces an existing entry.
func (db *DB) UpdateLanguage(ctx context.Context, l *resume.LanguageSkill) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE idiomas SET idioma = $1, nivel_cefr = $2, certificacao_exame = $3, historico_de_escolas = $4
		 WHERE id = $5`,
		l.Language, l.CEFRLevel, l.Certification, l.SchoolHistory, l.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update language: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("language not found: %d", l.ID)
	}
	return nil
}

// DeleteLanguage removes an entry by ID.
func (db *DB) DeleteLanguage(ctx context.Context, id int64) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM idiomas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete language: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("language not found: %d", id)
	}
	return nil
}
