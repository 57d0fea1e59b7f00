package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AndradeTK/BryanAI/internal/resume"
)

// GetProfile retrieves the singleton candidate profile. Returns nil when the
// profile was never saved.
func (db *DB) GetProfile(ctx context.Context) (*resume.Profile, error) {
	var p resume.Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, nome_completo, email, telefone, localizacao, linkedin, github, resumo_base, data_nascimento
		 FROM perfil WHERE id = 1`,
	).Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.Location, &p.LinkedIn, &p.GitHub, &p.BaseSummary, &p.BirthDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// SaveProfile creates or replaces the singleton candidate profile.
func (db *DB) SaveProfile(ctx context.Context, p *resume.Profile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO perfil (id, nome_completo, email, telefone, localizacao, linkedin, github, resumo_base, data_nascimento)
		 VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
		     nome_completo = $1, email = $2, telefone = $3, localizacao = $4,
		     linkedin = $5, github = $6, resumo_base = $7, data_nascimento = $8,
		     updated_at = NOW()`,
		p.FullName, p.Email, p.Phone, p.Location, p.LinkedIn, p.GitHub, p.BaseSummary, p.BirthDate,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	p.ID = 1
	return nil
}
