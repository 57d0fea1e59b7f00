package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Generation lifecycle states. A record is created as processing and moves
// exactly once to completed or failed.
const (
	StatusProcessing = "processando"
	StatusCompleted  = "concluido"
	StatusFailed     = "falha"
)

// Generation is one résumé-generation attempt in the history ledger.
type Generation struct {
	ID          uuid.UUID  `json:"id"`
	JobTitle    string     `json:"titulo_vaga"`
	Company     string     `json:"empresa"`
	Language    string     `json:"idioma"`
	Format      string     `json:"formato"`
	Status      string     `json:"status"`
	Score       *int       `json:"score"`
	FilePath    string     `json:"arquivo_path"`
	Keywords    []string   `json:"keywords"`
	Error       string     `json:"erro,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

const generationColumns = `id, titulo_vaga, empresa, idioma, formato, status, score, arquivo_path, keywords, erro, created_at, completed_at`

// CreateGeneration records the start of a generation attempt and returns the
// new record in the processing state.
func (db *DB) CreateGeneration(ctx context.Context, jobTitle, company, language, format string) (*Generation, error) {
	g := &Generation{
		ID:       uuid.New(),
		JobTitle: jobTitle,
		Company:  company,
		Language: language,
		Format:   format,
		Status:   StatusProcessing,
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO geracoes (id, titulo_vaga, empresa, idioma, formato, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		g.ID, g.JobTitle, g.Company, g.Language, g.Format, g.Status,
	).Scan(&g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation: %w", err)
	}
	return g, nil
}

// MarkGenerationCompleted transitions a generation to the completed state,
// attaching the fit score, artifact path and optimized keywords.
func (db *DB) MarkGenerationCompleted(ctx context.Context, id uuid.UUID, score int, filePath string, keywords []string) error {
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE geracoes SET status = $1, score = $2, arquivo_path = $3, keywords = $4, completed_at = NOW()
		 WHERE id = $5`,
		StatusCompleted, score, filePath, keywordsJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete generation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("generation not found: %s", id)
	}
	return nil
}

// MarkGenerationFailed transitions a generation to the failed state with a
// diagnostic message.
func (db *DB) MarkGenerationFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE geracoes SET status = $1, erro = $2, completed_at = NOW() WHERE id = $3`,
		StatusFailed, errMsg, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark generation failed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("generation not found: %s", id)
	}
	return nil
}

// GetGeneration retrieves one generation by ID. Returns nil when not found.
func (db *DB) GetGeneration(ctx context.Context, id uuid.UUID) (*Generation, error) {
	g, err := scanGeneration(db.pool.QueryRow(ctx,
		`SELECT `+generationColumns+` FROM geracoes WHERE id = $1`, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return g, nil
}

// ListGenerations retrieves recent generations, newest first.
func (db *DB) ListGenerations(ctx context.Context, limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+generationColumns+` FROM geracoes ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var generations []Generation
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		generations = append(generations, *g)
	}
	return generations, nil
}

// DeleteGeneration removes a generation record by ID.
func (db *DB) DeleteGeneration(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM geracoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete generation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("generation not found: %s", id)
	}
	return nil
}

// Stats aggregates the generation history for the dashboard.
type Stats struct {
	Total        int            `json:"total"`
	Completed    int            `json:"concluidas"`
	Failed       int            `json:"falhas"`
	Processing   int            `json:"processando"`
	AverageScore float64        `json:"score_medio"`
	ByLanguage   map[string]int `json:"por_idioma"`
	ByFormat     map[string]int `json:"por_formato"`
}

// GenerationStats computes aggregate counters over the whole ledger. The
// average score only considers completed generations.
func (db *DB) GenerationStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		ByLanguage: make(map[string]int),
		ByFormat:   make(map[string]int),
	}

	var avgScore *float64
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = $1),
		        COUNT(*) FILTER (WHERE status = $2),
		        COUNT(*) FILTER (WHERE status = $3),
		        AVG(score) FILTER (WHERE status = $1)
		 FROM geracoes`,
		StatusCompleted, StatusFailed, StatusProcessing,
	).Scan(&stats.Total, &stats.Completed, &stats.Failed, &stats.Processing, &avgScore)
	if err != nil {
		return nil, fmt.Errorf("failed to compute generation stats: %w", err)
	}
	if avgScore != nil {
		stats.AverageScore = *avgScore
	}

	rows, err := db.pool.Query(ctx, `SELECT idioma, COUNT(*) FROM geracoes GROUP BY idioma`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute language stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var language string
		var count int
		if err := rows.Scan(&language, &count); err != nil {
			return nil, fmt.Errorf("failed to scan language stat: %w", err)
		}
		stats.ByLanguage[language] = count
	}

	formatRows, err := db.pool.Query(ctx, `SELECT formato, COUNT(*) FROM geracoes GROUP BY formato`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute format stats: %w", err)
	}
	defer formatRows.Close()
	for formatRows.Next() {
		var format string
		var count int
		if err := formatRows.Scan(&format, &count); err != nil {
			return nil, fmt.Errorf("failed to scan format stat: %w", err)
		}
		stats.ByFormat[format] = count
	}

	return stats, nil
}

func scanGeneration(row pgx.Row) (*Generation, error) {
	var g Generation
	var keywordsJSON []byte
	err := row.Scan(&g.ID, &g.JobTitle, &g.Company, &g.Language, &g.Format, &g.Status,
		&g.Score, &g.FilePath, &keywordsJSON, &g.Error, &g.CreatedAt, &g.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan generation: %w", err)
	}
	if len(keywordsJSON) > 0 {
		if err := json.Unmarshal(keywordsJSON, &g.Keywords); err != nil {
			return nil, fmt.Errorf("failed to decode keywords: %w", err)
		}
	}
	return &g, nil
}
