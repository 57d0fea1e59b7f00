package db

import (
	"context"
	"fmt"
)

// schema is applied on startup. Statements are idempotent so repeated boots
// are safe.
const schema = `
CREATE TABLE IF NOT EXISTS perfil (
    id BIGINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
    nome_completo TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    telefone TEXT NOT NULL DEFAULT '',
    localizacao TEXT NOT NULL DEFAULT '',
    linkedin TEXT NOT NULL DEFAULT '',
    github TEXT NOT NULL DEFAULT '',
    resumo_base TEXT NOT NULL DEFAULT '',
    data_nascimento TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS experiencias (
    id BIGSERIAL PRIMARY KEY,
    empresa TEXT NOT NULL,
    cargo TEXT NOT NULL,
    data_inicio TEXT NOT NULL DEFAULT '',
    data_fim TEXT NOT NULL DEFAULT '',
    descricao_atividades TEXT NOT NULL DEFAULT '',
    principais_conquistas TEXT NOT NULL DEFAULT '',
    categoria TEXT NOT NULL DEFAULT '',
    tags_tecnicas TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS formacao_projetos (
    id BIGSERIAL PRIMARY KEY,
    tipo TEXT NOT NULL,
    instituicao_projeto TEXT NOT NULL,
    titulo_curso TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT '',
    descricao_detalhada TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS cursos (
    id BIGSERIAL PRIMARY KEY,
    emissor_instituicao TEXT NOT NULL DEFAULT '',
    titulo_do_curso TEXT NOT NULL,
    descricao TEXT NOT NULL DEFAULT '',
    destaque TEXT NOT NULL DEFAULT 'Não',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS idiomas (
    id BIGSERIAL PRIMARY KEY,
    idioma TEXT NOT NULL,
    nivel_cefr TEXT NOT NULL DEFAULT '',
    certificacao_exame TEXT NOT NULL DEFAULT '',
    historico_de_escolas TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS geracoes (
    id UUID PRIMARY KEY,
    titulo_vaga TEXT NOT NULL,
    empresa TEXT NOT NULL DEFAULT '',
    idioma TEXT NOT NULL DEFAULT 'pt-BR',
    formato TEXT NOT NULL DEFAULT 'pdf',
    status TEXT NOT NULL DEFAULT 'processando',
    score INT,
    arquivo_path TEXT NOT NULL DEFAULT '',
    keywords JSONB,
    erro TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_geracoes_created_at ON geracoes (created_at DESC);

CREATE TABLE IF NOT EXISTS configuracoes (
    chave TEXT PRIMARY KEY,
    valor TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema creates the tables the application needs when they do not
// exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
