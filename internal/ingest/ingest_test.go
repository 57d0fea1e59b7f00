package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingPage = `<!DOCTYPE html>
<html>
<head><title>Engenheiro de Software Go | TechCorp</title></head>
<body>
<nav>Home | Vagas | Sobre</nav>
<header>TechCorp Carreiras</header>
<h1>Engenheiro de Software Go</h1>
<div class="job-description">
<p>Procuramos engenheiro com experiência em Go e PostgreSQL.</p>
<p>Requisitos: 3 anos de backend, APIs REST, Docker.</p>
</div>
<script>trackPageView();</script>
<footer>© TechCorp</footer>
</body>
</html>`

func TestExtractPosting(t *testing.T) {
	posting, err := ExtractPosting(postingPage)
	require.NoError(t, err)

	assert.Equal(t, "Engenheiro de Software Go", posting.Title)
	assert.Equal(t, "TechCorp", posting.Company)
	assert.Contains(t, posting.Description, "experiência em Go e PostgreSQL")
	assert.Contains(t, posting.Description, "Docker")

	// Navigation, scripts and footer never reach the prompt.
	assert.NotContains(t, posting.Description, "trackPageView")
	assert.NotContains(t, posting.Description, "Home | Vagas")
	assert.NotContains(t, posting.Description, "© TechCorp")
}

func TestExtractPostingTitleFromPageTitle(t *testing.T) {
	page := `<html><head><title>Analista de Dados - DataCo</title></head>
		<body><div class="content">Vaga para analista de dados.</div></body></html>`
	posting, err := ExtractPosting(page)
	require.NoError(t, err)
	assert.Equal(t, "Analista de Dados", posting.Title)
	assert.Equal(t, "DataCo", posting.Company)
}

func TestExtractPostingBodyFallback(t *testing.T) {
	page := `<html><head><title>Vaga</title></head><body><p>Descrição direta no corpo.</p></body></html>`
	posting, err := ExtractPosting(page)
	require.NoError(t, err)
	assert.Contains(t, posting.Description, "Descrição direta no corpo.")
}

func TestFromURL(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(postingPage))
	}))
	defer srv.Close()

	f := NewFetcher()
	posting, err := f.FromURL(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, DefaultUserAgent, gotUserAgent)
	assert.Equal(t, "Engenheiro de Software Go", posting.Title)
	assert.NotEmpty(t, posting.Description)
}

func TestFromURLNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher().FromURL(context.Background(), srv.URL)
	require.Error(t, err)

	var ingErr *Error
	require.ErrorAs(t, err, &ingErr)
	assert.Contains(t, ingErr.Message, "404")
}

func TestFromURLEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>x</title></head><body></body></html>`))
	}))
	defer srv.Close()

	_, err := NewFetcher().FromURL(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no posting text")
}

func TestFromURLRejectsInvalidURL(t *testing.T) {
	f := NewFetcher()
	for _, bad := range []string{"", "not a url", "ftp://example.com/vaga", "file:///etc/passwd"} {
		_, err := f.FromURL(context.Background(), bad)
		assert.Error(t, err, "url %q", bad)
	}
}

func TestCleanWhitespace(t *testing.T) {
	in := "  Linha   um  \n\n\n\n  Linha    dois\t\tfinal  "
	assert.Equal(t, "Linha um\n\nLinha dois final", cleanWhitespace(in))
}
