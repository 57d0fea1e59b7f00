package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Currículo</title>
</head>
<body><h1>Bryan Andrade</h1></body>
</html>`

func newTestConverter(t *testing.T) *Converter {
	t.Helper()
	c, err := NewConverter(t.TempDir(), 5*time.Second)
	require.NoError(t, err)
	return c
}

func TestHTMLToDOCWrapsEnvelope(t *testing.T) {
	doc, err := HTMLToDOC(sampleHTML)
	require.NoError(t, err)

	out := string(doc)
	assert.Contains(t, out, `xmlns:w="urn:schemas-microsoft-com:office:word"`)
	assert.Contains(t, out, "<w:View>Print</w:View>")
	// Body content survives untouched.
	assert.Contains(t, out, "<h1>Bryan Andrade</h1>")
	// The original html attributes are replaced, not duplicated.
	assert.NotContains(t, out, `lang="pt-BR"`)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
}

func TestHTMLToDOCRejectsMissingHTMLElement(t *testing.T) {
	_, err := HTMLToDOC("<body>sem envelope</body>")
	assert.Error(t, err)
}

func TestHTMLToDOCRejectsUnterminatedHTMLElement(t *testing.T) {
	_, err := HTMLToDOC("<html lang=\"pt-BR\"")
	assert.Error(t, err)
}

func TestSaveDOCWritesArtifact(t *testing.T) {
	c := newTestConverter(t)

	path, err := c.SaveDOC(sampleHTML, "curriculo")
	require.NoError(t, err)

	assert.Equal(t, c.OutputDir(), filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "curriculo-"))
	assert.True(t, strings.HasSuffix(path, ".doc"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "urn:schemas-microsoft-com:office:word")
}

func TestSaveHTMLWritesArtifact(t *testing.T) {
	c := newTestConverter(t)

	path, err := c.SaveHTML(sampleHTML, "curriculo")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".html"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleHTML, string(content))
}

func TestSaveHTMLUniqueNames(t *testing.T) {
	c := newTestConverter(t)

	first, err := c.SaveHTML(sampleHTML, "curriculo")
	require.NoError(t, err)
	second, err := c.SaveHTML(sampleHTML, "curriculo")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestArtifactPath(t *testing.T) {
	c := newTestConverter(t)

	path, err := c.ArtifactPath("curriculo-20260829-100000-abcd1234.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(c.OutputDir(), "curriculo-20260829-100000-abcd1234.pdf"), path)

	for _, bad := range []string{"", "../secrets.txt", "a/b.pdf", "..", "/etc/passwd"} {
		_, err := c.ArtifactPath(bad)
		assert.Error(t, err, "filename %q", bad)
	}
}
