package convert

import (
	"fmt"
	"strings"
)

// wordHeader declares the Microsoft Office namespaces Word looks for when
// opening an HTML file, plus print-view settings so the document opens in
// page layout instead of web layout.
const wordHeader = `<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word" xmlns="http://www.w3.org/TR/REC-html40"`

const wordSettings = `<!--[if gte mso 9]>
<xml>
<w:WordDocument>
<w:View>Print</w:View>
<w:Zoom>100</w:Zoom>
</w:WordDocument>
</xml>
<![endif]-->
`

// HTMLToDOC produces a Word-compatible document from the HTML. Word opens
// HTML natively when the Office namespaces are declared, so the conversion
// rewrites the document envelope rather than re-encoding the content.
func HTMLToDOC(html string) ([]byte, error) {
	idx := strings.Index(html, "<html")
	if idx < 0 {
		return nil, fmt.Errorf("document has no <html> element")
	}
	end := strings.Index(html[idx:], ">")
	if end < 0 {
		return nil, fmt.Errorf("document has a malformed <html> element")
	}

	doc := html[:idx] + wordHeader + html[idx+end:]
	if headIdx := strings.Index(doc, "<head>"); headIdx >= 0 {
		doc = doc[:headIdx+len("<head>")] + "\n" + wordSettings + doc[headIdx+len("<head>"):]
	}
	return []byte(doc), nil
}

// SaveDOC converts the HTML document and writes the DOC artifact, returning
// its path.
func (c *Converter) SaveDOC(html, prefix string) (string, error) {
	doc, err := HTMLToDOC(html)
	if err != nil {
		return "", err
	}
	return c.writeArtifact(prefix, "doc", doc)
}

// SaveHTML writes the raw HTML artifact, returning its path.
func (c *Converter) SaveHTML(html, prefix string) (string, error) {
	return c.writeArtifact(prefix, "html", []byte(html))
}
