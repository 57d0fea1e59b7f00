// Package ingest pulls a job posting out of a web page so the user can paste
// a URL instead of the posting text.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/AndradeTK/BryanAI/internal/resume"
)

// DefaultTimeout is the HTTP request timeout for posting pages.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the fetcher to job boards.
const DefaultUserAgent = "Mozilla/5.0 (compatible; BryanAI/1.0)"

// maxDescriptionLength bounds what gets fed into prompts from arbitrary
// pages.
const maxDescriptionLength = 12000

// Error represents a failure ingesting a posting URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingest error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fetcher retrieves and parses job postings from URLs.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a Fetcher with the default timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
	}
}

// FromURL fetches the page and extracts a posting from it. The description
// is plain text with navigation, scripts and banners removed.
func (f *Fetcher) FromURL(ctx context.Context, urlStr string) (*resume.JobPosting, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("unsupported scheme %q", parsed.Scheme)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	posting, err := ExtractPosting(string(body))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to parse page", Cause: err}
	}
	if strings.TrimSpace(posting.Description) == "" {
		return nil, &Error{URL: urlStr, Message: "no posting text found on page"}
	}
	return posting, nil
}

// jobContentSelectors are tried in order before falling back to body text.
var jobContentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-details",
	"[class*='jobDescription']",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractPosting parses posting HTML into a title, company guess and plain
// description text.
func ExtractPosting(html string) (*resume.JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, iframe, form, .ad, .ads, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range jobContentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	title, company := titleAndCompany(doc)
	return &resume.JobPosting{
		Title:       title,
		Company:     company,
		Description: truncate(cleanWhitespace(content.Text()), maxDescriptionLength),
	}, nil
}

// titleSplitRe covers the common "Role - Company" and "Role | Company"
// page-title shapes job boards use.
var titleSplitRe = regexp.MustCompile(`\s+[|\-–]\s+`)

func titleAndCompany(doc *goquery.Document) (title, company string) {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		title = h1
	}

	pageTitle := strings.TrimSpace(doc.Find("title").First().Text())
	if pageTitle == "" {
		return title, ""
	}
	parts := titleSplitRe.Split(pageTitle, -1)
	if title == "" {
		title = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		company = strings.TrimSpace(parts[len(parts)-1])
	}
	return title, company
}

var whitespaceRe = regexp.MustCompile(`[ \t]+`)
var blankLinesRe = regexp.MustCompile(`\n{3,}`)

func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = whitespaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	}
	text = strings.Join(lines, "\n")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
