package scrape

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	domain "github.com/bryanwahyu/brand-playground/internal/domain/scrape"
	"github.com/bryanwahyu/brand-playground/internal/middleware"
)

const (
	defaultTimeout   = 20 * time.Second
	defaultMaxBytes  = 2 << 20 // 2MB
	defaultMaxLength = 50000
	maxRedirects     = 5
	userAgent        = "Mozilla/5.0 (compatible; BrandPlayground/1.0)"
)

var (
	multiNewlinePattern = regexp.MustCompile(`\n{3,}`)
	multiSpacePattern   = regexp.MustCompile(`[ \t]{2,}`)
)

// WebScraper fetches a page over HTTP and converts it to markdown plus the
// metadata found in its head.
type WebScraper struct {
	Client    *http.Client
	Timeout   time.Duration
	MaxBytes  int64
	MaxLength int
	// Guard vets the URL before any request; middleware.ValidateURL when nil.
	Guard func(string) error
}

func NewWebScraper(timeout time.Duration) *WebScraper {
	return &WebScraper{Client: &http.Client{}, Timeout: timeout}
}

func (s *WebScraper) Scrape(ctx context.Context, rawURL string) (*domain.Page, error) {
	guard := s.Guard
	if guard == nil {
		guard = middleware.ValidateURL
	}
	if err := guard(rawURL); err != nil {
		return nil, fmt.Errorf("refusing to scrape: %w", err)
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	base := s.Client
	if base == nil {
		base = http.DefaultClient
	}
	// every hop goes through the guard, not only the submitted URL
	client := *base
	client.CheckRedirect = func(r *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("too many redirects")
		}
		if err := guard(r.URL.String()); err != nil {
			return fmt.Errorf("refusing redirect to %s: %w", r.URL.Redacted(), err)
		}
		return nil
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	maxBytes := s.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	page := &domain.Page{URL: rawURL, Metadata: map[string]string{"sourceURL": rawURL}}
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	switch mediaType {
	case "text/plain", "text/markdown":
		page.Markdown = strings.TrimSpace(string(body))
	default:
		doc, err := html.Parse(strings.NewReader(string(body)))
		if err != nil {
			return nil, fmt.Errorf("failed to parse html: %w", err)
		}
		collectMetadata(doc, page.Metadata)
		var sb strings.Builder
		extractText(doc, &sb, 0)
		page.Markdown = cleanMarkdown(sb.String())
	}

	maxLength := s.MaxLength
	if maxLength <= 0 {
		maxLength = defaultMaxLength
	}
	if len(page.Markdown) > maxLength {
		page.Markdown = strings.ToValidUTF8(page.Markdown[:maxLength], "") + "\n\n[...truncated...]"
	}
	return page, nil
}

// collectMetadata reads title, description, keywords, language, canonical
// link and every og:/twitter: property.
func collectMetadata(n *html.Node, meta map[string]string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "html":
			if lang := getAttr(n, "lang"); lang != "" {
				meta["language"] = lang
			}
		case "title":
			if _, ok := meta["title"]; !ok && n.FirstChild != nil {
				meta["title"] = strings.TrimSpace(n.FirstChild.Data)
			}
		case "link":
			if strings.EqualFold(getAttr(n, "rel"), "canonical") {
				meta["canonical"] = getAttr(n, "href")
			}
		case "meta":
			key := getAttr(n, "property")
			if key == "" {
				key = getAttr(n, "name")
			}
			key = strings.ToLower(key)
			content := strings.TrimSpace(getAttr(n, "content"))
			if content == "" {
				break
			}
			switch {
			case key == "description", key == "keywords", key == "author", key == "robots":
				meta[key] = content
			case strings.HasPrefix(key, "og:"), strings.HasPrefix(key, "twitter:"):
				meta[key] = content
			}
		case "body":
			// metadata lives in head
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectMetadata(c, meta)
	}
}

func extractText(n *html.Node, sb *strings.Builder, depth int) {
	if depth > 200 {
		return // Prevent excessive recursion
	}

	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
	case html.ElementNode:
		switch n.Data {
		case "head", "script", "style", "noscript", "iframe", "svg", "template", "nav", "footer":
			return // Skip these elements
		case "h1":
			sb.WriteString("\n\n# ")
		case "h2":
			sb.WriteString("\n\n## ")
		case "h3":
			sb.WriteString("\n\n### ")
		case "h4", "h5", "h6":
			sb.WriteString("\n\n#### ")
		case "p", "div", "section", "article", "header", "main":
			sb.WriteString("\n\n")
		case "br":
			sb.WriteString("\n")
		case "li":
			sb.WriteString("\n- ")
		case "strong", "b":
			sb.WriteString("**")
		case "em", "i":
			sb.WriteString("*")
		case "img":
			if alt := getAttr(n, "alt"); alt != "" {
				sb.WriteString(fmt.Sprintf("[Image: %s] ", alt))
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, sb, depth+1)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteString("\n\n")
		case "strong", "b":
			sb.WriteString("**")
		case "em", "i":
			sb.WriteString("*")
		}
	}
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// cleanMarkdown removes excessive whitespace and cleans up the markdown.
func cleanMarkdown(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpacePattern.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	s = multiNewlinePattern.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
