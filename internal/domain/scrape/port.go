package scrape

import "context"

// Page is a scraped website: its readable content as markdown plus the
// metadata found in the document head.
type Page struct {
	URL      string            `json:"url"`
	Markdown string            `json:"markdown"`
	Metadata map[string]string `json:"metadata"`
}

// Scraper port
type Scraper interface {
	Scrape(ctx context.Context, url string) (*Page, error)
}
