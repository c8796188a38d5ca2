package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
)

// Markdown renders the view as a markdown document.
func Markdown(v View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", v.Title)
	if v.WebsiteURL != "" {
		fmt.Fprintf(&b, "Comprehensive brand analysis for %s\n\n", v.WebsiteURL)
	}
	for _, c := range v.Cards {
		fmt.Fprintf(&b, "## %s\n\n", c.Title)
		for _, s := range c.Sections {
			if s.Heading != "" {
				fmt.Fprintf(&b, "### %s\n\n", s.Heading)
			}
			if s.Text != "" {
				b.WriteString(s.Text)
				b.WriteString("\n\n")
			}
			for _, it := range s.Items {
				fmt.Fprintf(&b, "- %s\n", oneLine(it))
			}
			if len(s.Items) > 0 {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// list items must not break out of their bullet
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// HTML renders the markdown export as a standalone page. Raw HTML coming
// from the report is dropped by goldmark.
func HTML(v View) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(v)), &body); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&out, "<title>%s</title>\n</head>\n<body>\n", html.EscapeString(v.Title))
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}
