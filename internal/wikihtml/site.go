package wikihtml

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

// mermaidScriptURL is the browser-side diagram renderer, included only
// when a page actually carries a diagram.
const mermaidScriptURL = "https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"

// sitePage is one rendered section handed to the layout template.
type sitePage struct {
	ID    string
	Title string
	Body  template.HTML
}

// siteData is the layout template input.
type siteData struct {
	RepoID      string
	Pages       []sitePage
	MermaidURL  string
	NeedMermaid bool
}

// BuildSite renders every page and assembles the single-file wiki:
// a sidebar listing the sections and one article per section.
func BuildSite(repoID string, pages []domain.WikiPage) (string, error) {
	r := NewRenderer()

	data := siteData{RepoID: repoID, MermaidURL: mermaidScriptURL}
	for _, page := range pages {
		body, hasMermaid, err := r.Render(page.Markdown)
		if err != nil {
			return "", fmt.Errorf("render section %s: %w", page.Section.ID, err)
		}
		data.NeedMermaid = data.NeedMermaid || hasMermaid
		data.Pages = append(data.Pages, sitePage{
			ID:    page.Section.ID,
			Title: page.Section.Title,
			Body:  template.HTML(body),
		})
	}

	var buf bytes.Buffer
	if err := siteTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute site template: %w", err)
	}
	return buf.String(), nil
}

// WriteSite builds the wiki and writes it to path.
func WriteSite(path, repoID string, pages []domain.WikiPage) error {
	site, err := BuildSite(repoID, pages)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(site), 0644)
}

var siteTemplate = template.Must(template.New("site").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.RepoID}} - OrionWiki</title>
<style>
:root { color-scheme: dark; }
body { margin: 0; display: flex; min-height: 100vh; background: #0d1117; color: #c9d1d9;
  font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; line-height: 1.6; }
nav { width: 260px; flex-shrink: 0; padding: 1.5rem 1rem; border-right: 1px solid #21262d;
  position: sticky; top: 0; height: 100vh; overflow-y: auto; box-sizing: border-box; }
nav h1 { font-size: 1rem; color: #e6edf3; word-break: break-all; }
nav a { display: block; padding: 0.3rem 0.5rem; color: #8b949e; text-decoration: none;
  border-radius: 6px; font-size: 0.9rem; }
nav a:hover { color: #e6edf3; background: #161b22; }
main { flex: 1; max-width: 900px; padding: 2rem 3rem; box-sizing: border-box; }
article { margin-bottom: 4rem; border-bottom: 1px solid #21262d; padding-bottom: 2rem; }
h1, h2, h3 { color: #e6edf3; }
a { color: #58a6ff; }
pre { background: #161b22; padding: 1rem; border-radius: 8px; overflow-x: auto; }
code { background: #161b22; padding: 0.15rem 0.35rem; border-radius: 4px; font-size: 0.9em; }
pre code { padding: 0; background: none; }
table { border-collapse: collapse; }
th, td { border: 1px solid #30363d; padding: 0.4rem 0.8rem; }
blockquote { border-left: 3px solid #30363d; margin-left: 0; padding-left: 1rem; color: #8b949e; }
.mermaid { background: #161b22; border-radius: 8px; padding: 1rem; }
</style>
</head>
<body>
<nav>
<h1>{{.RepoID}}</h1>
{{range .Pages}}<a href="#{{.ID}}">{{.Title}}</a>
{{end}}</nav>
<main>
{{range .Pages}}<article id="{{.ID}}">
{{.Body}}
</article>
{{end}}</main>
{{if .NeedMermaid}}<script src="{{.MermaidURL}}"></script>
<script>mermaid.initialize({ startOnLoad: true, theme: "dark" });</script>
{{end}}</body>
</html>
`))
