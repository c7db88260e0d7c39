package ui

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/irisrec/irisctl/internal/logging"
)

// Target receives the markup of a loaded component (header, footer, ...).
type Target interface {
	SetContent(markup string)
}

// ScriptRunner executes the inline scripts found inside a loaded component.
// Inserting markup does not execute embedded scripts, so they are extracted
// and handed over explicitly.
type ScriptRunner interface {
	Run(script string)
}

// ComponentLoader fetches HTML partials and injects them into a target.
type ComponentLoader struct {
	http *http.Client
	log  logging.Logger
}

func NewComponentLoader(timeout time.Duration, log logging.Logger) *ComponentLoader {
	return &ComponentLoader{
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Load fetches the partial at url, injects its markup into target and runs
// every inline script found within. Failures are logged and swallowed — a
// missing header never takes the application down.
func (c *ComponentLoader) Load(ctx context.Context, url string, target Target, runner ScriptRunner) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Error(ctx, "component request failed", "url", url, "error", err)
		return
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "component fetch failed", "url", url, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error(ctx, "component fetch failed", "url", url, "status", resp.StatusCode)
		return
	}

	markup, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "component read failed", "url", url, "error", err)
		return
	}

	target.SetContent(string(markup))

	if runner != nil {
		for _, script := range InlineScripts(string(markup)) {
			runner.Run(script)
		}
	}
}

// InlineScripts returns the text content of every <script> element in
// markup, in document order. Scripts with a src attribute are skipped — only
// inline bodies need re-execution.
func InlineScripts(markup string) []string {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var scripts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			if !hasAttr(n, "src") {
				var sb strings.Builder
				for child := n.FirstChild; child != nil; child = child.NextSibling {
					if child.Type == html.TextNode {
						sb.WriteString(child.Data)
					}
				}
				if body := strings.TrimSpace(sb.String()); body != "" {
					scripts = append(scripts, body)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return scripts
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}
