package pages

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/pkg/errors"
)

// Page is a markdown page a sidebar leaf points at.
type Page struct {
	Route  string
	Source string
	Title  string
}

// Resolve maps a site route to its markdown file under contentDir: "/" is
// README.md, "/x" is x.md or x/README.md. A missing file returns an error
// satisfying errors.Is(err, os.ErrNotExist).
func Resolve(contentDir, route string) (string, error) {
	for _, candidate := range candidates(route) {
		source := filepath.Join(contentDir, filepath.FromSlash(candidate))
		info, err := os.Stat(source)
		if err == nil && !info.IsDir() {
			return source, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", errors.WithStack(err)
		}
	}

	return "", errors.Wrapf(os.ErrNotExist, "no page for %s", route)
}

func candidates(route string) []string {
	rel := strings.TrimPrefix(route, "/")
	rel = strings.TrimSuffix(rel, ".html")
	rel = strings.TrimSuffix(rel, ".md")

	if rel == "" || strings.HasSuffix(rel, "/") {
		return []string{rel + "README.md", rel + "index.md"}
	}
	return []string{rel + ".md", rel + "/README.md", rel + "/index.md"}
}

// Load resolves route and reads the page title.
func Load(contentDir, route string) (*Page, error) {
	source, err := Resolve(contentDir, route)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(source)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	title, err := pageTitle(content)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s", source)
	}

	return &Page{Route: route, Source: source, Title: title}, nil
}

// pageTitle prefers the frontmatter title over the first level-one heading.
func pageTitle(content []byte) (string, error) {
	var metadata map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(content), &metadata)
	if err != nil {
		return "", errors.Wrap(err, "error parsing frontmatter")
	}

	if title, ok := metadata["title"].(string); ok && title != "" {
		return title, nil
	}

	return firstHeading(body), nil
}

func firstHeading(md []byte) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := markdown.Parse(md, p)

	var title string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		heading, ok := node.(*ast.Heading)
		if !entering || !ok || heading.Level != 1 {
			return ast.GoToNext
		}
		title = strings.TrimSpace(nodeText(heading))
		return ast.Terminate
	})

	return title
}

func nodeText(node ast.Node) string {
	var buf bytes.Buffer
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if leaf := n.AsLeaf(); leaf != nil {
			buf.Write(leaf.Literal)
		}
		return ast.GoToNext
	})
	return buf.String()
}
