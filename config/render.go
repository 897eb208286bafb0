package config

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"
)

const moduleTemplate = `// Generated by docnav from the site configuration. Do not edit.
// https://vuepress.vuejs.org/config/
module.exports = <%= manifest %>;
`

// Render converts a validated Config back into the declaration shape handed
// to the documentation framework. For any manifest m that Build accepts,
// Render(Build(m)) is equal to m.
func Render(c *Config) *SiteManifest {
	var sidebar []NavItem
	if c.Sidebar != nil {
		sidebar = make([]NavItem, 0, len(c.Sidebar))
	}
	for _, entry := range c.Sidebar {
		switch e := entry.(type) {
		case Leaf:
			sidebar = append(sidebar, leafItem(e))
		case Group:
			children := make([]NavItem, 0, len(e.Children))
			for _, child := range e.Children {
				children = append(children, leafItem(child))
			}
			sidebar = append(sidebar, NavItem{Title: e.Title, Children: children})
		}
	}

	return &SiteManifest{
		Title:       c.Title,
		Description: c.Description,
		ThemeConfig: ThemeConfig{
			DocsRepo: c.DocsRepo,
			Sidebar:  sidebar,
		},
	}
}

func leafItem(l Leaf) NavItem {
	p := l.Path
	return NavItem{Title: l.Title, Path: &p, SidebarDepth: copyInt(l.SidebarDepth)}
}

// ExportJS writes m as a CommonJS config module.
func ExportJS(w io.Writer, m *SiteManifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	tmpl, err := plush.Parse(moduleTemplate)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx := plush.NewContext()
	ctx.Set("manifest", template.HTML(data))

	out, err := tmpl.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "error executing config template")
	}

	_, err = io.WriteString(w, out)
	return errors.WithStack(err)
}
