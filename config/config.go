package config

import (
	"path"
	"strings"
)

// Metadata is the site-level information shown in the page head.
type Metadata struct {
	Title       string
	Description string
}

// Config is a validated site configuration. Build is the only way to get one.
type Config struct {
	Metadata
	DocsRepo string
	Sidebar  []NavEntry
}

// NavEntry is a sidebar entry: either a Leaf or a Group.
type NavEntry interface {
	EntryTitle() string
	navEntry()
}

// Leaf links a sidebar title to a content path.
type Leaf struct {
	Title        string
	Path         string
	SidebarDepth *int
}

// Group is a collapsible sidebar section. Its children are always leaves.
type Group struct {
	Title    string
	Children []Leaf
}

func (l Leaf) EntryTitle() string  { return l.Title }
func (g Group) EntryTitle() string { return g.Title }

func (Leaf) navEntry()  {}
func (Group) navEntry() {}

// Route returns the absolute, cleaned site route for the leaf path. The
// .md and .html suffixes are dropped so every spelling of a page maps to
// the same route; a trailing slash marks a directory index and is kept.
func (l Leaf) Route() string {
	route := path.Clean("/" + l.Path)
	route = strings.TrimSuffix(route, ".md")
	route = strings.TrimSuffix(route, ".html")
	if route != "/" && strings.HasSuffix(l.Path, "/") {
		route += "/"
	}
	return route
}

// Leaves flattens the sidebar in display order.
func (c *Config) Leaves() []Leaf {
	var leaves []Leaf
	for _, entry := range c.Sidebar {
		switch e := entry.(type) {
		case Leaf:
			leaves = append(leaves, e)
		case Group:
			leaves = append(leaves, e.Children...)
		}
	}
	return leaves
}
