package config

import (
	"fmt"
	"path"
	"strings"
	"unicode"
)

const maxSidebarDepth = 2

// ValidationError reports the first rule a declaration breaks.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Build validates a declaration and converts it into a Config. The
// declaration is not modified.
func Build(m *SiteManifest) (*Config, error) {
	if m == nil {
		return nil, invalid("", "configuration is missing")
	}
	if m.Title == "" {
		return nil, invalid("title", "must not be empty")
	}
	if m.Description == "" {
		return nil, invalid("description", "must not be empty")
	}

	var sidebar []NavEntry
	if m.ThemeConfig.Sidebar != nil {
		sidebar = make([]NavEntry, 0, len(m.ThemeConfig.Sidebar))
	}
	seen := make(map[string]int)
	for i, item := range m.ThemeConfig.Sidebar {
		field := fmt.Sprintf("themeConfig.sidebar[%d]", i)

		entry, err := buildEntry(field, item)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[item.Title]; ok {
			return nil, invalid(field+".title", "%q is already used by themeConfig.sidebar[%d]", item.Title, prev)
		}
		seen[item.Title] = i

		sidebar = append(sidebar, entry)
	}

	return &Config{
		Metadata: Metadata{
			Title:       m.Title,
			Description: m.Description,
		},
		DocsRepo: m.ThemeConfig.DocsRepo,
		Sidebar:  sidebar,
	}, nil
}

func buildEntry(field string, item NavItem) (NavEntry, error) {
	if item.Title == "" {
		return nil, invalid(field+".title", "must not be empty")
	}

	isGroup := item.Children != nil
	switch {
	case isGroup && item.Path != nil:
		return nil, invalid(field, "entry %q declares both path and children", item.Title)
	case !isGroup && item.Path == nil:
		return nil, invalid(field, "entry %q declares neither path nor children", item.Title)
	case isGroup:
		return buildGroup(field, item)
	default:
		return buildLeaf(field, item)
	}
}

func buildGroup(field string, item NavItem) (Group, error) {
	if item.SidebarDepth != nil {
		return Group{}, invalid(field+".sidebarDepth", "only allowed on entries with a path")
	}
	if len(item.Children) == 0 {
		return Group{}, invalid(field+".children", "group %q has no children", item.Title)
	}

	group := Group{Title: item.Title, Children: make([]Leaf, 0, len(item.Children))}
	seen := make(map[string]int)
	for i, child := range item.Children {
		childField := fmt.Sprintf("%s.children[%d]", field, i)
		if child.Children != nil {
			return Group{}, invalid(childField, "groups cannot be nested")
		}
		if child.Title == "" {
			return Group{}, invalid(childField+".title", "must not be empty")
		}
		if child.Path == nil {
			return Group{}, invalid(childField, "entry %q has no path", child.Title)
		}
		if prev, ok := seen[child.Title]; ok {
			return Group{}, invalid(childField+".title", "%q is already used by %s.children[%d]", child.Title, field, prev)
		}
		seen[child.Title] = i

		leaf, err := buildLeaf(childField, child)
		if err != nil {
			return Group{}, err
		}
		group.Children = append(group.Children, leaf)
	}

	return group, nil
}

func buildLeaf(field string, item NavItem) (Leaf, error) {
	if err := validatePath(field+".path", *item.Path); err != nil {
		return Leaf{}, err
	}
	if d := item.SidebarDepth; d != nil && (*d < 0 || *d > maxSidebarDepth) {
		return Leaf{}, invalid(field+".sidebarDepth", "must be between 0 and %d, got %d", maxSidebarDepth, *d)
	}

	return Leaf{
		Title:        item.Title,
		Path:         *item.Path,
		SidebarDepth: copyInt(item.SidebarDepth),
	}, nil
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func validatePath(field, p string) error {
	if p == "" {
		return invalid(field, "must not be empty")
	}
	if strings.IndexFunc(p, unicode.IsSpace) >= 0 {
		return invalid(field, "%q contains whitespace", p)
	}
	if strings.Contains(p, "://") {
		return invalid(field, "%q is not a content path", p)
	}
	if strings.HasPrefix(p, "/") {
		return nil
	}

	// Relative paths resolve against the content root and must stay inside it.
	if cleaned := path.Clean(p); cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return invalid(field, "%q points outside the content root", p)
	}
	return nil
}
