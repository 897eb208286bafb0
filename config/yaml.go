package config

// config/yaml.go

type SiteManifest struct {
	Title       string      `yaml:"title" json:"title"`
	Description string      `yaml:"description" json:"description"`
	ThemeConfig ThemeConfig `yaml:"themeConfig" json:"themeConfig"`
}

type ThemeConfig struct {
	DocsRepo string    `yaml:"docsRepo,omitempty" json:"docsRepo,omitempty"`
	Sidebar  []NavItem `yaml:"sidebar" json:"sidebar,omitempty"`
}

// NavItem is a single sidebar entry as declared. Path and Children are kept
// as pointer/slice so a missing key can be told apart from an empty one.
type NavItem struct {
	Title        string    `yaml:"title" json:"title"`
	Path         *string   `yaml:"path,omitempty" json:"path,omitempty"`
	SidebarDepth *int      `yaml:"sidebarDepth,omitempty" json:"sidebarDepth,omitempty"`
	Children     []NavItem `yaml:"children,omitempty" json:"children,omitempty"`
}
