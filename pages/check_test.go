package pages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZacxDev/docnav/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func docsDir(t *testing.T) string {
	dir := t.TempDir()
	writePage(t, dir, "README.md", "# Pluto\n\nPluto finds deprecated apiVersions.\n")
	writePage(t, dir, "installation.md", "---\ntitle: Installation\n---\n# Installing Pluto\n")
	writePage(t, dir, "advanced/README.md", "Some intro\n\n# Advanced *Usage*\n\n## Flags\n")
	writePage(t, dir, "contributing/guide.md", "## Guide\n")
	writePage(t, dir, "faq-windows.md", "---\r\ntitle: FAQ\r\n---\r\n# Frequently Asked Questions\r\n")
	writePage(t, dir, "quickstart.md", "---\ntitle: Quickstart\n---")
	return dir
}

func TestResolve(t *testing.T) {
	dir := docsDir(t)

	tests := []struct {
		route string
		want  string
	}{
		{route: "/", want: "README.md"},
		{route: "/installation", want: "installation.md"},
		{route: "/installation.html", want: "installation.md"},
		{route: "/installation.md", want: "installation.md"},
		{route: "/advanced", want: "advanced/README.md"},
		{route: "/advanced/", want: "advanced/README.md"},
		{route: "/contributing/guide", want: "contributing/guide.md"},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			got, err := Resolve(dir, tt.route)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, filepath.FromSlash(tt.want)), got)
		})
	}
}

func TestResolveMissing(t *testing.T) {
	_, err := Resolve(docsDir(t), "/faq")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTitle(t *testing.T) {
	dir := docsDir(t)

	tests := []struct {
		route string
		title string
	}{
		{route: "/", title: "Pluto"},
		{route: "/installation", title: "Installation"},
		{route: "/advanced", title: "Advanced Usage"},
		{route: "/contributing/guide", title: ""},
		{route: "/faq-windows", title: "FAQ"},
		{route: "/quickstart", title: "Quickstart"},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			page, err := Load(dir, tt.route)
			require.NoError(t, err)
			assert.Equal(t, tt.title, page.Title)
		})
	}
}

func TestCheck(t *testing.T) {
	dir := docsDir(t)

	cfg, err := config.Build(&config.SiteManifest{
		Title:       "Pluto Documentation",
		Description: "Documentation for Fairwinds' Pluto",
		ThemeConfig: config.ThemeConfig{Sidebar: []config.NavItem{
			{Title: "Pluto", Path: strPtr("/")},
			{Title: "Installation", Path: strPtr("/installation")},
			{Title: "Install again", Path: strPtr("/installation.html")},
			{Title: "Flags", Path: strPtr("/advanced")},
			{Title: "FAQ", Path: strPtr("/faq")},
			{Title: "Contributing", Children: []config.NavItem{
				{Title: "Guide", Path: strPtr("contributing/guide")},
				{Title: "Start here", Path: strPtr("/")},
			}},
		}},
	})
	require.NoError(t, err)

	report, err := Check(dir, cfg)
	require.NoError(t, err)

	assert.Len(t, report.Pages, 6)
	assert.Equal(t, 1, report.Errors())
	assert.Equal(t, []Issue{
		{Severity: SeverityWarning, Title: "Install again", Route: "/installation", Message: `route is also used by "Installation"`},
		{Severity: SeverityWarning, Title: "Install again", Route: "/installation", Message: `page title is "Installation"`},
		{Severity: SeverityWarning, Title: "Flags", Route: "/advanced", Message: `page title is "Advanced Usage"`},
		{Severity: SeverityError, Title: "FAQ", Route: "/faq", Message: "page not found"},
		{Severity: SeverityWarning, Title: "Start here", Route: "/", Message: `route is also used by "Pluto"`},
		{Severity: SeverityWarning, Title: "Start here", Route: "/", Message: `page title is "Pluto"`},
	}, report.Issues)
}

func TestCheckMissingContentDir(t *testing.T) {
	cfg, err := config.Build(&config.SiteManifest{Title: "t", Description: "d"})
	require.NoError(t, err)

	_, err = Check(filepath.Join(t.TempDir(), "docs"), cfg)
	assert.Error(t, err)
}

func strPtr(s string) *string { return &s }
