package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZacxDev/docnav/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testConfig(t *testing.T) *config.Config {
	cfg, err := config.Build(&config.SiteManifest{
		Title:       "Pluto Documentation",
		Description: "Documentation for Fairwinds' Pluto",
		ThemeConfig: config.ThemeConfig{Sidebar: []config.NavItem{
			{Title: "Pluto", Path: strPtr("/")},
			{Title: "Installation", Path: strPtr("/installation")},
			{Title: "Installation source", Path: strPtr("/installation.md")},
			{Title: "FAQ", Path: strPtr("/faq.html")},
			{Title: "Contributing", Children: []config.NavItem{
				{Title: "Guide", Path: strPtr("contributing/guide")},
				{Title: "Home", Path: strPtr("/")},
			}},
		}},
	})
	require.NoError(t, err)
	return cfg
}

func TestGenerateSitemapContent(t *testing.T) {
	lastMod := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	out, err := GenerateSitemapContent("https://pluto.docs.fairwinds.com/", testConfig(t), lastMod)
	require.NoError(t, err)

	var sitemap Sitemap
	require.NoError(t, xml.Unmarshal([]byte(out), &sitemap))
	assert.Contains(t, out, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)

	var locs []string
	for _, u := range sitemap.Urls {
		locs = append(locs, u.Loc)
		assert.Equal(t, "2024-03-01", u.LastMod)
	}
	assert.Equal(t, []string{
		"https://pluto.docs.fairwinds.com/",
		"https://pluto.docs.fairwinds.com/installation.html",
		"https://pluto.docs.fairwinds.com/faq.html",
		"https://pluto.docs.fairwinds.com/contributing/guide.html",
	}, locs)
}

func TestGenerateSitemapContentNoOrigin(t *testing.T) {
	_, err := GenerateSitemapContent("", testConfig(t), time.Now())
	assert.Error(t, err)
}

func TestGenerateSitemaps(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "public")

	path, err := GenerateSitemaps(outDir, "https://pluto.docs.fairwinds.com", testConfig(t), time.Now())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "sitemap.xml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), xml.Header)
	assert.Contains(t, string(data), "<loc>https://pluto.docs.fairwinds.com/installation.html</loc>")
}
