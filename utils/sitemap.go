package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZacxDev/docnav/config"
	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// GenerateSitemaps writes sitemap.xml for the sidebar pages into outDir.
func GenerateSitemaps(outDir, origin string, cfg *config.Config, lastMod time.Time) (string, error) {
	xmlOutput, err := GenerateSitemapContent(origin, cfg, lastMod)
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(outDir, os.ModePerm)
	if err != nil {
		return "", errors.WithStack(err)
	}

	filePath := filepath.Join(outDir, "sitemap.xml")
	err = os.WriteFile(filePath, []byte(xml.Header+xmlOutput+"\n"), 0644)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return filePath, nil
}

// GenerateSitemapContent lists one URL per sidebar leaf, in sidebar order.
// Routes shared by several leaves are listed once.
func GenerateSitemapContent(origin string, cfg *config.Config, lastMod time.Time) (string, error) {
	if origin == "" {
		return "", errors.New("sitemap needs an origin")
	}
	baseURL := strings.TrimSuffix(origin, "/")

	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	seen := make(map[string]bool)
	for _, leaf := range cfg.Leaves() {
		route := pageURL(leaf.Route())
		if seen[route] {
			continue
		}
		seen[route] = true

		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     baseURL + route,
			LastMod: lastMod.Format("2006-01-02"),
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}

// pageURL maps a route from Leaf.Route to the URL the framework publishes
// it under.
func pageURL(route string) string {
	if strings.HasSuffix(route, "/") {
		return route
	}
	return route + ".html"
}
