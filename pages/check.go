package pages

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZacxDev/docnav/config"
	"github.com/pkg/errors"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a problem found with one sidebar leaf.
type Issue struct {
	Severity Severity
	Title    string
	Route    string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s): %s", i.Severity, i.Title, i.Route, i.Message)
}

type Report struct {
	Pages  []*Page
	Issues []Issue
}

// Errors counts issues with error severity.
func (r *Report) Errors() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Check resolves every sidebar leaf in cfg against contentDir. Missing pages
// are errors; title mismatches and routes used twice are warnings.
func Check(contentDir string, cfg *config.Config) (*Report, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", contentDir)
	}

	report := &Report{}
	seen := make(map[string]string)
	for _, leaf := range cfg.Leaves() {
		route := leaf.Route()

		if prev, ok := seen[route]; ok {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityWarning,
				Title:    leaf.Title,
				Route:    route,
				Message:  fmt.Sprintf("route is also used by %q", prev),
			})
		} else {
			seen[route] = leaf.Title
		}

		page, err := Load(contentDir, route)
		if errors.Is(err, os.ErrNotExist) {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityError,
				Title:    leaf.Title,
				Route:    route,
				Message:  "page not found",
			})
			continue
		}
		if err != nil {
			return nil, err
		}

		report.Pages = append(report.Pages, page)
		if page.Title != "" && !strings.EqualFold(page.Title, leaf.Title) {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityWarning,
				Title:    leaf.Title,
				Route:    route,
				Message:  fmt.Sprintf("page title is %q", page.Title),
			})
		}
	}

	return report, nil
}
