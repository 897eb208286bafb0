package javascript

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

// Check parses the generated config module with esbuild and returns its
// code, minified when minify is set. Syntax errors are returned together.
func Check(src []byte, minify bool) ([]byte, error) {
	result := api.Transform(string(src), api.TransformOptions{
		Loader:            api.LoaderJS,
		Sourcefile:        "config.js",
		MinifyWhitespace:  minify,
		MinifyIdentifiers: minify,
		MinifySyntax:      minify,
		Engines: []api.Engine{
			{Name: api.EngineNode, Version: "14"},
		},
	})

	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, m := range result.Errors {
			msgs = append(msgs, formatMessage(m))
		}
		return nil, errors.New(strings.Join(msgs, "; "))
	}

	if !minify {
		return src, nil
	}
	return result.Code, nil
}

func formatMessage(m api.Message) string {
	if m.Location == nil {
		return m.Text
	}
	return fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text)
}
