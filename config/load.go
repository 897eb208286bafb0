package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// LoadManifest reads a declaration from a YAML or JSON file without
// validating it.
func LoadManifest(filename string) (*SiteManifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return ParseManifest(data)
}

func ParseManifest(data []byte) (*SiteManifest, error) {
	var manifest SiteManifest
	err := yaml.UnmarshalStrict(data, &manifest)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing site config")
	}

	return &manifest, nil
}

// Load reads and validates the site configuration in filename. Validation
// failures are returned as *ValidationError.
func Load(filename string) (*Config, error) {
	manifest, err := LoadManifest(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading %s", filename)
	}

	return Build(manifest)
}
