// Package manifest resolves the version of the benchmarked project
// from its Cargo manifest.
package manifest

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the manifest location relative to the project root.
const DefaultPath = "air/Cargo.toml"

type cargoManifest struct {
	Package struct {
		Version string `toml:"version"`
	} `toml:"package"`
}

// Version reads the [package] version out of the manifest at path.
func Version(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var m cargoManifest
	if err := toml.Unmarshal(raw, &m); err != nil {
		return "", err
	}

	if m.Package.Version == "" {
		return "", &MissingVersionError{Path: path}
	}

	return m.Package.Version, nil
}
