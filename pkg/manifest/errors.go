package manifest

import "fmt"

// MissingVersionError signals a manifest without a package version.
type MissingVersionError struct {
	Path string
}

func (e *MissingVersionError) Error() string {
	return fmt.Sprintf("no package version in manifest %q", e.Path)
}
