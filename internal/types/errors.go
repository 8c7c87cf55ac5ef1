package types

import "fmt"

// PathNotFoundError reports that the requested root path does not exist.
type PathNotFoundError struct {
	Path string
}

func (notFoundError *PathNotFoundError) Error() string {
	return fmt.Sprintf("path does not exist: %s", notFoundError.Path)
}

// MissingDependencyError reports that a rendering backend could not be initialized.
// The text renderer never produces it; image and document rendering surface it
// at render time so the text path stays usable in minimal environments.
type MissingDependencyError struct {
	Backend string
	Reason  string
}

func (dependencyError *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s backend unavailable: %s", dependencyError.Backend, dependencyError.Reason)
}
