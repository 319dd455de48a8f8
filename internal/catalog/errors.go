package catalog

import (
	"fmt"
	"strings"
)

// ValidationError reports structural problems found while building a
// catalog. It is fatal to construction: no partial catalog is returned.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// NotFoundError indicates a lesson ID absent from the catalog.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lesson not found: %q", e.ID)
}
