package resource

import (
	"fmt"
	"strings"
)

// MissingResourceError reports a name absent from a scanned collection.
type MissingResourceError struct {
	Collection Collection // empty when the lookup was not tied to a collection
	Dir        string
	Key        string
	Available  []string // sorted names that were present
}

func (e *MissingResourceError) Error() string {
	what := "resource"
	if e.Collection != "" {
		what = strings.TrimSuffix(string(e.Collection), "s")
	}
	if e.Dir == "" {
		return fmt.Sprintf("%s %q not found", what, e.Key)
	}
	return fmt.Sprintf("%s %q not found in %s", what, e.Key, e.Dir)
}

// Suggestion returns a hint listing the names that do exist.
func (e *MissingResourceError) Suggestion() string {
	if len(e.Available) == 0 {
		return "The directory holds no resource files; check the install root"
	}
	return "Available: " + strings.Join(e.Available, ", ")
}

// DuplicateResourceError reports two files in one directory that map to
// the same short name.
type DuplicateResourceError struct {
	Name   string
	First  string
	Second string
}

func (e *DuplicateResourceError) Error() string {
	return fmt.Sprintf("resource name %q is ambiguous: %s and %s", e.Name, e.First, e.Second)
}

// Suggestion returns a hint for resolving the collision.
func (e *DuplicateResourceError) Suggestion() string {
	return "Remove or rename one of the files so each name prefix is unique"
}
