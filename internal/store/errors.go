package store

import "fmt"

// NotFoundError reports an identifier with no file in the directory.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no note associated with identifier %q", e.ID)
}

// NotInStoreError reports an operation that needs current-note context being
// invoked on a file outside the note directory.
type NotInStoreError struct {
	Path string
	Dir  string
}

func (e *NotInStoreError) Error() string {
	return fmt.Sprintf("%s is not inside the note directory %s", e.Path, e.Dir)
}

// NoResultsError reports a full-text search that produced zero matches.
// The search term is carried so it can be echoed back to the user.
type NoResultsError struct {
	Term string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no search results for %q", e.Term)
}
