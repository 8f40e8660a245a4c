package cli

import (
	"errors"

	"github.com/zetkit/zet/internal/codec"
	"github.com/zetkit/zet/internal/config"
	"github.com/zetkit/zet/internal/note"
	"github.com/zetkit/zet/internal/store"
)

// openStore opens the resolved store, applying its zet.yaml configuration.
func openStore() (*store.Store, error) {
	return openStoreAt(getStorePath())
}

// openStoreAt opens a store at an explicit directory.
func openStoreAt(dir string) (*store.Store, error) {
	sc, err := config.LoadStoreConfig(dir)
	if err != nil {
		return nil, err
	}
	identCfg, err := sc.IdentConfig()
	if err != nil {
		return nil, err
	}

	return store.Open(store.Config{
		Dir:             dir,
		Extension:       sc.Extension,
		Ident:           identCfg,
		TitleStyle:      sc.TitleStyle,
		RenameScope:     sc.RenameScope,
		DefaultBacklink: sc.DefaultBacklink,
	})
}

// storeErrorCode maps domain errors to stable CLI error codes.
func storeErrorCode(err error) string {
	var (
		notFound  *store.NotFoundError
		malformed *codec.MalformedFilenameError
		outside   *store.NotInStoreError
		noResults *store.NoResultsError
	)
	switch {
	case errors.As(err, &notFound):
		return ErrNoteNotFound
	case errors.As(err, &malformed):
		return ErrMalformedFilename
	case errors.As(err, &outside):
		return ErrNotInStore
	case errors.As(err, &noResults):
		return ErrNoSearchResults
	case errors.Is(err, note.ErrNoLinkAtPosition):
		return ErrNoLinkAtPosition
	}
	return ErrInternal
}

// storeErrorSuggestion pairs a hint with the common resolution failures.
func storeErrorSuggestion(err error) string {
	switch storeErrorCode(err) {
	case ErrNoteNotFound:
		return "The link may be dangling; run 'zet list' to see existing notes"
	case ErrMalformedFilename:
		return "Run 'zet doctor' to find files without a parseable identifier"
	case ErrNotInStore:
		return "This command needs a file inside the note directory"
	}
	return ""
}

// handleStoreError maps a domain error onto the structured error output.
func handleStoreError(err error) error {
	return handleError(storeErrorCode(err), err, storeErrorSuggestion(err))
}
