package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates invalid options. It is the only error that aborts a run.
	ErrValidation = errors.New("validation failed")

	// ErrRootUnreadable indicates a root path could not be read at all.
	ErrRootUnreadable = errors.New("cannot read root")

	// ErrTraversalEntry indicates one entry under a root could not be read.
	ErrTraversalEntry = errors.New("cannot read entry")

	// ErrOversized indicates a name that cannot fit even after truncation.
	ErrOversized = errors.New("name cannot be made to fit")

	// ErrRenameFailed indicates the filesystem refused a rename.
	ErrRenameFailed = errors.New("rename failed")

	// ErrNoJournal indicates there is no journaled run to work on.
	ErrNoJournal = errors.New("no journaled run")

	// ErrAlreadyUndone indicates the journaled run was already rolled back.
	ErrAlreadyUndone = errors.New("run already undone")
)

func wrapErr(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}

func wrapf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
