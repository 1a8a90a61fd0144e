package types

import "errors"

// Standard errors returned by Library implementations.
var (
	ErrBackupFormat = errors.New("malformed backup file")
	ErrEmptyEntry   = errors.New("entry has no fields")
)
