package datastruct

import "go.llib.dev/frameless/pkg/errorkit"

const (
	ErrOutOfRange       errorkit.Error = "index out of range"
	ErrCursorOutOfRange errorkit.Error = "cursor dereferenced outside of its range"
)
