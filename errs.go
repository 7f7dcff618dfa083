package flattree

import "errors"

var (
	errInternal = errors.New("internal error: tree invariant broken")

	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidDepth     = errors.New("invalid depth")
	ErrUnresolvedPrefix = errors.New("unresolved prefix")
	ErrInvalidInsertion = errors.New("invalid insertion")
	ErrNodeNotFound     = errors.New("node not found")
	ErrCycleDetected    = errors.New("cycle detected")
)
