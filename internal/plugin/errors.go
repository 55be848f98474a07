package plugin

import "errors"

var (
	ErrNoFieldSelected  = errors.New("no field selected for analysis")
	ErrUnknownField     = errors.New("selected field not present in incoming schema")
	ErrNotConfigured    = errors.New("plugin is not configured")
	ErrInvalidState     = errors.New("invalid lifecycle state")
	ErrDownstreamClosed = errors.New("downstream consumer rejected record")
)
