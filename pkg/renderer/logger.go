package renderer

import (
	"fmt"

	"spheretrace/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewLogger creates a new default logger
func NewLogger() core.Logger {
	return &DefaultLogger{}
}
