package quantgo

import (
	"sync"
	"sync/atomic"

	"github.com/hupe1980/quantgo/internal/registry"
)

// logger is consulted when the derived-unit table is built. It can be
// swapped with SetLogger before the first formatting call; the table
// itself is built once and never changes afterwards.
var logger atomic.Pointer[Logger]

func init() {
	logger.Store(NoopLogger())
}

// SetLogger installs the logger used for table-construction
// diagnostics (duplicate derived-unit keys, entry counts). Call it
// before the first use of the library; the table is built lazily,
// exactly once.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	logger.Store(l)
}

// tables returns the process-wide derived-unit table. Safe for
// concurrent use; read-only after construction.
var tables = sync.OnceValue(func() *registry.Table {
	return registry.Build(logger.Load().Logger)
})
