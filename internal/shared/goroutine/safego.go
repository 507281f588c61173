// Package goroutine launches background work that must never take the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/texnokross/texnokross/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine and logs, rather than propagates, any panic.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background task panicked",
					"task", name,
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
