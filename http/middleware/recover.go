package middleware

import (
	"fmt"

	"github.com/gorilla/handlers"
	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/logger"
)

// Recover recovers a panic raised while handling a request, responds 500
// and logs the panic at the error level.
// The listener, and any other request in flight, keeps serving.
//
// If ls is nil, panics are logged with the standard library's log package.
func Recover(ls logger.Logger) Adapter {
	opts := []handlers.RecoveryOption{handlers.PrintRecoveryStack(false)}
	if ls != nil {
		opts = append(opts, handlers.RecoveryLogger(recoveryLogger{ls}))
	}

	return handlers.RecoveryHandler(opts...)
}

// recoveryLogger satisfies handlers.RecoveryHandlerLogger.
type recoveryLogger struct {
	l logger.Logger
}

func (rl recoveryLogger) Println(v ...any) {
	rl.l.Error("recovered from panic", &logger.LogContext{
		Error: fmt.Errorf("%w: %s", microapp.ErrPanic, fmt.Sprint(v...)),
	})
}
