package ranger

import (
	"fmt"
	"os"

	"github.com/xy-planning-network/microapp/logger"
	"golang.org/x/time/rate"
)

// envVarOrLogLevel gets the environment variable from the provided key,
// creates a logger.LogLevel from the retrieved value,
// or returns the provided default logger.LogLevel
// if the value is an unknown logger.LogLevel.
func envVarOrLogLevel(key string, def logger.LogLevel) logger.LogLevel {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	ll := logger.NewLogLevel(val)
	if ll == logger.LogLevelUnk {
		return def
	}

	return ll
}

// envVarOrRate gets the environment variable from the provided key
// and parses it as a number of requests per second.
// Zero, negative and unparseable values return rate.Inf, meaning no limit.
func envVarOrRate(key string) rate.Limit {
	val := os.Getenv(key)
	if val == "" {
		return rate.Inf
	}

	var l float64
	if _, err := fmt.Sscan(val, &l); err != nil || l <= 0 {
		return rate.Inf
	}

	return rate.Limit(l)
}
