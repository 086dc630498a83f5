// Package profiling optionally exposes pprof on a localhost side port.
package profiling

import (
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/Brommah/hvc/internal/logger"
)

const defaultPprofPort = "6060"

// StartPprofServer starts a pprof server on a separate port when
// ENABLE_PROFILING=true. It binds to localhost only so profiles are never
// reachable from outside the host.
func StartPprofServer(log logger.Logger) {
	if os.Getenv("ENABLE_PROFILING") != "true" {
		return
	}

	pprofPort := os.Getenv("PPROF_PORT")
	if pprofPort == "" {
		pprofPort = defaultPprofPort
	}
	addr := "localhost:" + pprofPort

	go func() {
		log.Info("Starting pprof server", logger.String("address", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Warn("pprof server error", logger.Error(err))
		}
	}()
}
