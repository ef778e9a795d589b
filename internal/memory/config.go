package memory

import (
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"strconv"

	"pluto-gallery/internal/logging"
)

// DefaultMemoryRatio is the share of the container limit given to the Go
// heap. The remainder covers libvips and decoder buffers outside the heap.
const DefaultMemoryRatio = 0.75

// Limit sources.
const (
	SourceGoMemLimit  = "GOMEMLIMIT"
	SourceMemoryLimit = "MEMORY_LIMIT"
	SourceNone        = "none"
)

// Limit describes the heap limit derived from the environment.
type Limit struct {
	Source         string
	ContainerBytes int64
	GoBytes        int64
	Ratio          float64
}

// limitFromEnv computes the heap limit without applying it. An explicit
// GOMEMLIMIT is left to the runtime and reported as such.
func limitFromEnv(getenv func(string) string) (Limit, error) {
	if getenv("GOMEMLIMIT") != "" {
		return Limit{Source: SourceGoMemLimit}, nil
	}

	raw := getenv("MEMORY_LIMIT")
	if raw == "" {
		return Limit{Source: SourceNone}, nil
	}
	container, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || container <= 0 {
		return Limit{Source: SourceNone}, fmt.Errorf("invalid MEMORY_LIMIT %q", raw)
	}

	limit := Limit{
		Source:         SourceMemoryLimit,
		ContainerBytes: container,
		Ratio:          DefaultMemoryRatio,
	}

	var ratioErr error
	if rs := getenv("MEMORY_RATIO"); rs != "" {
		r, err := strconv.ParseFloat(rs, 64)
		switch {
		case err != nil:
			ratioErr = fmt.Errorf("invalid MEMORY_RATIO %q: %w", rs, err)
		case r <= 0 || r > 1:
			ratioErr = fmt.Errorf("MEMORY_RATIO %q out of range (0.0-1.0]", rs)
		default:
			limit.Ratio = r
		}
	}

	limit.GoBytes = int64(float64(container) * limit.Ratio)
	return limit, ratioErr
}

// ConfigureFromEnv sets the Go memory limit from MEMORY_LIMIT (bytes, usually
// from the Kubernetes Downward API) scaled by MEMORY_RATIO. Call it early in
// main, before images are decoded.
func ConfigureFromEnv() Limit {
	limit, err := limitFromEnv(os.Getenv)
	if err != nil {
		logging.Warn("%v, using ratio %.2f", err, limit.Ratio)
	}

	switch limit.Source {
	case SourceGoMemLimit:
		if current := debug.SetMemoryLimit(-1); current > 0 && current < math.MaxInt64 {
			limit.GoBytes = current
		}
		logging.Info("GOMEMLIMIT set via environment: %s", formatBytes(limit.GoBytes))
	case SourceMemoryLimit:
		debug.SetMemoryLimit(limit.GoBytes)
		logging.Info("Configured GOMEMLIMIT: %s (%.0f%% of %s container limit)",
			formatBytes(limit.GoBytes), limit.Ratio*100, formatBytes(limit.ContainerBytes))
	default:
		logging.Debug("MEMORY_LIMIT not set, GOMEMLIMIT left unconfigured")
	}

	return limit
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return strconv.FormatInt(b, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return strconv.FormatFloat(float64(b)/float64(div), 'f', 1, 64) + " " + string("KMGTPE"[exp]) + "iB"
}
