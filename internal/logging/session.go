package logging

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

// GenerateRunID creates a unique identifier for one process run.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
// Example: 20251217_205106_a7b3
func GenerateRunID() string {
	now := time.Now()
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return now.Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortRunID extracts the short ID (last 4 hex chars) from a full run ID.
func ShortRunID(runID string) string {
	if len(runID) < 4 {
		return runID
	}
	return runID[len(runID)-4:]
}

// RunLogFilename generates the log filename for a run ID.
// Example: "20251217_205106_a7b3" -> "dumbterm_20251217_205106_a7b3.log"
func RunLogFilename(runID string) string {
	return "dumbterm_" + runID + ".log"
}

// ParseRunLogFilename extracts the run ID from a log filename.
func ParseRunLogFilename(filename string) (runID string, ok bool) {
	const prefix = "dumbterm_"
	const suffix = ".log"

	if !strings.HasPrefix(filename, prefix) || !strings.HasSuffix(filename, suffix) {
		return "", false
	}
	runID = filename[len(prefix) : len(filename)-len(suffix)]
	return runID, runID != ""
}
