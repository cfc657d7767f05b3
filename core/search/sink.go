package search

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FailureSink records the raw detail of a failed upsert for postmortem
// inspection. The client writes to the sink before signaling failure, so the
// full response body survives even though the caller only sees an Outcome.
type FailureSink interface {
	// Record persists the failure detail and returns a locator for it.
	Record(kind ResourceKind, name string, detail []byte) (string, error)
}

// FileSink writes one artifact file per failure under a local directory.
type FileSink struct {
	// Dir is the directory artifacts are written to. Created on first use.
	Dir string
}

// NewFileSink creates a FileSink rooted at dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Record writes the detail to a uniquely named file and returns its path.
func (s *FileSink) Record(kind ResourceKind, name string, detail []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	filename := fmt.Sprintf("%s-%s-%s.log", kind, name, uuid.NewString())
	path := filepath.Join(s.Dir, filename)

	if err := os.WriteFile(path, detail, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return path, nil
}
