package generator

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrStale is returned by Check when the file on disk differs from the artifact.
var ErrStale = errors.New("generated file is out of date")

// WriteFile persists a.Source at a.OutputPath. The content goes to a temporary
// file in the same directory first so a failed write never leaves a partial
// artifact behind.
func WriteFile(a *Artifact) error {
	dir := filepath.Dir(a.OutputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(a.OutputPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(a.Source); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, a.OutputPath); err != nil {
		return fmt.Errorf("rename to %s: %w", a.OutputPath, err)
	}
	return nil
}

// Check compares a.Source with the file at a.OutputPath.
func Check(a *Artifact) error {
	existing, err := os.ReadFile(a.OutputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w (missing)", a.OutputPath, ErrStale)
		}
		return fmt.Errorf("read %s: %w", a.OutputPath, err)
	}
	if !bytes.Equal(existing, []byte(a.Source)) {
		return fmt.Errorf("%s: %w", a.OutputPath, ErrStale)
	}
	return nil
}
