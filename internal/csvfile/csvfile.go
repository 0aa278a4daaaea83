// Package csvfile serializes rows of string fields as CSV.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/zarlcorp/core/pkg/zfilesystem"
)

// Write encodes rows to w with standard CSV quoting and flushes.
func Write(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// WriteFile creates or truncates name on fsys and writes rows to it.
// The parent directory must already exist.
func WriteFile(fsys zfilesystem.ReadWriteFileFS, name string, rows [][]string) error {
	var buf bytes.Buffer
	if err := Write(&buf, rows); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := checkParent(fsys, name); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := fsys.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// checkParent fails unless the directory holding name already exists.
func checkParent(fsys zfilesystem.ReadWriteFileFS, name string) error {
	dir := path.Dir(name)
	if dir == "." {
		return nil
	}

	return fsys.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return fmt.Errorf("parent %s: %w", p, errNotDir)
		}
		return fs.SkipAll
	})
}

var errNotDir = errors.New("not a directory")

// ReadFile reads name from fsys and decodes every record.
func ReadFile(fsys zfilesystem.ReadWriteFileFS, name string) ([][]string, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return rows, nil
}
