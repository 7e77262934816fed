// Package scanner expands directory arguments into the statement files they
// contain.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fjacquet/tdstatement/internal/fileutils"
	"fjacquet/tdstatement/internal/logging"
)

// StatementScanner walks directories looking for supported statement files.
type StatementScanner struct {
	logger logging.Logger
}

// NewStatementScanner creates a new instance of StatementScanner.
func NewStatementScanner(logger logging.Logger) *StatementScanner {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "json")
	}
	return &StatementScanner{
		logger: logger.WithField("component", "StatementScanner"),
	}
}

// ScanPaths replaces every directory in paths by the supported files found
// below it, recursively. Other entries, including glob patterns and paths
// that do not exist, are returned unchanged.
func (s *StatementScanner) ScanPaths(paths []string) ([]string, error) {
	var out []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			out = append(out, p)
			continue
		}

		files, err := s.scanDirectory(p)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("Scanned directory",
			logging.Field{Key: "path", Value: p},
			logging.Field{Key: logging.FieldCount, Value: len(files)})
		out = append(out, files...)
	}

	return out, nil
}

// scanDirectory returns the supported files below dirPath in lexical order.
func (s *StatementScanner) scanDirectory(dirPath string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.WithError(err).Warn("Error walking path", logging.Field{Key: "path", Value: path})
			return nil // keep walking
		}
		if d.IsDir() {
			return nil
		}
		if !fileutils.IsSupported(path) {
			s.logger.Debug("Skipping unsupported file", logging.Field{Key: logging.FieldFile, Value: path})
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dirPath, err)
	}

	return files, nil
}
