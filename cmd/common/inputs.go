// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/tdstatement/internal/batch"
	"fjacquet/tdstatement/internal/container"
	"fjacquet/tdstatement/internal/fileutils"
	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/scanner"
)

// ErrNotInitialized is returned when a command runs without a container.
var ErrNotInitialized = errors.New("container not initialized")

// ResolveInputs expands the command arguments into statement files.
// Directories are searched recursively and glob patterns are expanded.
// Without arguments, newline separated paths are read from stdin.
func ResolveInputs(args []string, stdin io.Reader, logger logging.Logger) ([]string, error) {
	if len(args) == 0 && stdin != nil {
		var err error
		args, err = fileutils.ReadPathList(stdin)
		if err != nil {
			return nil, err
		}
	}

	paths, err := scanner.NewStatementScanner(logger).ScanPaths(args)
	if err != nil {
		return nil, err
	}
	return fileutils.ExpandInputs(paths)
}

// Require returns c or ErrNotInitialized.
func Require(c *container.Container) (*container.Container, error) {
	if c == nil {
		return nil, ErrNotInitialized
	}
	return c, nil
}

// FailureError reports how many documents of a run failed. Each failure has
// already been logged.
func FailureError(s batch.Summary) error {
	if s.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d documents failed", s.Failed, s.Processed+s.Failed)
}
