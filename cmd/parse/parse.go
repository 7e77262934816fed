// Package parse implements the command that turns statements into JSON lines.
package parse

import (
	"context"
	"fmt"
	"io"

	"fjacquet/tdstatement/cmd/common"
	"fjacquet/tdstatement/cmd/root"
	"fjacquet/tdstatement/internal/batch"
	"fjacquet/tdstatement/internal/container"
	"fjacquet/tdstatement/internal/export"
	"fjacquet/tdstatement/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse [paths...]",
	Short: "Parse statements into JSON lines",
	Long: `Parse TD Bank statements (PDF, or pre-extracted text with one page per
form feed) and write one JSON document per line to stdout. Arguments may be
glob patterns. Without arguments, paths are read from stdin, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Require(root.GetContainer())
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c, args, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// Run parses every input and writes the documents to out in input order.
// It returns an error when at least one document failed.
func Run(ctx context.Context, c *container.Container, args []string, stdin io.Reader, out io.Writer) error {
	logger := c.GetLogger()

	paths, err := common.ResolveInputs(args, stdin, logger)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		logger.Warn("Please pass paths to PDF statements.")
		return nil
	}

	logger.Info(fmt.Sprintf("Processing %d files.", len(paths)), logging.Field{Key: logging.FieldCount, Value: len(paths)})

	exporter := c.GetExporter()
	var writeErr error
	summary := c.GetProcessor().Run(ctx, paths, c.GetParser().ParseFile, func(r batch.Result) {
		fileLogger := logger.WithField(logging.FieldFile, r.Path)
		if r.Err != nil {
			fileLogger.WithError(r.Err).Error("Failed to parse file.")
			return
		}
		if writeErr == nil {
			writeErr = exporter.Write(out, export.FormatJSON, r.Document)
		}
		fileLogger.Info("Processed file.",
			logging.Field{Key: logging.FieldDocumentType, Value: r.Document.DocumentType},
			logging.Field{Key: logging.FieldCounts, Value: r.Document.Counts()},
			logging.Field{Key: logging.FieldDuration, Value: r.Duration.Milliseconds()})
	})
	if writeErr != nil {
		return writeErr
	}

	return common.FailureError(summary)
}
