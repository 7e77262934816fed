// Package classify implements the command reporting each statement's type.
package classify

import (
	"context"
	"fmt"
	"io"

	"fjacquet/tdstatement/cmd/common"
	"fjacquet/tdstatement/cmd/root"
	"fjacquet/tdstatement/internal/batch"
	"fjacquet/tdstatement/internal/container"
	"fjacquet/tdstatement/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify [paths...]",
	Short: "Print the document type of each statement",
	Long: `Classify statements without parsing their activity. One line is printed
per file: the path, a tab and the document type.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Require(root.GetContainer())
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c, args, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// Run classifies every input in order.
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

	var summary batch.Summary
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		reg, err := c.GetParser().ClassifyFile(ctx, path)
		if err != nil {
			summary.Failed++
			logger.WithError(err).Error("Failed to classify file.",
				logging.Field{Key: logging.FieldFile, Value: path})
			continue
		}
		summary.Processed++
		if _, err := fmt.Fprintf(out, "%s\t%s\n", path, reg.Type); err != nil {
			return err
		}
	}

	return common.FailureError(summary)
}
