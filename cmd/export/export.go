// Package export implements the command converting statements to files.
package export

import (
	"context"
	"errors"

	"fjacquet/tdstatement/cmd/common"
	"fjacquet/tdstatement/cmd/root"
	"fjacquet/tdstatement/internal/container"
	exp "fjacquet/tdstatement/internal/export"
	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/models"

	"github.com/spf13/cobra"
)

// Flags holds the export command options.
type Flags struct {
	Inputs []string
	Output string
	Format string
}

var flags Flags

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Convert statements to CSV, XLSX, YAML or JSON",
	Long: `Parse one or more statements and write them to a single file. The format
is taken from --format, or from the output file extension.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Require(root.GetContainer())
		if err != nil {
			return err
		}
		f := flags
		f.Inputs = append(append([]string(nil), f.Inputs...), args...)
		return Run(cmd.Context(), c, f)
	},
}

func init() {
	Cmd.Flags().StringSliceVarP(&flags.Inputs, "input", "i", nil, "input statement (repeatable, globs allowed)")
	Cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output file")
	Cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "output format (csv, xlsx, yaml, json)")
	_ = Cmd.MarkFlagRequired("output")
}

// Run parses the inputs and writes every document that parsed to the output
// file. Nothing is written when all inputs fail.
func Run(ctx context.Context, c *container.Container, f Flags) error {
	logger := c.GetLogger()

	if f.Output == "" {
		return errors.New("an output file is required")
	}

	format, err := resolveFormat(f)
	if err != nil {
		return err
	}

	paths, err := common.ResolveInputs(f.Inputs, nil, logger)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no input statements given")
	}

	results, summary := c.GetProcessor().Collect(ctx, paths, c.GetParser().ParseFile)
	docs := make([]*models.Document, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			logger.WithError(r.Err).Error("Failed to parse file.",
				logging.Field{Key: logging.FieldFile, Value: r.Path})
			continue
		}
		docs = append(docs, r.Document)
	}

	if len(docs) > 0 {
		if err := c.GetExporter().WriteFile(f.Output, format, docs...); err != nil {
			return err
		}
	}

	return common.FailureError(summary)
}

func resolveFormat(f Flags) (exp.Format, error) {
	if f.Format != "" {
		return exp.ParseFormat(f.Format)
	}
	return exp.FormatFromPath(f.Output)
}
