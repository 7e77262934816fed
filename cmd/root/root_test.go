package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/tdstatement/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "tdstatement", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "TD Bank statements")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.True(t, root.Cmd.SilenceUsage)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()
	root.Init()

	flags := root.Cmd.PersistentFlags()
	for _, name := range []string{"config", "log-level", "log-format", "engine", "pdftotext", "workers", "delimiter"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}
	assert.Equal(t, "w", flags.Lookup("workers").Shorthand)
	assert.Equal(t, "auto", flags.Lookup("engine").DefValue)
}

func TestRootCommand_Initialize(t *testing.T) {
	root.Init()
	for _, key := range []string{
		"TDSTATEMENT_LOG_LEVEL", "TDSTATEMENT_LOG_FORMAT", "TDSTATEMENT_EXTRACTION_ENGINE",
		"TDSTATEMENT_PROCESSING_WORKERS", "TDSTATEMENT_EXPORT_CSV_DELIMITER",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("processing:\n  workers: 3\n"), 0600))

	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(original) })

	var ran bool
	probe := &cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			return nil
		},
	}
	root.Cmd.AddCommand(probe)
	t.Cleanup(func() { root.Cmd.RemoveCommand(probe) })

	root.Cmd.SetArgs([]string{"probe", "--config", cfgPath, "--engine", "native"})
	require.NoError(t, root.Cmd.Execute())
	assert.True(t, ran)

	c := root.GetContainer()
	require.NotNil(t, c)
	assert.Equal(t, 3, c.GetConfig().Processing.Workers)
	assert.Equal(t, "native", c.GetConfig().Extraction.Engine)
	assert.NotNil(t, root.GetLogger())
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	root.Init()

	probe := &cobra.Command{Use: "probe-invalid", RunE: func(cmd *cobra.Command, args []string) error { return nil }}
	root.Cmd.AddCommand(probe)
	t.Cleanup(func() { root.Cmd.RemoveCommand(probe) })

	root.Cmd.SetArgs([]string{"probe-invalid", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	err := root.Cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
