package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEvents(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var events []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var event map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &event), line)
		events = append(events, event)
	}
	return events
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
		expectText  bool
	}{
		{name: "debug text", level: "debug", format: "text", expectLevel: logrus.DebugLevel, expectText: true},
		{name: "info json", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "warn json", level: "warn", format: "json", expectLevel: logrus.WarnLevel},
		{name: "unknown level is info", level: "verbose", format: "text", expectLevel: logrus.InfoLevel, expectText: true},
		{name: "unknown format is json", level: "error", format: "xml", expectLevel: logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, ok := NewLogrusAdapter(tt.level, tt.format).(*LogrusAdapter)
			require.True(t, ok)
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			_, isText := adapter.logger.Formatter.(*logrus.TextFormatter)
			assert.Equal(t, tt.expectText, isText)
		})
	}
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapterWithOutput("warn", "json", &buf)

	logger.Debug("row skipped")
	logger.Info("Processed file.")
	logger.Warn("Continuation line without a previous row", Field{Key: FieldLine, Value: 12})
	logger.Error("Failed to parse file.")

	events := decodeEvents(t, &buf)
	require.Len(t, events, 2)
	assert.Equal(t, "warning", events[0]["level"])
	assert.Equal(t, float64(12), events[0][FieldLine])
	assert.Equal(t, "error", events[1]["level"])
}

func TestLogrusAdapter_DerivedLoggers(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogrusAdapterWithOutput("debug", "json", &buf)

	fileLogger := base.WithField(FieldRunID, "run-1").
		WithFields(Field{Key: FieldFile, Value: "march.pdf"}, Field{Key: FieldDocumentType, Value: "account"})
	fileLogger.WithError(errors.New("no marker")).Error("Failed to parse file.")
	base.Info("Processing 1 files.", Field{Key: FieldCount, Value: 1})

	events := decodeEvents(t, &buf)
	require.Len(t, events, 2)

	assert.Equal(t, "Failed to parse file.", events[0]["msg"])
	assert.Equal(t, "run-1", events[0][FieldRunID])
	assert.Equal(t, "march.pdf", events[0][FieldFile])
	assert.Equal(t, "account", events[0][FieldDocumentType])
	assert.Equal(t, "no marker", events[0][logrus.ErrorKey])

	// the parent is unaffected by fields added to children
	_, leaked := events[1][FieldFile]
	assert.False(t, leaked)
	assert.Equal(t, float64(1), events[1][FieldCount])
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{
		{Key: FieldTable, Value: "Deposits"},
		{Key: FieldCount, Value: 2},
		{Key: FieldCount, Value: 3},
	})
	assert.Equal(t, logrus.Fields{FieldTable: "Deposits", FieldCount: 3}, fields)
	assert.Empty(t, convertFields(nil))
}

func TestFieldConstants(t *testing.T) {
	assert.Equal(t, "file_path", FieldFile)
	assert.Equal(t, "count", FieldCount)
	assert.Equal(t, "counts", FieldCounts)
	assert.Equal(t, "table", FieldTable)
	assert.Equal(t, "line_number", FieldLine)
	assert.Equal(t, "document_type", FieldDocumentType)
	assert.Equal(t, "run_id", FieldRunID)
	assert.Equal(t, "duration_ms", FieldDuration)
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
}
