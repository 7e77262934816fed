package logging

import (
	"testing"
)

func TestConstants(t *testing.T) {
	if FieldFile == "" {
		t.Error("FieldFile constant should not be empty")
	}
	if FieldTable == "" {
		t.Error("FieldTable constant should not be empty")
	}
	if FieldCounts == "" {
		t.Error("FieldCounts constant should not be empty")
	}
	if FieldRunID == "" {
		t.Error("FieldRunID constant should not be empty")
	}
	if FieldLine == FieldCount {
		t.Error("FieldLine and FieldCount must differ")
	}
}
