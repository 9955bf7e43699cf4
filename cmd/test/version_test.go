package cmd_test

import (
	"testing"

	"github.com/repodocs/repodoc/version"
)

func TestVersionIsNotEmpty(t *testing.T) {
	if version.Version == "" {
		t.Error("Version should not be empty")
	}
}
