package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "Version exits cleanly",
			args:         []string{"sift", "version"},
			expectedExit: 0,
		},
		{
			// An empty workspace has no compiled classes to analyze.
			name:         "Select fails without compiled classes",
			args:         []string{"sift", "select"},
			expectedExit: 1,
		},
		{
			name:         "Unknown command",
			args:         []string{"sift", "frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			originalWd, _ := os.Getwd()
			if err := os.Chdir(tmpDir); err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
