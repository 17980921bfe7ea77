package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DependencyFormat selects the encoding used to persist per-test dependency
// information between cycles. The two formats differ in whether StarNode
// accounting is already embedded in the encoding itself.
type DependencyFormat string

const (
	// FormatCLZ stores each root's closure as an explicit class list. The
	// non-affected computation for CLZ does not account for StarNode, so the
	// impact analyzer must conservatively re-add tests that reach it.
	FormatCLZ DependencyFormat = "CLZ"

	// FormatZLC stores edges directly. Its non-affected computation already
	// reasons about StarNode upstream, so no further adjustment happens here.
	FormatZLC DependencyFormat = "ZLC"
)

// ParseFormat converts a string into a DependencyFormat.
func ParseFormat(s string) (DependencyFormat, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(FormatCLZ):
		return FormatCLZ, nil
	case string(FormatZLC):
		return FormatZLC, nil
	default:
		return "", zerr.With(ErrUnknownFormat, "format", s)
	}
}
