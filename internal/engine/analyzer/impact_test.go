package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/engine/analyzer"
)

func TestComputeAffected_ZLC(t *testing.T) {
	tests := classNames("com.example.ATest")
	nonAffected := map[string]struct{}{"com.example.ATest": {}}

	affected := analyzer.ComputeAffected(tests, nonAffected, nil, domain.FormatZLC)
	require.Nil(t, affected)
}

func TestComputeAffected_CLZ(t *testing.T) {
	// A is plainly affected. B was excluded upstream and has a clean
	// closure, so it stays excluded. C was excluded upstream too, but its
	// closure reaches StarNode, so it is conservatively re-added.
	tests := classNames("com.example.ATest", "com.example.BTest", "com.example.CTest")
	nonAffected := map[string]struct{}{
		"com.example.BTest": {},
		"com.example.CTest": {},
	}
	closures := map[domain.ClassName]domain.ClassSet{
		domain.NewClassName("com.example.ATest"): setOf("com.example.A"),
		domain.NewClassName("com.example.BTest"): setOf("com.example.B"),
		domain.NewClassName("com.example.CTest"): setOf("com.example.C", "*"),
	}

	affected := analyzer.ComputeAffected(tests, nonAffected, closures, domain.FormatCLZ)
	require.Equal(t, map[string]struct{}{
		"com.example.ATest": {},
		"com.example.CTest": {},
	}, affected)
}

func TestComputeAffected_CLZ_EmptyNonAffected(t *testing.T) {
	tests := classNames("com.example.ATest", "com.example.BTest")

	affected := analyzer.ComputeAffected(tests, nil, nil, domain.FormatCLZ)
	require.Equal(t, map[string]struct{}{
		"com.example.ATest": {},
		"com.example.BTest": {},
	}, affected)
}

func TestComputeAffected_CLZ_NoTests(t *testing.T) {
	affected := analyzer.ComputeAffected(nil, nil, nil, domain.FormatCLZ)
	require.Empty(t, affected)
	require.NotNil(t, affected)
}
