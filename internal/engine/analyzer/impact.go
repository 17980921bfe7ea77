package analyzer

import "go.trai.ch/sift/internal/core/domain"

// ComputeAffected converts closures and the previously-known non-affected set
// into the set of tests that must run this cycle.
//
// Under ZLC the result is nil: that format's non-affected computation,
// performed upstream, already reasons about StarNode, and adjusting again
// here would double-apply the correction.
//
// Under CLZ the non-affected decision did not account for StarNode, so every
// test whose closure reaches it is conservatively re-added, even when the
// upstream step listed it as non-affected.
func ComputeAffected(
	allTests []domain.ClassName,
	nonAffected map[string]struct{},
	closures map[domain.ClassName]domain.ClassSet,
	format domain.DependencyFormat,
) map[string]struct{} {
	if format == domain.FormatZLC {
		return nil
	}

	affected := make(map[string]struct{})
	for _, t := range allTests {
		if _, skip := nonAffected[t.String()]; !skip {
			affected[t.String()] = struct{}{}
			continue
		}
		if closures[t].Contains(domain.StarNode()) {
			affected[t.String()] = struct{}{}
		}
	}
	return affected
}
