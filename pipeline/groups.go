// SPDX-License-Identifier: MIT
// Package: zhmistake/pipeline
//
// groups.go — group-weighted construction.

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/maker"
)

// Group is a named set of registry identifiers sharing one weight. Each
// member gets Weight/len(Makers), so a group's total share does not depend
// on how many strategies it holds.
type Group struct {
	Name   string
	Weight float64
	Makers []string
}

// FromGroups builds a weighted Pipeline from groups. Makers are created from
// the registry with deps, in group order then member order. Any WithWeights
// option is overridden by the group weights.
func FromGroups(groups []Group, deps maker.Deps, opts ...Option) (*Pipeline, error) {
	const method = "pipeline.FromGroups"
	var (
		makers  []maker.Maker
		weights []float64
	)
	for _, g := range groups {
		if len(g.Makers) == 0 {
			return nil, fmt.Errorf("%s: group %q is empty: %w", method, g.Name, corpus.ErrPrecondition)
		}
		ms, err := maker.NewAll(g.Makers, deps)
		if err != nil {
			return nil, fmt.Errorf("%s: group %q: %w", method, g.Name, err)
		}
		share := g.Weight / float64(len(ms))
		for _, m := range ms {
			makers = append(makers, m)
			weights = append(weights, share)
		}
	}
	return New(makers, append(opts, WithWeights(weights...))...)
}
