// Package pkg provides the core libraries for Causalgo structure discovery.
//
// # Overview
//
// Causalgo learns Bayesian-network structures from categorical data by
// score-based local search. The pkg directory is organized around the
// stages of that process:
//
//  1. [data] - Categorical datasets and sufficient statistics
//  2. [graph] - Directed graphs over labeled vertex sets
//  3. [prior] - Forbidden/required edge constraints
//  4. [score] - Scoring criteria (log-likelihood, BIC, AIC)
//  5. [discovery] - Greedy hill-climbing optimizer
//  6. [render] - DOT/SVG/PDF/PNG output
//
// # Architecture
//
// The typical data flow:
//
//	CSV dataset
//	     ↓
//	[data] package (state encoding + count matrices)
//	     ↓
//	[score] package (decomposable criteria over counts)
//	     ↓
//	[discovery] package (hill climbing under [prior] constraints)
//	     ↓
//	[graph] result → [render] SVG/PDF/PNG output
//
// # Quick Start
//
//	d, err := data.FromCSV(f)
//	k, err := prior.NewForbiddenRequired(d.Labels(), nil, nil)
//	g, err := discovery.NewHillClimbing(score.NewBIC(d)).Call(d, k)
//
// [data]: github.com/msartori/causalgo/pkg/data
// [graph]: github.com/msartori/causalgo/pkg/graph
// [prior]: github.com/msartori/causalgo/pkg/prior
// [score]: github.com/msartori/causalgo/pkg/score
// [discovery]: github.com/msartori/causalgo/pkg/discovery
// [render]: github.com/msartori/causalgo/pkg/render
package pkg
