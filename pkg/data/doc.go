// Package data provides the dataset abstraction consumed by scoring
// criteria and structure learning.
//
// # Overview
//
// Scores over categorical Bayesian networks reduce to contingency-table
// counts: how often did variable X take state i while its parents took
// joint configuration j. [Categorical] stores observations as integer state
// codes in sorted label order and answers exactly those count queries via
// [Categorical.MarginalCounts] and [Categorical.ConditionalCounts].
//
// # Loading
//
// [FromCSV] reads a dataset from a CSV file whose header names the
// variables and whose cells are state names:
//
//	f, _ := os.Open("asia.csv")
//	d, err := data.FromCSV(f)
//
// Column order in the file is irrelevant: variables are indexed by sorted
// label, and state codes are assigned in sorted state name order, so the
// same file always produces the same encoding.
package data
