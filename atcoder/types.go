package atcoder

import (
	"atcoder_judger/common/constants/verdict"
)

// Problem is the host orchestrator's view of a problem. ID is the remote
// task screen name, "{contest}_{task}" (e.g. "agc030_a").
type Problem struct {
	ID string `json:"id"`
}

// Solution references a solution owned by the host orchestrator. File is an
// opaque file reference which only the host-provided Resolver understands.
type Solution struct {
	File     any    `json:"file"`
	Language string `json:"language"`
}

// ResolvedFile is what the host's Resolver turns a file reference into.
type ResolvedFile struct {
	Path string `json:"path"`
}

// Resolver resolves a solution's file reference to a readable path.
type Resolver func(file any) (*ResolvedFile, error)

// SolutionResult is delivered to the host once per poll tick until the
// verdict is terminal. It is never mutated after construction.
type SolutionResult struct {
	Status  verdict.Verdict   `json:"status"`
	Score   int               `json:"score"`
	Details map[string]string `json:"details"`
}

// UpdateFunc is the host's callback. It belongs to the caller of Handle; the
// tracker only invokes it.
type UpdateFunc func(result *SolutionResult)
