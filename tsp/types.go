package tsp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/salesman/mst"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrTimeLimit indicates the exact search ran out of its time budget.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrNoHamiltonianCycle indicates the exact search finished without
	// finding any closed tour.
	ErrNoHamiltonianCycle = errors.New("tsp: no hamiltonian cycle")

	// ErrDisconnected indicates the spanning tree cannot reach every vertex.
	// It is the mst package's sentinel, so either name matches.
	ErrDisconnected = mst.ErrDisconnected

	// ErrNoTourFound indicates the swap search never produced a feasible tour.
	ErrNoTourFound = errors.New("tsp: no feasible tour found")

	// ErrMissingEdge indicates a path hop with no edge (matrix entry 0).
	ErrMissingEdge = errors.New("tsp: path uses a missing edge")

	// ErrInvalidPath indicates a path that is not a permutation of [0, n-1]
	// or does not start at vertex 0.
	ErrInvalidPath = errors.New("tsp: invalid path")

	// ErrBadOptions indicates an Options value outside its documented domain.
	ErrBadOptions = errors.New("tsp: invalid options")

	// ErrUnknownAlgorithm indicates an Algorithm outside the known set.
	ErrUnknownAlgorithm = errors.New("tsp: unknown algorithm")
)

// Infeasible is the Cost reported when no certified tour is returned.
const Infeasible = -1

// Algorithm selects a solver.
type Algorithm int

const (
	// AlgoBranchAndBound is the exact depth-first search.
	AlgoBranchAndBound Algorithm = iota

	// AlgoDoubleTree is the MST preorder 2-approximation.
	AlgoDoubleTree

	// AlgoNearestNeighbourSwap is the greedy tour plus random swap search.
	AlgoNearestNeighbourSwap
)

var algorithmNames = [...]string{
	AlgoBranchAndBound:       "branch-and-bound",
	AlgoDoubleTree:           "double-tree",
	AlgoNearestNeighbourSwap: "nearest-neighbour-swap",
}

// aliases accepted by ParseAlgorithm in addition to the canonical names.
var algorithmAliases = map[string]Algorithm{
	"bb":           AlgoBranchAndBound,
	"exact":        AlgoBranchAndBound,
	"backtracking": AlgoBranchAndBound,
	"dt":           AlgoDoubleTree,
	"approx":       AlgoDoubleTree,
	"triangular":   AlgoDoubleTree,
	"nn":           AlgoNearestNeighbourSwap,
	"heuristic":    AlgoNearestNeighbourSwap,
	"swap":         AlgoNearestNeighbourSwap,
}

// Algorithms lists every solver in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBranchAndBound, AlgoDoubleTree, AlgoNearestNeighbourSwap}
}

// String returns the canonical name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps a canonical name or alias (case-insensitive) to an
// Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range algorithmNames {
		if key == name {
			return Algorithm(i), nil
		}
	}
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Result is the outcome of a solver run.
type Result struct {
	// Algorithm names the solver that produced the result.
	Algorithm Algorithm

	// Cost is the tour cost (the 2·MST bound for DoubleTree), or Infeasible.
	Cost float64

	// Path is the open tour, Path[0] == 0; nil when Cost is Infeasible.
	Path []int

	// LowerBound is a proven lower bound on the optimum when the solver has
	// one: the optimum itself for BranchAndBound, w(MST) for DoubleTree.
	// Zero otherwise.
	LowerBound float64

	// Seed is the effective RNG seed (swap search only).
	Seed int64

	// Elapsed is the run time measured with Options.Clock.
	Elapsed time.Duration
}

// Feasible reports whether the result carries a tour.
func (r Result) Feasible() bool { return r.Cost != Infeasible }

// Tour is a nearest-neighbour construction.
type Tour struct {
	// Path lists the visited ids in order, starting at 0. When the walk
	// dead-ends it is shorter than n.
	Path []int

	// Cost sums the hops taken plus the closing edge when one exists.
	Cost float64

	// Complete reports whether every vertex was placed and the closing edge
	// back to 0 exists.
	Complete bool
}
