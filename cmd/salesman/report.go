package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/salesman/graph"
	"github.com/katalvlaran/salesman/runner"
	"github.com/katalvlaran/salesman/tsp"
)

const rule = "==================="

func writeHeader(w io.Writer, name string, g *graph.Graph) {
	fmt.Fprintf(w, "\n%s: %s vertices, %s links\n", name,
		humanize.Comma(int64(g.NumVertices())),
		humanize.Comma(int64(g.NumEdges()/2)))
}

// formatPath renders a tour as "0 -> 3 -> 1 -> 0".
func formatPath(path []int) string {
	if len(path) == 0 {
		return "[]"
	}
	var b strings.Builder
	for _, v := range path {
		b.WriteString(strconv.Itoa(v))
		b.WriteString(" -> ")
	}
	b.WriteString(strconv.Itoa(path[0]))

	return b.String()
}

// formatCost groups thousands and keeps at most three decimals.
func formatCost(c float64) string {
	return humanize.CommafWithDigits(c, 3)
}

func writeResult(w io.Writer, g *graph.Graph, res tsp.Result, err error) {
	fmt.Fprintf(w, "\n\t%s\n\n", rule)
	fmt.Fprintf(w, "\tAlgorithm      : %s\n", res.Algorithm)
	if !res.Feasible() {
		fmt.Fprintf(w, "\tResult         : not feasible for the given data")
		if err != nil {
			fmt.Fprintf(w, " (%v)", err)
		}
		fmt.Fprintln(w)
	} else {
		switch res.Algorithm {
		case tsp.AlgoDoubleTree:
			fmt.Fprintf(w, "\tUpper bound    : %s (2 x MST)\n", formatCost(res.Cost))
			fmt.Fprintf(w, "\tMST weight     : %s\n", formatCost(res.LowerBound))
			fmt.Fprintf(w, "\tPreorder tour  : [%s]\n", formatPath(res.Path))
			if dm, derr := g.DistanceMatrix(); derr == nil {
				if c, cerr := tsp.PathCost(dm, res.Path); cerr == nil {
					fmt.Fprintf(w, "\tTour cost      : %s\n", formatCost(c))
				}
			}
		case tsp.AlgoNearestNeighbourSwap:
			fmt.Fprintf(w, "\tMinimum found  : %s\n", formatCost(res.Cost))
			fmt.Fprintf(w, "\tPath           : [%s]\n", formatPath(res.Path))
			fmt.Fprintf(w, "\tSeed           : %d\n", res.Seed)
		default:
			fmt.Fprintf(w, "\tMinimum distance : %s\n", formatCost(res.Cost))
			fmt.Fprintf(w, "\tOptimal path     : [%s]\n", formatPath(res.Path))
		}
	}
	fmt.Fprintf(w, "\n\t\tExecution time: %s\n", res.Elapsed)
	fmt.Fprintf(w, "\n\t%s\n", rule)
}

func writeComparison(w io.Writer, out []runner.Outcome) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\nALGORITHM\tCOST\tLOWER BOUND\tELAPSED\tNOTE")
	for _, o := range out {
		cost := "-"
		if o.Result.Feasible() {
			cost = formatCost(o.Result.Cost)
		}
		lb := "-"
		if o.Result.LowerBound > 0 {
			lb = formatCost(o.Result.LowerBound)
		}
		note := ""
		switch {
		case o.Err != nil:
			note = o.Err.Error()
		case o.Algorithm == tsp.AlgoDoubleTree:
			note = "cost is 2 x MST"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", o.Algorithm, cost, lb, o.Result.Elapsed, note)
	}
	tw.Flush()
}
