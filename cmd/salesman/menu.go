package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/salesman/loader"
	"github.com/katalvlaran/salesman/tsp"
)

var errQuit = errors.New("quit")

// menu is the interactive dataset and algorithm picker.
type menu struct {
	in  *bufio.Scanner
	out io.Writer
	app app
}

func newMenu(in io.Reader, out io.Writer, a app) *menu {
	a.out = out

	return &menu{in: bufio.NewScanner(in), out: out, app: a}
}

// run loops until the user exits or input ends.
func (m *menu) run(ctx context.Context) error {
	for {
		ds, err := loader.Discover(m.app.cfg.DataDir)
		if err != nil {
			return err
		}
		if len(ds) == 0 {
			return fmt.Errorf("no datasets under %s", m.app.cfg.DataDir)
		}
		d, err := m.pickDataset(ds)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		algo, compare, err := m.pickAlgorithm()
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := m.app.solveDataset(ctx, d, algo, compare); err != nil {
			fmt.Fprintf(m.out, "\n\t%v\n", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (m *menu) pickDataset(ds []loader.Dataset) (loader.Dataset, error) {
	for {
		fmt.Fprintln(m.out, "\n\t\t\tSalesman: choose a dataset")
		fmt.Fprintln(m.out)
		for i, d := range ds {
			kind := "edges"
			if d.HasNodes() {
				kind = "nodes+edges"
			}
			fmt.Fprintf(m.out, "\t%d) %s (%s)\n", i+1, d.Name, kind)
		}
		fmt.Fprintln(m.out, "\n\t0) Exit")

		k, err := m.readChoice(len(ds))
		if err != nil {
			return loader.Dataset{}, err
		}
		if k >= 1 {
			return ds[k-1], nil
		}
	}
}

// pickAlgorithm returns the chosen solver, or compare set for "all".
func (m *menu) pickAlgorithm() (tsp.Algorithm, bool, error) {
	algos := tsp.Algorithms()
	for {
		fmt.Fprintln(m.out, "\n\t\t\tSalesman: choose an algorithm")
		fmt.Fprintln(m.out)
		for i, a := range algos {
			fmt.Fprintf(m.out, "\t%d) %s\n", i+1, a)
		}
		fmt.Fprintf(m.out, "\t%d) compare all\n", len(algos)+1)
		fmt.Fprintln(m.out, "\n\t0) Exit")

		k, err := m.readChoice(len(algos) + 1)
		if err != nil {
			return 0, false, err
		}
		switch {
		case k > len(algos):
			return 0, true, nil
		case k >= 1:
			return algos[k-1], false, nil
		}
	}
}

// readChoice reads one number in [0, hi]. 0 and end of input quit; an
// out-of-range or non-numeric entry reports -1 so the caller asks again.
func (m *menu) readChoice(hi int) (int, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return 0, err
		}

		return 0, errQuit
	}
	k, err := strconv.Atoi(strings.TrimSpace(m.in.Text()))
	if err != nil || k < 0 || k > hi {
		fmt.Fprintln(m.out, "\n\tWrong input!")

		return -1, nil
	}
	if k == 0 {
		return 0, errQuit
	}

	return k, nil
}
