package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/salesman/graph"
)

// Open resolves path to a Dataset: a .csv file is an edges-only dataset, a
// directory must hold edges.csv and may hold nodes.csv.
func Open(path string) (Dataset, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("loader: %w", err)
	}
	name := filepath.Base(path)
	if !fi.IsDir() {
		if !strings.EqualFold(filepath.Ext(path), ".csv") {
			return Dataset{}, fmt.Errorf("%w: %s", ErrNoDataset, path)
		}

		return Dataset{Name: name, Edges: path}, nil
	}

	d := Dataset{Name: name, Edges: filepath.Join(path, EdgesFile)}
	if !isFile(d.Edges) {
		return Dataset{}, fmt.Errorf("%w: %s has no %s", ErrNoDataset, path, EdgesFile)
	}
	if nodes := filepath.Join(path, NodesFile); isFile(nodes) {
		d.Nodes = nodes
	}

	return d, nil
}

func isFile(path string) bool {
	fi, err := os.Stat(path)

	return err == nil && fi.Mode().IsRegular()
}

// Discover lists the datasets directly under root, sorted by name. Dot files
// and entries that are not datasets are skipped.
func Discover(root string) ([]Dataset, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	var out []Dataset
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		d, err := Open(filepath.Join(root, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, d)
	}

	return out, nil
}

// Load reads the dataset into a new graph and builds its distance matrix.
func (d Dataset) Load() (*graph.Graph, error) {
	g := graph.New()
	if d.HasNodes() {
		if err := readFile(d.Nodes, func(f *os.File) error { return ReadNodes(f, g) }); err != nil {
			return nil, err
		}
		if err := readFile(d.Edges, func(f *os.File) error { return readEdges(f, g, false) }); err != nil {
			return nil, err
		}
	} else if err := readFile(d.Edges, func(f *os.File) error { return ReadEdges(f, g) }); err != nil {
		return nil, err
	}
	if _, err := g.BuildDistanceMatrix(); err != nil {
		return nil, fmt.Errorf("loader: %s: %w", d.Name, err)
	}

	return g, nil
}

// Load opens path as a dataset and reads it.
func Load(path string) (*graph.Graph, error) {
	d, err := Open(path)
	if err != nil {
		return nil, err
	}

	return d.Load()
}

func readFile(path string, fn func(*os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("loader: %s: %w", filepath.Base(path), err)
	}

	return nil
}
