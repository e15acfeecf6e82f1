package loader

import (
	"errors"
	"path/filepath"
)

// Sentinel errors.
var (
	// ErrMalformedRecord indicates a CSV record with too few fields or a
	// field that does not parse.
	ErrMalformedRecord = errors.New("loader: malformed record")

	// ErrNoDataset indicates a path that is neither a .csv file nor a
	// directory holding edges.csv.
	ErrNoDataset = errors.New("loader: not a dataset")
)

// Standard file names inside a dataset directory.
const (
	EdgesFile = "edges.csv"
	NodesFile = "nodes.csv"
)

// Dataset locates the files of one instance.
type Dataset struct {
	// Name is the file or directory base name.
	Name string

	// Edges is the edge list path.
	Edges string

	// Nodes is the node list path, empty for edges-only datasets.
	Nodes string
}

// HasNodes reports whether the dataset ships a node file.
func (d Dataset) HasNodes() bool { return d.Nodes != "" }

// Dir returns the directory holding the edge file.
func (d Dataset) Dir() string { return filepath.Dir(d.Edges) }
