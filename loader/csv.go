package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/salesman/graph"
)

// records walks the data records of r (header excluded), calling fn with the
// trimmed fields and the 1-based line the record starts on.
func records(r io.Reader, fn func(fields []string, line int) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		if header {
			header = false
			continue
		}
		line, _ := cr.FieldPos(0)
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if err := fn(rec, line); err != nil {
			return err
		}
	}
}

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedRecord, line, fmt.Sprintf(format, args...))
}

func parseID(s string, line int) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, malformed(line, "id %q", s)
	}

	return id, nil
}

func parseFloat(s, what string, line int) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, malformed(line, "%s %q", what, s)
	}

	return f, nil
}

// readEdges adds the edges listed in r to g. With create set, unknown
// endpoints are added as vertices (named from columns 4 and 5 when present);
// otherwise they are an error.
func readEdges(r io.Reader, g *graph.Graph, create bool) error {
	return records(r, func(f []string, line int) error {
		if len(f) < 3 {
			return malformed(line, "want at least 3 fields, got %d", len(f))
		}
		u, err := parseID(f[0], line)
		if err != nil {
			return err
		}
		v, err := parseID(f[1], line)
		if err != nil {
			return err
		}
		w, err := parseFloat(f[2], "distance", line)
		if err != nil {
			return err
		}
		if create {
			var nu, nv string
			if len(f) >= 5 {
				nu, nv = f[3], f[4]
			}
			if err := ensureVertex(g, u, nu); err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			if err := ensureVertex(g, v, nv); err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
		}
		if _, err := g.AddBidirectionalEdge(u, v, w); err != nil {
			return fmt.Errorf("line %d: edge %d-%d: %w", line, u, v, err)
		}

		return nil
	})
}

// ensureVertex adds id unless it already exists.
func ensureVertex(g *graph.Graph, id int, name string) error {
	if g.HasVertex(id) {
		return nil
	}
	var opts []graph.VertexOption
	if name != "" {
		opts = append(opts, graph.WithName(name))
	}

	return g.AddVertex(id, opts...)
}

// ReadEdges adds the edges listed in r to g, creating endpoints on first
// sight. Records are origin,destination,distance with two optional name
// columns.
//
// Errors: ErrMalformedRecord, or the graph error (wrapped with the line) for
// negative distances and ids.
func ReadEdges(r io.Reader, g *graph.Graph) error {
	return readEdges(r, g, true)
}

// ReadNodes adds the vertices listed in r (id,longitude,latitude) to g.
//
// Errors: ErrMalformedRecord, graph.ErrDuplicateVertex, graph.ErrNegativeID.
func ReadNodes(r io.Reader, g *graph.Graph) error {
	return records(r, func(f []string, line int) error {
		if len(f) < 3 {
			return malformed(line, "want 3 fields, got %d", len(f))
		}
		id, err := parseID(f[0], line)
		if err != nil {
			return err
		}
		lon, err := parseFloat(f[1], "longitude", line)
		if err != nil {
			return err
		}
		lat, err := parseFloat(f[2], "latitude", line)
		if err != nil {
			return err
		}
		if err := g.AddVertex(id, graph.WithCoordinates(lon, lat)); err != nil {
			return fmt.Errorf("line %d: node %d: %w", line, id, err)
		}

		return nil
	})
}
