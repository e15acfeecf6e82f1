// Package loader reads TSP instances from CSV files into a graph.Graph.
//
// Two layouts are recognised:
//
//	edges only   origin,destination,distance[,nameOrigin,nameDestination]
//	             Vertices are created on first sight; names are attached
//	             when the two optional columns are present.
//
//	nodes+edges  nodes.csv  id,longitude,latitude
//	             edges.csv  origin,destination,distance
//	             Every endpoint must have been declared in nodes.csv.
//
// The first record of every file is a header and is skipped. Blank lines are
// ignored. Parse failures wrap ErrMalformedRecord and carry the file line.
//
// A data root holds one entry per dataset: a single .csv file (edges only)
// or a directory containing edges.csv and, optionally, nodes.csv. Discover
// lists them sorted by name, skipping dot files.
package loader
