package io

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nbourre/lanparty/pkg/errors"
	"github.com/nbourre/lanparty/pkg/netgraph"
)

// EdgeSeparator splits the two endpoints of an edge line.
const EdgeSeparator = "-"

// ReadEdges decodes an edge list from r into a graph.
//
// Each non-blank line must have the form "A-B", where A and B are node
// identifiers accepted by [errors.ValidateNodeID]. Surrounding whitespace is
// trimmed. Lines naming the same edge twice, in either direction, are
// harmless. A self-loop line ("A-A") is accepted and ignored.
//
// ReadEdges returns an [errors.ErrCodeInvalidEdge] error carrying the 1-based
// line number (see [errors.LineOf]) for a malformed line. Lines longer than
// bufio.MaxScanTokenSize are malformed too. ReadEdges does not close r.
func ReadEdges(r io.Reader) (*netgraph.Graph, error) {
	g := netgraph.New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		u, v, err := parseEdge(line)
		if err != nil {
			return nil, errors.AtLine(errors.ErrCodeInvalidEdge, lineNo, err, "%q", line)
		}
		g.AddEdge(u, v)
	}
	if err := sc.Err(); err != nil {
		if stderrors.Is(err, bufio.ErrTooLong) {
			return nil, errors.AtLine(errors.ErrCodeInvalidEdge, lineNo+1, err, "line longer than %d bytes", bufio.MaxScanTokenSize)
		}
		return nil, fmt.Errorf("scan: %w", err)
	}
	return g, nil
}

func parseEdge(line string) (netgraph.Node, netgraph.Node, error) {
	parts := strings.Split(line, EdgeSeparator)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("want exactly one %q separator, got %d", EdgeSeparator, len(parts)-1)
	}
	for _, id := range parts {
		if err := errors.ValidateNodeID(id); err != nil {
			return "", "", err
		}
	}
	return parts[0], parts[1], nil
}

// ImportEdges reads the edge list file at path and returns the graph.
//
// A missing file yields an [errors.ErrCodeFileNotFound] error; other open
// failures are wrapped with the path for context. Parse errors are the same
// as [ReadEdges].
func ImportEdges(path string) (*netgraph.Graph, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "edge list %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadEdges(f)
}
