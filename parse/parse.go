// Package parse turns cave scan reports into a core.Graph.
//
// Each non-blank line describes one valve:
//
//	Valve BB has flow rate=13; tunnels lead to valves CC, AA
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Parsing is two-pass: every valve is registered first, then tunnels are
// added, so a line may name neighbors that are only declared further down.
// Any line that does not match, or that names a neighbor never declared,
// rejects the whole input with ErrMalformedInput.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/volcano/core"
)

// ErrMalformedInput is returned for any line the grammar rejects.
var ErrMalformedInput = errors.New("parse: malformed input")

// linePattern is the grammar of one scan line.
const linePattern = `^Valve ([A-Z]+) has flow rate=(\d+); tunnels? leads? to valves? ([A-Z]+(?:, [A-Z]+)*)$`

// Record is one parsed scan line.
type Record struct {
	Line    int      // 1-based line number in the input
	ID      string   // valve ID
	Flow    int      // flow rate
	Tunnels []string // neighbor IDs in listed order
}

// Parser holds the compiled line grammar. Build it once with NewParser and
// pass it to whoever needs to read scans; it keeps no other state and is
// safe for concurrent use.
type Parser struct {
	line *regexp.Regexp
}

// NewParser compiles the line grammar.
func NewParser() *Parser {
	return &Parser{line: regexp.MustCompile(linePattern)}
}

// ParseLine parses a single scan line. n is the line number used in errors.
func (p *Parser) ParseLine(n int, line string) (Record, error) {
	m := p.line.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Record{}, fmt.Errorf("%w: line %d: %q", ErrMalformedInput, n, line)
	}
	flow, err := strconv.Atoi(m[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: line %d: flow rate %q: %v", ErrMalformedInput, n, m[2], err)
	}

	return Record{
		Line:    n,
		ID:      m[1],
		Flow:    flow,
		Tunnels: strings.Split(m[3], ", "),
	}, nil
}

// Records parses every non-blank line of r.
func (p *Parser) Records(r io.Reader) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := p.ParseLine(n, line)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: reading input: %w", err)
	}

	return out, nil
}

// Parse reads a full scan and builds the Graph.
//
// Errors:
//   - ErrMalformedInput for grammar violations, duplicate valves, unknown
//     neighbors or self-tunnels (the core sentinel stays in the chain).
//   - read errors from r.
func (p *Parser) Parse(r io.Reader) (*core.Graph, error) {
	recs, err := p.Records(r)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for _, rec := range recs {
		if err := g.AddValve(rec.ID, rec.Flow); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, rec.Line, err)
		}
	}
	for _, rec := range recs {
		for _, nb := range rec.Tunnels {
			if err := g.AddTunnel(rec.ID, nb); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, rec.Line, err)
			}
		}
	}

	return g, nil
}

// ParseString is Parse over an in-memory scan.
func (p *Parser) ParseString(s string) (*core.Graph, error) {
	return p.Parse(strings.NewReader(s))
}
