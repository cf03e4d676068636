// SPDX-License-Identifier: MIT
// Package: archgraph/oracle
//
// engine.go — the production adapter: an external computer-algebra engine
// driven as a subprocess.
//
// Protocol:
//   - A script template is filled with a comma-joined list of
//     (degree, [generators]) tuples and piped to the engine on stdin.
//   - The engine prints one reply line per tuple:
//     degree:<d>,order:<o>,gens:<g>
//     where <o> is a decimal integer and <g> is a ';'-joined list of
//     cycle-form permutation strings (empty for the trivial group).
//   - Replies are consumed line by line in request order.
//
// Resource model: every call is one blocking round trip — no timeout, no
// cancellation, no retry. A non-zero exit or unparseable output aborts the
// whole invocation.

package oracle

import (
	"bytes"
	"fmt"
	"math/big"
	"math/rand"
	"os/exec"
	"strconv"
	"strings"

	"github.com/katalvlaran/archgraph/cgraph"
	"github.com/katalvlaran/archgraph/perm"
)

// Reply line tokens.
const (
	replyDegreePrefix = "degree:"
	replyOrderToken   = ",order:"
	replyGensToken    = ",gens:"
	replyGenSep       = ";"
)

// orderScript computes group orders for a batch of (degree, gens) tuples.
// The %s slot receives the comma-joined tuple list.
const orderScript = `jobs := [ %s ];;
for job in jobs do
    d := job[1];;
    gens := List(job[2], EvalString);;
    if Length(gens) = 0 then G := Group(()); else G := Group(gens); fi;;
    Print("degree:", d, ",order:", Size(G), ",gens:", JoinStringsWithSeparator(job[2], ";"), "\n");
od;;
`

// primitiveScript picks one uniformly random primitive group of degree %d.
// A zero count is reported as order:0 with empty gens.
const primitiveScript = `d := %d;;
n := NrPrimitiveGroups(d);;
if n = 0 then
    Print("degree:", d, ",order:0,gens:\n");
else
    G := PrimitiveGroup(d, Random(GlobalMersenneTwister, [1..n]));;
    Print("degree:", d, ",order:", Size(G), ",gens:",
          JoinStringsWithSeparator(List(GeneratorsOfGroup(G), String), ";"), "\n");
fi;;
`

// autScript computes the automorphism group of a vertex-colored graph given
// as a 1-based edge list and an ordered list of color classes. The reply
// degree is the full (possibly subdivided) vertex count.
const autScript = `LoadPackage("grape", false);;
d := %d;;
edges := [ %s ];;
colors := [ %s ];;
gamma := EdgeOrbitsGraph(Group(()), edges, d);;
G := AutGroupGraph(gamma, colors);;
Print("degree:", d, ",order:", Size(G), ",gens:",
      JoinStringsWithSeparator(List(GeneratorsOfGroup(G), String), ";"), "\n");
`

// Engine runs the external algebra binary for every query. The zero value
// is not usable; construct with NewEngine.
type Engine struct {
	binary string
	args   []string
}

// NewEngine validates the binary name and returns the adapter. Typical
// arguments put the engine into quiet non-interactive mode.
func NewEngine(binary string, args ...string) (*Engine, error) {
	if strings.TrimSpace(binary) == "" {
		return nil, fmt.Errorf("NewEngine: empty binary path: %w", ErrEngineFailed)
	}
	return &Engine{binary: binary, args: args}, nil
}

// run pipes the script to the engine and returns non-empty stdout lines.
func (e *Engine) run(script string) ([]string, error) {
	cmd := exec.Command(e.binary, e.args...)
	cmd.Stdin = strings.NewReader(script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run: %s: %v (stderr: %s): %w",
			e.binary, err, strings.TrimSpace(stderr.String()), ErrEngineFailed)
	}

	var lines []string
	for _, ln := range strings.Split(stdout.String(), "\n") {
		if trimmed := strings.TrimSpace(ln); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines, nil
}

// reply is one parsed protocol triple.
type reply struct {
	degree int
	order  *big.Int
	gens   []string
}

// parseReply decodes one "degree:<d>,order:<o>,gens:<g>" line.
func parseReply(line string) (reply, error) {
	if !strings.HasPrefix(line, replyDegreePrefix) {
		return reply{}, fmt.Errorf("parseReply: missing degree in %q: %w", line, ErrBadReply)
	}
	rest := line[len(replyDegreePrefix):]

	oi := strings.Index(rest, replyOrderToken)
	if oi < 0 {
		return reply{}, fmt.Errorf("parseReply: missing order in %q: %w", line, ErrBadReply)
	}
	gi := strings.Index(rest, replyGensToken)
	if gi < 0 || gi < oi {
		return reply{}, fmt.Errorf("parseReply: missing gens in %q: %w", line, ErrBadReply)
	}

	degree, err := strconv.Atoi(rest[:oi])
	if err != nil {
		return reply{}, fmt.Errorf("parseReply: degree %q: %w", rest[:oi], ErrBadReply)
	}
	orderStr := rest[oi+len(replyOrderToken) : gi]
	order, ok := new(big.Int).SetString(orderStr, 10)
	if !ok {
		return reply{}, fmt.Errorf("parseReply: order %q: %w", orderStr, ErrBadReply)
	}

	var gens []string
	for _, g := range strings.Split(rest[gi+len(replyGensToken):], replyGenSep) {
		if trimmed := strings.TrimSpace(g); trimmed != "" {
			gens = append(gens, trimmed)
		}
	}
	return reply{degree: degree, order: order, gens: gens}, nil
}

// tupleList renders the comma-joined "(degree, [generators])" batch that
// fills the order script template.
func tupleList(degrees []int, gensets [][]string) string {
	var sb strings.Builder
	for i, d := range degrees {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[ ")
		sb.WriteString(strconv.Itoa(d))
		sb.WriteString(", [")
		for j, g := range gensets[i] {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(g))
		}
		sb.WriteString("] ]")
	}
	return sb.String()
}

// Orders implements GroupOrder with one batched engine round trip.
func (e *Engine) Orders(degrees []int, gensets [][]string) ([]*big.Int, error) {
	if len(degrees) != len(gensets) {
		return nil, fmt.Errorf("Orders: %d degrees vs %d gensets: %w",
			len(degrees), len(gensets), ErrBadReply)
	}
	if len(degrees) == 0 {
		return nil, nil
	}
	lines, err := e.run(fmt.Sprintf(orderScript, tupleList(degrees, gensets)))
	if err != nil {
		return nil, fmt.Errorf("Orders: %w", err)
	}
	if len(lines) != len(degrees) {
		return nil, fmt.Errorf("Orders: want %d reply lines, got %d: %w",
			len(degrees), len(lines), ErrBadReply)
	}
	orders := make([]*big.Int, len(lines))
	for i, ln := range lines {
		r, err := parseReply(ln)
		if err != nil {
			return nil, fmt.Errorf("Orders: line %d: %w", i, err)
		}
		orders[i] = r.order
	}
	return orders, nil
}

// RandomPrimitive implements Primitive via an engine query. The engine's
// own RNG draws the group index, so rng is unused here; it exists for the
// table-backed sibling adapter.
func (e *Engine) RandomPrimitive(_ *rand.Rand, degree int) ([]string, error) {
	lines, err := e.run(fmt.Sprintf(primitiveScript, degree))
	if err != nil {
		return nil, fmt.Errorf("RandomPrimitive: degree %d: %w", degree, err)
	}
	if len(lines) != 1 {
		return nil, fmt.Errorf("RandomPrimitive: degree %d: want 1 reply line, got %d: %w",
			degree, len(lines), ErrBadReply)
	}
	r, err := parseReply(lines[0])
	if err != nil {
		return nil, fmt.Errorf("RandomPrimitive: degree %d: %w", degree, err)
	}
	if r.order.Sign() == 0 {
		return nil, fmt.Errorf("RandomPrimitive: no primitive group of degree %d: %w",
			degree, ErrOracleUnavailable)
	}
	return r.gens, nil
}

// Generators implements Automorphism via an engine query over the full
// vertex index space of g.
func (e *Engine) Generators(g *cgraph.Graph, colors cgraph.Coloring) ([]perm.Image, error) {
	n := g.Order()
	lines, err := e.run(fmt.Sprintf(autScript, n, edgeList(g), colorList(colors)))
	if err != nil {
		return nil, fmt.Errorf("Generators: order %d: %w", n, err)
	}
	if len(lines) != 1 {
		return nil, fmt.Errorf("Generators: order %d: want 1 reply line, got %d: %w",
			n, len(lines), ErrBadReply)
	}
	r, err := parseReply(lines[0])
	if err != nil {
		return nil, fmt.Errorf("Generators: order %d: %w", n, err)
	}
	imgs := make([]perm.Image, 0, len(r.gens))
	for _, gen := range r.gens {
		img, err := perm.ParseCycles(gen, n)
		if err != nil {
			return nil, fmt.Errorf("Generators: generator %q: %w: %v", gen, ErrBadReply, err)
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

// edgeList renders g's edges as 1-based directed pairs for the script.
// The engine's graph model is directed, so each undirected edge appears in
// both orientations.
func edgeList(g *cgraph.Graph) string {
	var sb strings.Builder
	for i, e := range g.Edges() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "[%d,%d], [%d,%d]", e.U+1, e.V+1, e.V+1, e.U+1)
	}
	return sb.String()
}

// colorList renders the color classes as 1-based vertex lists.
func colorList(colors cgraph.Coloring) string {
	var sb strings.Builder
	for i, class := range colors {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[")
		for j, v := range class {
			if j > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(strconv.Itoa(v + 1))
		}
		sb.WriteString("]")
	}
	return sb.String()
}
