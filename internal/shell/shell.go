// Package shell is the line-oriented interactive front end.
//
// One graph lives for the whole run. Commands that fail print an error and
// leave the graph as it was; the loop then continues with the next line.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/citygraph/bfs"
	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/dijkstra"
	"github.com/katalvlaran/citygraph/graphio"
	"github.com/katalvlaran/citygraph/prim_kruskal"
)

// Prompt is written before each line is read.
const Prompt = "> "

// ErrUsage reports a command called with the wrong arguments.
var ErrUsage = errors.New("shell: usage")

// Store is where bare load and save go. repository.Repository satisfies it.
type Store interface {
	Load(ctx context.Context) (*core.Graph, error)
	Save(ctx context.Context, g *core.Graph) error
}

// Shell runs commands against one in-memory graph.
type Shell struct {
	store Store
	graph *core.Graph
	opts  []core.GraphOption
	out   io.Writer
	log   *zap.Logger

	commands map[string]command
}

type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int
	run     func(ctx context.Context, args []string) error
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger used for load and save events.
func WithLogger(log *zap.Logger) Option {
	return func(s *Shell) {
		if log != nil {
			s.log = log
		}
	}
}

// WithGraph starts the shell on g instead of an empty graph.
func WithGraph(g *core.Graph) Option {
	return func(s *Shell) {
		if g != nil {
			s.graph = g
		}
	}
}

// WithGraphOptions applies opts to graphs loaded with "load <path>".
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(s *Shell) { s.opts = append(s.opts, opts...) }
}

// New returns a Shell writing to out. store may be nil; bare "save" then
// writes graphio.DefaultOutput and bare "load" is refused.
func New(store Store, out io.Writer, opts ...Option) *Shell {
	s := &Shell{store: store, out: out, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.graph == nil {
		s.graph = core.NewGraph(s.opts...)
	}

	s.commands = map[string]command{
		"load":       {usage: "load [path]", help: "replace the graph with a file, or reload the repository", maxArgs: 1, run: s.load},
		"show":       {usage: "show", help: "print every city with its neighbors", run: s.show},
		"cities":     {usage: "cities", help: "list known cities", run: s.cities},
		"path":       {usage: "path <from> <to>", help: "shortest path between two cities", minArgs: 2, maxArgs: 2, run: s.path},
		"add":        {usage: "add <city1> <city2> <km>", help: "add a road", minArgs: 3, maxArgs: 3, run: s.add},
		"save":       {usage: "save [path]", help: "save to a file, or to the repository", maxArgs: 1, run: s.save},
		"components": {usage: "components", help: "groups of mutually reachable cities", run: s.components},
		"stats":      {usage: "stats", help: "graph summary", run: s.stats},
		"mst":        {usage: "mst [root]", help: "cheapest roads connecting every city", maxArgs: 1, run: s.mst},
		"help":       {usage: "help", help: "this list", run: s.help},
	}

	return s
}

// Graph returns the current graph.
func (s *Shell) Graph() *core.Graph { return s.graph }

// Run reads commands from in until "quit", end of input or ctx is done.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, Prompt)
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}
		if quit := s.Exec(ctx, sc.Text()); quit {
			return nil
		}
	}
}

// Exec runs a single command line and reports whether it asked to quit.
func (s *Shell) Exec(ctx context.Context, line string) (quit bool) {
	args, err := splitArgs(line)
	if err != nil {
		s.printErr(err)
		return false
	}
	if len(args) == 0 {
		return false
	}

	name, args := strings.ToLower(args[0]), args[1:]
	if name == "quit" || name == "exit" {
		return true
	}
	cmd, ok := s.commands[name]
	if !ok {
		fmt.Fprintf(s.out, "unknown command %q; type help\n", name)
		return false
	}
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		s.printErr(fmt.Errorf("%w: %s", ErrUsage, cmd.usage))
		return false
	}
	if err := cmd.run(ctx, args); err != nil {
		s.printErr(err)
	}

	return false
}

func (s *Shell) printErr(err error) {
	fmt.Fprintf(s.out, "error: %v\n", err)
}

func (s *Shell) load(ctx context.Context, args []string) error {
	var (
		g    *core.Graph
		err  error
		from string
	)
	if len(args) == 1 {
		from = args[0]
		g, err = graphio.Load(from, s.opts...)
	} else {
		if s.store == nil {
			return fmt.Errorf("%w: load <path>", ErrUsage)
		}
		from = "repository"
		g, err = s.store.Load(ctx)
	}
	if err != nil {
		return err
	}

	s.graph = g
	s.log.Info("graph loaded", zap.String("from", from), zap.Int("edges", g.EdgeCount()))
	fmt.Fprintf(s.out, "Cities and distances loaded successfully! (%d cities, %d edges)\n",
		g.CityCount(), g.EdgeCount())

	return nil
}

func (s *Shell) show(context.Context, []string) error {
	entries := s.graph.AdjacencyList()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "graph is empty")
		return nil
	}
	for _, e := range entries {
		parts := make([]string, len(e.Neighbors))
		for i, n := range e.Neighbors {
			parts[i] = fmt.Sprintf("%s (%s km)", n.City, km(n.Distance))
		}
		fmt.Fprintf(s.out, "%s -> %s\n", e.City, strings.Join(parts, ", "))
	}

	return nil
}

func (s *Shell) cities(context.Context, []string) error {
	ids := s.graph.Cities()
	if len(ids) == 0 {
		fmt.Fprintln(s.out, "no cities")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintln(s.out, id)
	}

	return nil
}

func (s *Shell) path(_ context.Context, args []string) error {
	p, err := dijkstra.FindPath(s.graph, args[0], args[1])
	if err != nil {
		return err
	}
	if !p.Found() {
		fmt.Fprintln(s.out, "Path not found!")
		return nil
	}
	fmt.Fprintf(s.out, "Shortest path: %s\n", p)
	fmt.Fprintf(s.out, "Total distance: %s km\n", km(p.Distance))

	return nil
}

func (s *Shell) add(_ context.Context, args []string) error {
	d, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("%w: distance %q is not a number", ErrUsage, args[2])
	}
	if err = s.graph.AddEdge(args[0], args[1], d); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Edge added successfully!")

	return nil
}

func (s *Shell) save(ctx context.Context, args []string) error {
	var (
		err error
		to  string
	)
	switch {
	case len(args) == 1:
		to = args[0]
		err = graphio.Save(to, s.graph)
	case s.store != nil:
		to = "repository"
		err = s.store.Save(ctx, s.graph)
	default:
		to = graphio.DefaultOutput
		err = graphio.Save(to, s.graph)
	}
	if err != nil {
		return err
	}

	s.log.Info("graph saved", zap.String("to", to), zap.Int("edges", s.graph.EdgeCount()))
	fmt.Fprintf(s.out, "Graph saved to %s\n", to)

	return nil
}

func (s *Shell) components(context.Context, []string) error {
	comps, err := bfs.Components(s.graph)
	if err != nil {
		return err
	}
	if len(comps) == 0 {
		fmt.Fprintln(s.out, "graph is empty")
		return nil
	}
	for i, c := range comps {
		fmt.Fprintf(s.out, "%d: %s\n", i+1, strings.Join(c, ", "))
	}

	return nil
}

func (s *Shell) stats(context.Context, []string) error {
	st := s.graph.Stats()
	fmt.Fprintf(s.out, "cities: %d, edges: %d, total distance: %s km, max degree: %d\n",
		st.Cities, st.Edges, km(st.TotalDistance), st.MaxDegree)

	return nil
}

func (s *Shell) mst(_ context.Context, args []string) error {
	var opts []prim_kruskal.Option
	if len(args) == 1 {
		opts = append(opts, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(args[0]))
	}
	tree, err := prim_kruskal.Compute(s.graph, opts...)
	if err != nil {
		return err
	}

	parts := make([]string, len(tree.Edges))
	for i, e := range tree.Edges {
		parts[i] = fmt.Sprintf("%s - %s (%s km)", e.City1, e.City2, km(e.Distance))
	}
	fmt.Fprintf(s.out, "Roads kept: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(s.out, "Total distance: %s km\n", km(tree.Total))

	return nil
}

func (s *Shell) help(context.Context, []string) error {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c := s.commands[name]
		fmt.Fprintf(s.out, "  %-26s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(s.out, "  %-26s %s\n", "quit", "leave")

	return nil
}

func km(d float64) string { return strconv.FormatFloat(d, 'f', -1, 64) }
