package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/transport/mcp"
)

// app carries output streams and the logger shared by subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	level  slog.LevelVar
	logger *slog.Logger
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	a := &app{stdout: stdout, stderr: stderr}
	a.level.Set(slog.LevelWarn)
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: &a.level}))

	return &cli.Command{
		Name:      "gridpath",
		Usage:     "find minimum-cost paths to the top row of an occupancy grid",
		Version:   mcp.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("GRIDPATH_DEBUG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				a.level.Set(slog.LevelDebug)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "find",
				Usage: "search once and draw the path",
				Flags: []cli.Flag{
					scenarioFlag(),
					&cli.IntFlag{Name: "x", Usage: "start column (default: scenario start)"},
					&cli.IntFlag{Name: "y", Usage: "start row (default: scenario start)"},
					&cli.BoolFlag{Name: "trace", Usage: "print every enqueue and settle"},
				},
				Action: a.find,
			},
			{
				Name:   "sweep",
				Usage:  "search from every cell and print the cost table",
				Flags:  []cli.Flag{scenarioFlag()},
				Action: a.sweep,
			},
			{
				Name:   "init",
				Usage:  "print a scenario template",
				Action: a.writeTemplate,
			},
			{
				Name:   "mcp",
				Usage:  "serve find_path, render_path and set_occupancy_grid over MCP stdio",
				Flags:  []cli.Flag{scenarioFlag()},
				Action: a.serveMCP,
			},
		},
	}
}

func scenarioFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "scenario",
		Aliases: []string{"s"},
		Usage:   "YAML scenario file (default: open 5x7 grid)",
		Sources: cli.EnvVars("GRIDPATH_SCENARIO"),
	}
}

func (a *app) loadScenario(cmd *cli.Command) (*scenario.Scenario, error) {
	path := cmd.String("scenario")
	if path == "" {
		return scenario.Default(), nil
	}
	a.logger.Debug("loading scenario", slog.String("path", path))

	return scenario.Load(path)
}

func (a *app) find(ctx context.Context, cmd *cli.Command) error {
	s, err := a.loadScenario(cmd)
	if err != nil {
		return err
	}
	x, y := s.Start.X, s.Start.Y
	if cmd.IsSet("x") {
		x = int(cmd.Int("x"))
	}
	if cmd.IsSet("y") {
		y = int(cmd.Int("y"))
	}

	opts := []astar.Option{astar.WithLogger(a.logger)}
	if cmd.Bool("trace") {
		opts = append(opts,
			astar.WithOnEnqueue(func(n astar.Node) {
				fmt.Fprintf(a.stdout, "enqueue (%d,%d) g=%d h=%d f=%d\n", n.X, n.Y, n.G, n.H, n.F)
			}),
			astar.WithOnSettle(func(n astar.Node) {
				fmt.Fprintf(a.stdout, "settle  (%d,%d) g=%d h=%d f=%d\n", n.X, n.Y, n.G, n.H, n.F)
			}),
		)
	}
	p, err := s.Pathfinder(opts...)
	if err != nil {
		return err
	}

	res, err := p.FindPath(x, y)
	if err != nil {
		if errors.Is(err, astar.ErrPathNotFound) {
			fmt.Fprint(a.stdout, p.Occupancy().Render([]int{y*p.Width() + x}))
			fmt.Fprintf(a.stdout, "no path (settled %d cells)\n", res.Settled)
		}
		return err
	}
	fmt.Fprint(a.stdout, p.Occupancy().Render(res.IDs()))
	fmt.Fprintf(a.stdout, "cost: %d, length: %d, settled: %d\n", res.Cost, len(res.Path), res.Settled)

	return nil
}

func (a *app) sweep(ctx context.Context, cmd *cli.Command) error {
	s, err := a.loadScenario(cmd)
	if err != nil {
		return err
	}
	p, err := s.Pathfinder(astar.WithLogger(a.logger))
	if err != nil {
		return err
	}

	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			res, err := p.FindPath(x, y)
			switch {
			case err == nil:
				fmt.Fprintf(a.stdout, "%3d", res.Cost)
			case errors.Is(err, astar.ErrPathNotFound):
				fmt.Fprint(a.stdout, "  -")
			default:
				return err
			}
		}
		fmt.Fprintln(a.stdout)
	}

	return nil
}

func (a *app) writeTemplate(ctx context.Context, cmd *cli.Command) error {
	s := scenario.Default()
	o, err := s.Occupancy()
	if err != nil {
		return err
	}
	s.Rows = o.Rows()
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(data)

	return err
}

func (a *app) serveMCP(ctx context.Context, cmd *cli.Command) error {
	s, err := a.loadScenario(cmd)
	if err != nil {
		return err
	}
	p, err := s.Pathfinder(astar.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.logger.Info("serving MCP over stdio", slog.Int("width", p.Width()), slog.Int("height", p.Height()))

	return mcp.NewServer(p, a.logger).ServeStdio()
}
