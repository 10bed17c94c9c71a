package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Server name and version reported to MCP clients.
const (
	Name    = "gridpath"
	Version = "1.0.0"
)

// Server wraps a pathfinder with MCP tool handlers.
type Server struct {
	mu        sync.Mutex
	finder    *astar.Pathfinder
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer registers the pathfinder tools. A nil logger uses slog.Default().
func NewServer(finder *astar.Pathfinder, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{finder: finder, logger: logger}
	s.mcpServer = server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(fmt.Sprintf(`Row-goal grid pathfinder.

The grid is %dx%d. Row 0 is the goal row; any cell on it ends the search.
Moves are left, right, up and down at cost 1.

TOOLS:
- find_path: shortest path from (x, y) to row 0, as JSON
- render_path: the same search drawn as ASCII (S start, G goal, o path, # blocked)
- set_occupancy_grid: replace obstacles with text rows ('.' open, '#' blocked)`,
			finder.Width(), finder.Height())),
	)
	s.registerTools()

	return s
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer { return s.mcpServer }

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	coords := map[string]interface{}{
		"x": map[string]interface{}{
			"type":        "integer",
			"description": "Start column, 0-based",
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": "Start row, 0-based; row 0 is the goal row",
		},
	}

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "find_path",
		Description: "Find a minimum-cost path from (x, y) to row 0",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: coords,
			Required:   []string{"x", "y"},
		},
	}, s.handleFindPath)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "render_path",
		Description: "Find a path from (x, y) to row 0 and draw it on the grid",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: coords,
			Required:   []string{"x", "y"},
		},
	}, s.handleRenderPath)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "set_occupancy_grid",
		Description: "Replace the obstacle grid; one string per row, '.' open and '#' blocked",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"rows": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Grid rows, top (goal) row first",
				},
			},
			Required: []string{"rows"},
		},
	}, s.handleSetOccupancyGrid)
}

// cellJSON is one path node in tool output.
type cellJSON struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	ID       int `json:"id"`
	ParentID int `json:"parent_id"`
	G        int `json:"g"`
	H        int `json:"h"`
	F        int `json:"f"`
}

// pathJSON is the find_path result.
type pathJSON struct {
	Found   bool       `json:"found"`
	Cost    int        `json:"cost"`
	Settled int        `json:"settled"`
	Path    []cellJSON `json:"path,omitempty"`
	Message string     `json:"message,omitempty"`
}

func (s *Server) handleFindPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	x, y, err := coordinates(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	res, err := s.finder.FindPath(x, y)
	s.mu.Unlock()
	s.logger.Debug("find_path", slog.Int("x", x), slog.Int("y", y), slog.Bool("found", res.Found))

	out := pathJSON{Found: res.Found, Cost: res.Cost, Settled: res.Settled}
	switch {
	case errors.Is(err, astar.ErrPathNotFound):
		out.Message = err.Error()
	case err != nil:
		return mcp.NewToolResultError(err.Error()), nil
	}
	for _, n := range res.Path {
		out.Path = append(out.Path, cellJSON{
			X: n.X, Y: n.Y, ID: n.ID, ParentID: n.ParentID, G: n.G, H: n.H, F: n.F,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleRenderPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	x, y, err := coordinates(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.finder.FindPath(x, y)
	if err != nil && !errors.Is(err, astar.ErrPathNotFound) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	board := s.finder.Occupancy()
	if board == nil {
		board, _ = grid.New(s.finder.Width(), s.finder.Height())
	}
	if !res.Found {
		return mcp.NewToolResultText(board.Render([]int{y*s.finder.Width() + x}) + err.Error() + "\n"), nil
	}

	return mcp.NewToolResultText(board.Render(res.IDs()) + fmt.Sprintf("cost: %d\n", res.Cost)), nil
}

func (s *Server) handleSetOccupancyGrid(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	raw, _ := args["rows"].([]interface{})
	rows := make([]string, 0, len(raw))
	for _, r := range raw {
		row, ok := r.(string)
		if !ok {
			return mcp.NewToolResultError("rows must be strings"), nil
		}
		rows = append(rows, row)
	}

	o, err := grid.Parse(rows)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.mu.Lock()
	err = s.finder.SetOccupancyGrid(o)
	s.mu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Info("occupancy grid replaced", slog.Int("blocked", o.BlockedCount()))

	return mcp.NewToolResultText(fmt.Sprintf("grid updated: %dx%d, %d blocked", o.Width, o.Height, o.BlockedCount())), nil
}

// coordinates extracts integer x and y arguments. JSON numbers arrive as
// float64; fractional values are rejected.
func coordinates(request mcp.CallToolRequest) (int, int, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return 0, 0, fmt.Errorf("arguments x and y are required")
	}
	x, err := intArg(args, "x")
	if err != nil {
		return 0, 0, err
	}
	y, err := intArg(args, "y")
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

func intArg(args map[string]interface{}, key string) (int, error) {
	switch v := args[key].(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%s must be an integer, got %v", key, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer: %w", key, err)
		}
		return int(n), nil
	case nil:
		return 0, fmt.Errorf("%s is required", key)
	default:
		return 0, fmt.Errorf("%s must be an integer, got %T", key, v)
	}
}
