// Package mcp exposes a row-goal pathfinder as an MCP tool server.
//
// Tools:
//
//   - find_path(x, y): run one search and return the path as JSON.
//   - set_occupancy_grid(rows): replace the obstacle grid ('.' open, '#' blocked).
//   - render_path(x, y): run one search and return an ASCII drawing.
//
// All tools share one pathfinder; calls are serialised with a mutex so a
// grid replacement never overlaps a running search.
package mcp
