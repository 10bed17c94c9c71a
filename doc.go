// Package gridpath finds minimum-cost paths from any cell of a fixed-size
// occupancy grid to its top row.
//
// What is gridpath?
//
//	A small, dependency-light toolkit built around one search:
//		• grid/           : Occupancy grids: construction, addressing, ASCII rendering
//		• astar/          : the row-goal best-first search (Pathfinder)
//		• scenario/       : YAML scenario files that configure a search
//		• transport/mcp/  : MCP tool server around a Pathfinder
//		• cmd/gridpath/   : command line front end (find, sweep, init, mcp)
//
// Quick ASCII example (5×7, '#' blocked, S start, G goal):
//
//	..G..
//	..o..
//	##o##
//	..o..
//	..o..
//	..o..
//	..S..
//
// The goal is implicit: any cell on row 0. Moves are 4-connected at unit
// cost and the heuristic is the row index, so the first row-0 cell the
// search admits lies on a shortest path.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
