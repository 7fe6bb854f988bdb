// Package present lays out a node tree and writes it as a character grid.
//
// # Pipeline
//
// Each call to [Presenter.Present] builds a throwaway presentation tree that
// mirrors the node tree and carries the render state, then runs:
//
//  1. Sizing, bottom-up: blocks measure their lines, column dividers take
//     their pattern width, row dividers are one line high, an HLayout sums
//     widths and takes the tallest child, a VLayout takes the widest child
//     and sums heights.
//  2. Filling, top-down: any size left open (divider extents) is inherited
//     from the parent; the root defaults to 0.
//  3. Ending detection: nodes on the right edge of the figure end each of
//     their rows with a line break.
//  4. Rounds: every round writes one row per active leaf. An HLayout visits
//     all of its children, a VLayout only its first unfinished child. The
//     loop stops once every leaf has written all of its rows.
//
// For the figure below, B3, B4 and B5 end their rows; B1 and B2 never do,
// because each sits on a non-last branch of an HLayout.
//
//	+----+----+----+
//	|    | B2 | B3 |
//	|    +----+----+
//	| B1 |   B4    |
//	+----+---------+
//	|      B5      |
//	+--------------+
//
//	          V1
//	         /  \
//	       H1    B5
//	      /  \
//	    B1    V2
//	         /  \
//	       H2    B4
//	      /  \
//	    B2    B3
//
// The node tree is only read: trailing empty block lines are skipped rather
// than removed, so the same tree can be presented again.
package present
