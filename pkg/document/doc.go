// Package document reads and writes layout trees as TOML or JSON documents.
//
// # Overview
//
// A document describes one node tree under a single root table. It lets
// figures be kept in files, checked into version control, and rendered by
// the boxlayout CLI without writing Go.
//
// # TOML Format
//
//	title = "release notes"
//
//	[root]
//	type = "vlayout"
//
//	  [[root.children]]
//	  type = "hlayout"
//
//	    [[root.children.children]]
//	    type  = "block"
//	    lines = ["111", "111"]
//
//	    [[root.children.children]]
//	    type    = "divider"
//	    pattern = "|"
//
//	    [[root.children.children]]
//	    type  = "block"
//	    width = 2
//	    style = "bold cyan"
//	    lines = ["22222", "22222"]
//
//	  [[root.children]]
//	  type    = "divider"
//	  pattern = "-"
//
// The JSON format uses the same field names:
//
//	{"root": {"type": "block", "lines": ["hello"]}}
//
// # Node Fields
//
// Every node has a type: "block", "divider", "hlayout" (or "horizontal"),
// or "vlayout" (or "vertical"). Types are case-insensitive.
//
// Blocks:
//   - lines: Array of strings. A string holding "\n" becomes several lines.
//     ANSI escape sequences inside a line are kept as zero-width tokens.
//   - width: Fixed width in columns. Omit it for content-sized blocks.
//   - style: Space-separated style names, e.g. "bold red".
//
// Dividers:
//   - pattern: Plain text repeated to fill the divider (required).
//   - style: As for blocks.
//
// Layouts:
//   - children: Array of node tables, in order.
//
// Fields that do not belong to a node's type and keys the format does not
// know are rejected.
//
// # Round Trips
//
// [Encode] writes plain content. Style names cannot be recovered from
// escape sequences, so a decoded and re-encoded document loses its styles
// but keeps its structure, widths, and text.
package document
