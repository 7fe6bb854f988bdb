// Package pkg provides the core libraries for boxlayout text box layouts.
//
// # Overview
//
// Boxlayout arranges blocks of terminal text into a grid. A figure is a tree
// of blocks, dividers, and horizontal or vertical layouts; the presenter
// resolves every node's size and writes the figure row by row. The pkg
// directory is organized into three areas:
//
//  1. Model - [text], [node], and [decor] describe what is drawn
//  2. Layout - [present] resolves sizes and renders rounds
//  3. Plumbing - [document], [pipeline], [cache], [observability], [errors],
//     and [buildinfo] load figures from files and drive the CLI
//
// # Architecture
//
// The typical data flow through boxlayout:
//
//	TOML/JSON document
//	         ↓
//	    [document] package (decode into a node tree)
//	         ↓
//	    [present] package (size, fill, endings, rounds)
//	         ↓
//	    character grid on an io.Writer
//
// # Quick Start
//
// Build a tree in code and write it to standard output:
//
//	import (
//	    "os"
//	    "github.com/matzehuels/boxlayout/pkg/node"
//	    "github.com/matzehuels/boxlayout/pkg/present"
//	    "github.com/matzehuels/boxlayout/pkg/text"
//	)
//
//	left := node.NewBlock().Println(text.New("111")).Println(text.New("111"))
//	right := node.NewBlock().Println(text.New("22")).Println(text.New("22"))
//	root := node.NewVLayout(
//	    node.NewHLayout(left, node.NewDividerString("|"), right),
//	    node.NewDividerString("-"),
//	    node.NewBlock().Println(text.New("333333")),
//	)
//	present.Present(os.Stdout, root)
//
// Output:
//
//	111|22
//	111|22
//	------
//	333333
//
// # Main Packages
//
// [text] - Tokens and token sequences. A token is either one visible
// character with a display width or an invisible escape sequence of width
// zero. Widths come from go-runewidth.
//
// [node] - The layout tree: Block, Divider, HLayout, and VLayout.
//
// [decor] - Color and attribute helpers that produce invisible style tokens.
//
// [present] - The two-pass size resolver, the ending classifier, and the
// round-based renderer.
//
// [document] - TOML and JSON documents describing a node tree.
//
// [pipeline] - Read, decode, and present a document, with frame caching.
// Shared by every CLI command.
//
// [cache] - File-backed frame cache keyed by document hash and options.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/present/...            # Specific package
//	go test -run Example                 # Examples only
//
// [text]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/text
// [node]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/node
// [decor]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/decor
// [present]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/present
// [document]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/document
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/buildinfo
package pkg
