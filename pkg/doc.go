// Package pkg provides the core libraries for treestack.
//
// # Overview
//
// treestack pairs a stack with a binary tree: every push inserts the value
// into a binary search tree or a complete binary tree, and the stack entry
// remembers which node it created. Both structures are laid out and drawn
// side by side. The packages split along that flow:
//
//	command (push 5, pop, ...)
//	         ↓
//	    [session] dispatch table, log, status line
//	         ↓
//	    [stack] entries with node references and refcounts
//	         ↓
//	    [tree] arena-backed BST or complete tree
//	         ↓
//	    [layout] width pass, then position pass
//	         ↓
//	    [render] scene → SVG / JSON / text, [render/nodelink] → DOT via Graphviz
//
// [viewport] maps scene coordinates to the screen for pan and zoom.
//
// # Quick Start
//
//	s := session.New(session.WithKind(tree.KindComplete))
//	for _, v := range []string{"4", "7", "1"} {
//	    s.Dispatch(ctx, session.CmdPush, v)
//	}
//	s.Dispatch(ctx, session.CmdPop, "")
//
//	svg := render.RenderSVG(render.NewScene(s))
//
// # Supporting Packages
//
// [errors] - Coded errors (INVALID_INPUT, EMPTY_STACK, DUPLICATE_VALUE, ...)
// whose messages double as status lines.
//
// [observability] - Hook interfaces for command, layout and render events,
// no-ops unless the CLI installs its logger.
//
// [buildinfo] - Version information injected via ldflags.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -run Example ./... # Examples only
//
// [session]: https://pkg.go.dev/github.com/matzehuels/treestack/pkg/session
// [stack]: https://pkg.go.dev/github.com/matzehuels/treestack/pkg/stack
// [tree]: https://pkg.go.dev/github.com/matzehuels/treestack/pkg/tree
// [layout]: https://pkg.go.dev/github.com/matzehuels/treestack/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/treestack/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/treestack/pkg/render/nodelink
// [viewport]: https://pkg.go.dev/github.com/matzehuels/treestack/pkg/viewport
// [errors]: https://pkg.go.dev/github.com/matzehuels/treestack/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/treestack/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/treestack/pkg/buildinfo
package pkg
