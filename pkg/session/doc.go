// Package session drives the stack model through an explicit command table.
//
// A [Session] replaces button callbacks: every user action is a [Command]
// dispatched by name, runs to completion, mutates the model, recomputes the
// layout and appends one line to the operation log. Failures never mutate
// state; they only set the transient status line.
//
//	s := session.New(session.WithKind(tree.KindComplete))
//	res, err := s.Dispatch(ctx, session.CmdPush, "5")
//	fmt.Println(res.Log)    // PUSH 5
//	fmt.Println(res.Status) // Pushed 5
//
// Scripts use the same table through [ParseScript], one command per line:
//
//	push 5
//	push 3
//	pop     # comments and blank lines are ignored
package session
