// Package command defines the declarative command-tree model that
// clispect introspects. A tree is built once, handed to the extractor,
// and never mutated afterwards.
package command

import "context"

// ActionFunc is the callable behind a command. A group command that only
// dispatches to its children may have no action at all.
type ActionFunc func(ctx context.Context, args []string) error

// Command is one node of a command tree. A command with declared
// subcommands acts as a group and dispatches to them by name; it may
// still carry its own action.
//
// The tree must be finite and strictly hierarchical: no command may
// appear under two parents and no command may be its own ancestor.
// The extractor does not detect violations of this contract.
type Command struct {
	// Name identifies the command within its parent.
	Name string

	// Help is the human-readable description shown to users. Optional.
	Help string

	// Action implements the command. Optional for groups.
	Action ActionFunc

	// Params are the declared parameters, in declaration order.
	Params []Param

	// Commands are the declared subcommands, in declaration order.
	// Names must be unique within a single command.
	Commands []*Command
}
