// Package introspect walks a declarative command tree and produces a
// decoupled, serializable schema describing it: which commands exist,
// how they nest, and what parameters each accepts. The schema is the
// sole output; the input tree is never modified.
package introspect

import (
	"slices"
	"strings"

	"github.com/clispect/clispect/pkg/command"
)

// OptionSchema describes one named, flag-style parameter.
type OptionSchema struct {
	Name     string
	Type     string
	Default  any
	Required bool
	Help     string
	Choices  []string
}

// ArgumentSchema describes one positional parameter. Choices is set
// only when the declared type is an enumeration of strings. Default is
// part of the schema shape but extraction never populates it.
type ArgumentSchema struct {
	Name     string
	Type     string
	Required bool
	Default  any
	Choices  []string
}

// CommandSchema describes one command or subcommand node. The tree is
// owned top-down through Subcommands; Parent is a non-owning
// back-reference used only for path reconstruction.
type CommandSchema struct {
	Name      string
	Action    command.ActionFunc
	Docstring string
	Options   []OptionSchema
	Arguments []ArgumentSchema

	// Subcommands maps child name to child schema. Always allocated,
	// empty for leaf commands and for groups with no children.
	Subcommands map[string]*CommandSchema

	// Parent is nil for top-level commands.
	Parent *CommandSchema

	// childOrder records subcommand declaration order, since map
	// iteration order is unspecified.
	childOrder []string
}

// SubcommandNames returns the subcommand names in declaration order.
func (c *CommandSchema) SubcommandNames() []string {
	return slices.Clone(c.childOrder)
}

// PathFromRoot returns the chain of schemas from the top-level command
// down to c, both ends inclusive. The parent chain is finite and
// acyclic, so the result always starts at a node with a nil Parent.
func (c *CommandSchema) PathFromRoot() []*CommandSchema {
	var path []*CommandSchema
	for node := c; node != nil; node = node.Parent {
		path = append(path, node)
	}
	slices.Reverse(path)
	return path
}

// Path returns the space-joined command path, e.g. "tool add".
func (c *CommandSchema) Path() string {
	nodes := c.PathFromRoot()
	names := make([]string, len(nodes))
	for i, node := range nodes {
		names[i] = node.Name
	}
	return strings.Join(names, " ")
}

// Depth returns the number of ancestors of c. Top-level commands have
// depth zero.
func (c *CommandSchema) Depth() int {
	return len(c.PathFromRoot()) - 1
}
