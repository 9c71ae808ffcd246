package introspect

import "github.com/clispect/clispect/pkg/command"

// Extract builds a schema tree for every top-level command in the
// given mapping. The walk is depth-first and preorder: a node's own
// fields are populated before its children are visited, so children
// always receive a valid parent handle.
//
// Extraction is all-or-nothing: any malformed parameter or duplicate
// subcommand anywhere in the tree fails the whole call and no partial
// schema is returned. The input is never modified; the returned tree
// shares only action references and choice slices with it.
//
// The input must be a finite, acyclic tree with no child shared
// between two parents. This is a caller contract and is not checked.
func Extract(commands map[string]*command.Command) (map[string]*CommandSchema, error) {
	schemas := make(map[string]*CommandSchema, len(commands))
	for name, cmd := range commands {
		schema, err := ExtractCommand(name, cmd)
		if err != nil {
			return nil, err
		}
		schemas[name] = schema
	}
	return schemas, nil
}

// ExtractCommand builds the schema tree for a single top-level
// command. Use this to extract top-level commands independently when a
// failure in one subtree should not discard the others.
func ExtractCommand(name string, cmd *command.Command) (*CommandSchema, error) {
	return extract(name, cmd, nil)
}

func extract(name string, cmd *command.Command, parent *CommandSchema) (*CommandSchema, error) {
	path := name
	if parent != nil {
		path = parent.Path() + " " + name
	}
	if name == "" {
		return nil, NewInvalidCommandError(path, "command with empty name")
	}
	if cmd == nil {
		return nil, NewInvalidCommandError(path, "nil command")
	}

	schema := &CommandSchema{
		Name:        name,
		Action:      cmd.Action,
		Docstring:   cmd.Help,
		Options:     []OptionSchema{},
		Arguments:   []ArgumentSchema{},
		Subcommands: map[string]*CommandSchema{},
		Parent:      parent,
	}

	for _, param := range cmd.Params {
		if err := classify(schema, param); err != nil {
			return nil, err
		}
	}

	for _, child := range cmd.Commands {
		childName := ""
		if child != nil {
			childName = child.Name
		}
		if _, exists := schema.Subcommands[childName]; exists {
			return nil, NewDuplicateChildError(schema.Path(), childName)
		}
		sub, err := extract(childName, child, schema)
		if err != nil {
			return nil, err
		}
		schema.Subcommands[childName] = sub
		schema.childOrder = append(schema.childOrder, childName)
	}

	return schema, nil
}

// classify appends a parameter declaration to the matching bucket of
// the schema. Named parameters become options; positional parameters
// become arguments. A nested flag group is classified as an option of
// the owning command, not expanded into its members.
func classify(schema *CommandSchema, param command.Param) error {
	switch p := param.(type) {
	case command.Option:
		if p.Name == "" {
			return NewMalformedParamError(schema.Path(), p.Name, "option with empty name")
		}
		if p.Type.Name == "" {
			return NewMalformedParamError(schema.Path(), p.Name, "option without a resolvable type")
		}
		schema.Options = append(schema.Options, OptionSchema{
			Name:     p.Name,
			Type:     p.Type.Name,
			Default:  p.Default,
			Required: p.Required,
			Help:     p.Help,
		})
	case command.FlagGroup:
		if p.Name == "" {
			return NewMalformedParamError(schema.Path(), p.Name, "flag group with empty name")
		}
		schema.Options = append(schema.Options, OptionSchema{
			Name: p.Name,
			Type: "group",
			Help: p.Help,
		})
	case command.Argument:
		if p.Name == "" {
			return NewMalformedParamError(schema.Path(), p.Name, "argument with empty name")
		}
		if p.Type.Name == "" {
			return NewMalformedParamError(schema.Path(), p.Name, "argument without a resolvable type")
		}
		arg := ArgumentSchema{
			Name:     p.Name,
			Type:     p.Type.Name,
			Required: p.Required,
		}
		if p.Type.IsChoice() {
			arg.Choices = p.Type.Choices
		}
		schema.Arguments = append(schema.Arguments, arg)
	default:
		return NewMalformedParamError(schema.Path(), "", "unknown parameter variant")
	}
	return nil
}
