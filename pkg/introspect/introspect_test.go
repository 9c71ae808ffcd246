package introspect

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clispect/clispect/pkg/command"
)

func toolTree(action command.ActionFunc) *command.Command {
	return &command.Command{
		Name: "tool",
		Help: "A sample tool",
		Commands: []*command.Command{
			{
				Name:   "add",
				Help:   "Add a path",
				Action: action,
				Params: []command.Param{
					command.Option{Name: "force", Type: command.BoolType, Default: false},
					command.Argument{Name: "path", Type: command.StringType, Required: true},
				},
			},
			{
				Name: "list",
				Help: "List everything",
			},
		},
	}
}

func TestExtract_Scenario(t *testing.T) {
	schemas, err := Extract(map[string]*command.Command{"tool": toolTree(nil)})
	require.NoError(t, err)
	require.Len(t, schemas, 1)

	tool := schemas["tool"]
	require.NotNil(t, tool)
	assert.Equal(t, "tool", tool.Name)
	assert.Nil(t, tool.Parent)
	assert.Equal(t, "A sample tool", tool.Docstring)
	assert.Len(t, tool.Subcommands, 2)
	assert.Equal(t, []string{"add", "list"}, tool.SubcommandNames())

	add := tool.Subcommands["add"]
	require.NotNil(t, add)
	assert.Same(t, tool, add.Parent)
	require.Len(t, add.Options, 1)
	assert.Equal(t, OptionSchema{Name: "force", Type: "bool", Default: false}, add.Options[0])
	require.Len(t, add.Arguments, 1)
	assert.Equal(t, ArgumentSchema{Name: "path", Type: "string", Required: true}, add.Arguments[0])

	list := tool.Subcommands["list"]
	require.NotNil(t, list)
	assert.Same(t, tool, list.Parent)
	assert.Empty(t, list.Options)
	assert.Empty(t, list.Arguments)
	assert.NotNil(t, list.Subcommands)
	assert.Empty(t, list.Subcommands)
}

func TestExtract_ParentRoundTrip(t *testing.T) {
	deep := &command.Command{
		Name: "a",
		Commands: []*command.Command{
			{
				Name: "b",
				Commands: []*command.Command{
					{Name: "c"},
				},
			},
		},
	}

	schemas, err := Extract(map[string]*command.Command{"a": deep})
	require.NoError(t, err)

	var walk func(node *CommandSchema)
	walk = func(node *CommandSchema) {
		for name, sub := range node.Subcommands {
			assert.Equal(t, name, sub.Name)
			assert.Same(t, node, sub.Parent)
			walk(sub)
		}
	}
	walk(schemas["a"])
}

func TestExtract_PathFromRoot(t *testing.T) {
	schemas, err := Extract(map[string]*command.Command{"tool": toolTree(nil)})
	require.NoError(t, err)

	add := schemas["tool"].Subcommands["add"]
	path := add.PathFromRoot()
	require.Len(t, path, 2)
	assert.Nil(t, path[0].Parent)
	assert.Same(t, schemas["tool"], path[0])
	assert.Same(t, add, path[1])
	assert.Equal(t, add.Depth()+1, len(path))
	assert.Equal(t, "tool add", add.Path())
}

func TestExtract_ParamPartition(t *testing.T) {
	cmd := &command.Command{
		Name: "mixed",
		Params: []command.Param{
			command.Option{Name: "verbose", Type: command.BoolType},
			command.Argument{Name: "src", Type: command.StringType, Required: true},
			command.Option{Name: "level", Type: command.IntType, Default: 3},
			command.Argument{Name: "dst", Type: command.StringType},
		},
	}

	schema, err := ExtractCommand("mixed", cmd)
	require.NoError(t, err)

	assert.Len(t, schema.Options, 2)
	assert.Len(t, schema.Arguments, 2)
	assert.Equal(t, len(cmd.Params), len(schema.Options)+len(schema.Arguments))
	// Encounter order, no sorting.
	assert.Equal(t, "verbose", schema.Options[0].Name)
	assert.Equal(t, "level", schema.Options[1].Name)
	assert.Equal(t, "src", schema.Arguments[0].Name)
	assert.Equal(t, "dst", schema.Arguments[1].Name)
}

func TestExtract_ArgumentChoices(t *testing.T) {
	cmd := &command.Command{
		Name: "deploy",
		Params: []command.Param{
			command.Argument{Name: "env", Type: command.Choice("a", "b", "c"), Required: true},
			command.Argument{Name: "target", Type: command.StringType},
		},
	}

	schema, err := ExtractCommand("deploy", cmd)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, schema.Arguments[0].Choices)
	assert.Equal(t, "choice", schema.Arguments[0].Type)
	assert.Nil(t, schema.Arguments[1].Choices)
}

func TestExtract_ArgumentDefaultNotCaptured(t *testing.T) {
	cmd := &command.Command{
		Name: "serve",
		Params: []command.Param{
			command.Option{Name: "port", Type: command.IntType, Default: 8080},
			command.Argument{Name: "root", Type: command.StringType, Default: "."},
		},
	}

	schema, err := ExtractCommand("serve", cmd)
	require.NoError(t, err)

	// Option defaults carry over; positional defaults stay unset.
	assert.Equal(t, 8080, schema.Options[0].Default)
	assert.Nil(t, schema.Arguments[0].Default)
}

func TestExtract_FlagGroupClassifiedAsOption(t *testing.T) {
	cmd := &command.Command{
		Name: "run",
		Params: []command.Param{
			command.FlagGroup{
				Name: "output",
				Help: "Output selection",
				Options: []command.Option{
					{Name: "json", Type: command.BoolType},
					{Name: "yaml", Type: command.BoolType},
				},
			},
		},
	}

	schema, err := ExtractCommand("run", cmd)
	require.NoError(t, err)

	// The group lands in the options bucket as a single entry and is
	// not expanded into its members.
	require.Len(t, schema.Options, 1)
	assert.Equal(t, "output", schema.Options[0].Name)
	assert.Equal(t, "group", schema.Options[0].Type)
	assert.Empty(t, schema.Arguments)
}

func TestExtract_ActionBorrowed(t *testing.T) {
	called := false
	action := func(_ context.Context, _ []string) error {
		called = true
		return nil
	}

	schema, err := ExtractCommand("tool", toolTree(action))
	require.NoError(t, err)

	got := schema.Subcommands["add"].Action
	require.NotNil(t, got)
	assert.Equal(t, reflect.ValueOf(command.ActionFunc(action)).Pointer(), reflect.ValueOf(got).Pointer())

	require.NoError(t, got(context.Background(), nil))
	assert.True(t, called)

	assert.Nil(t, schema.Action)
	assert.Nil(t, schema.Subcommands["list"].Action)
}

func TestExtract_Idempotent(t *testing.T) {
	first, err := Extract(map[string]*command.Command{"tool": toolTree(nil)})
	require.NoError(t, err)
	second, err := Extract(map[string]*command.Command{"tool": toolTree(nil)})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtract_EmptyGroup(t *testing.T) {
	schema, err := ExtractCommand("empty", &command.Command{
		Name:     "empty",
		Commands: []*command.Command{},
	})
	require.NoError(t, err)

	assert.NotNil(t, schema.Subcommands)
	assert.Empty(t, schema.Subcommands)
	assert.Empty(t, schema.SubcommandNames())
}

func TestExtract_MalformedParam(t *testing.T) {
	cmd := &command.Command{
		Name: "tool",
		Commands: []*command.Command{
			{
				Name: "broken",
				Params: []command.Param{
					command.Option{Name: "typeless"},
				},
			},
		},
	}

	schemas, err := Extract(map[string]*command.Command{"tool": cmd})
	assert.Nil(t, schemas)
	require.Error(t, err)

	var malformed *MalformedParamError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "MALFORMED_PARAM", malformed.Code())
	assert.Equal(t, "tool broken", malformed.CommandPath)
	assert.Equal(t, "typeless", malformed.Param)
}

func TestExtract_DuplicateChild(t *testing.T) {
	cmd := &command.Command{
		Name: "tool",
		Commands: []*command.Command{
			{Name: "sub"},
			{Name: "sub"},
		},
	}

	schemas, err := Extract(map[string]*command.Command{"tool": cmd})
	assert.Nil(t, schemas)
	require.Error(t, err)

	var duplicate *DuplicateChildError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "DUPLICATE_CHILD", duplicate.Code())
	assert.Equal(t, "tool", duplicate.CommandPath)
	assert.Equal(t, "sub", duplicate.Child)
}

func TestExtract_NilCommand(t *testing.T) {
	_, err := ExtractCommand("ghost", nil)
	require.Error(t, err)

	var invalid *InvalidCommandError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "INVALID_COMMAND", invalid.Code())
}

func TestExtract_AllOrNothing(t *testing.T) {
	// One healthy top-level command and one broken one: a single call
	// covering both fails entirely.
	commands := map[string]*command.Command{
		"good": {Name: "good"},
		"bad": {
			Name: "bad",
			Params: []command.Param{
				command.Argument{Name: ""},
			},
		},
	}

	schemas, err := Extract(commands)
	assert.Nil(t, schemas)
	require.Error(t, err)

	// Extracted individually, the healthy command still succeeds.
	schema, err := ExtractCommand("good", commands["good"])
	require.NoError(t, err)
	assert.Equal(t, "good", schema.Name)
}

func TestExtract_InputNotMutated(t *testing.T) {
	cmd := toolTree(nil)
	before := len(cmd.Commands[0].Params)

	schema, err := ExtractCommand("tool", cmd)
	require.NoError(t, err)

	schema.Subcommands["add"].Options[0].Name = "changed"
	assert.Equal(t, before, len(cmd.Commands[0].Params))
	opt := cmd.Commands[0].Params[0].(command.Option)
	assert.Equal(t, "force", opt.Name)
}
