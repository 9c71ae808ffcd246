package introspect

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/clispect/clispect/pkg/command"
)

func TestFromCLI_Flags(t *testing.T) {
	app := &cli.Command{
		Name:  "app",
		Usage: "Test app",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "cfg.yml", Usage: "Config file"},
			&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			&cli.IntFlag{Name: "retries", Value: 3, Required: true},
			&cli.FloatFlag{Name: "ratio"},
			&cli.DurationFlag{Name: "timeout", Value: 5 * time.Second},
		},
	}

	converted := FromCLI(app, false)
	require.NotNil(t, converted)
	assert.Equal(t, "app", converted.Name)
	assert.Equal(t, "Test app", converted.Help)
	require.Len(t, converted.Params, 5)

	tests := []struct {
		name     string
		typeName string
		required bool
	}{
		{"config", "string", false},
		{"verbose", "bool", false},
		{"retries", "int", true},
		{"ratio", "float", false},
		{"timeout", "duration", false},
	}
	for i, tt := range tests {
		opt, ok := converted.Params[i].(command.Option)
		require.True(t, ok)
		assert.Equal(t, tt.name, opt.Name)
		assert.Equal(t, tt.typeName, opt.Type.Name)
		assert.Equal(t, tt.required, opt.Required)
	}

	first := converted.Params[0].(command.Option)
	assert.Equal(t, "cfg.yml", first.Default)
	assert.Equal(t, "Config file", first.Help)
}

func TestFromCLI_ArgsUsage(t *testing.T) {
	app := &cli.Command{
		Name:      "exec",
		ArgsUsage: "<alias> [args...]",
	}

	converted := FromCLI(app, false)
	require.Len(t, converted.Params, 2)

	alias := converted.Params[0].(command.Argument)
	assert.Equal(t, "alias", alias.Name)
	assert.True(t, alias.Required)

	args := converted.Params[1].(command.Argument)
	assert.Equal(t, "args", args.Name)
	assert.False(t, args.Required)
}

func TestFromCLI_HiddenCommands(t *testing.T) {
	app := &cli.Command{
		Name: "app",
		Commands: []*cli.Command{
			{Name: "visible"},
			{Name: "internal", Hidden: true},
		},
	}

	converted := FromCLI(app, false)
	require.Len(t, converted.Commands, 1)
	assert.Equal(t, "visible", converted.Commands[0].Name)

	withHidden := FromCLI(app, true)
	require.Len(t, withHidden.Commands, 2)
}

func TestFromCLI_HiddenFlags(t *testing.T) {
	app := &cli.Command{
		Name: "app",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.BoolFlag{Name: "trace", Hidden: true},
			&cli.IntFlag{Name: "workers", Hidden: true},
		},
	}

	converted := FromCLI(app, false)
	require.Len(t, converted.Params, 1)
	opt := converted.Params[0].(command.Option)
	assert.Equal(t, "config", opt.Name)

	withHidden := FromCLI(app, true)
	require.Len(t, withHidden.Params, 3)
}

func TestFromCLI_ExtractRoundTrip(t *testing.T) {
	ran := false
	app := &cli.Command{
		Name:  "app",
		Usage: "Test app",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run it",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force"},
				},
				Action: func(_ context.Context, _ *cli.Command) error {
					ran = true
					return nil
				},
			},
		},
	}

	schema, err := ExtractCommand("app", FromCLI(app, false))
	require.NoError(t, err)

	run := schema.Subcommands["run"]
	require.NotNil(t, run)
	assert.Equal(t, "Run it", run.Docstring)
	require.Len(t, run.Options, 1)
	assert.Equal(t, "bool", run.Options[0].Type)

	require.NotNil(t, run.Action)
	require.NoError(t, run.Action(context.Background(), nil))
	assert.True(t, ran)
}

func TestFromCLI_Nil(t *testing.T) {
	assert.Nil(t, FromCLI(nil, false))
}

func TestArgumentsFromUsage(t *testing.T) {
	tests := []struct {
		name  string
		usage string
		want  int
	}{
		{"empty", "", 0},
		{"plain text ignored", "some free text", 0},
		{"single required", "<file>", 1},
		{"single optional", "[file]", 1},
		{"mixed", "<src> <dst> [mode]", 3},
		{"empty brackets ignored", "[] <x>", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, argumentsFromUsage(tt.usage), tt.want)
		})
	}
}
