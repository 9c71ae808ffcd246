package introspect

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/clispect/clispect/pkg/command"
)

// FromCLI converts a urfave/cli command tree into the declarative
// model, so a live CLI application can be extracted like any
// hand-built tree. Flags become options; positional parameters are
// recovered from ArgsUsage (urfave/cli declares them as free text
// only, so they are all typed as strings); subcommands are converted
// recursively. Hidden commands and hidden flags are skipped unless
// includeHidden is set.
//
// urfave/cli has no enumeration type, so the converted tree never
// contains choice-typed parameters.
func FromCLI(cmd *cli.Command, includeHidden bool) *command.Command {
	if cmd == nil {
		return nil
	}

	converted := &command.Command{
		Name: cmd.Name,
		Help: cmd.Usage,
	}

	if action := cmd.Action; action != nil {
		src := cmd
		converted.Action = func(ctx context.Context, _ []string) error {
			return action(ctx, src)
		}
	}

	for _, flag := range cmd.Flags {
		if flagHidden(flag) && !includeHidden {
			continue
		}
		converted.Params = append(converted.Params, optionFromFlag(flag))
	}
	converted.Params = append(converted.Params, argumentsFromUsage(cmd.ArgsUsage)...)

	for _, sub := range cmd.Commands {
		if sub.Hidden && !includeHidden {
			continue
		}
		converted.Commands = append(converted.Commands, FromCLI(sub, includeHidden))
	}

	return converted
}

// optionFromFlag maps a urfave/cli flag to an option declaration. The
// type name comes from the concrete flag type; unknown flag types fall
// back to string.
func optionFromFlag(flag cli.Flag) command.Option {
	switch f := flag.(type) {
	case *cli.BoolFlag:
		return command.Option{Name: f.Name, Type: command.BoolType, Default: f.Value, Required: f.Required, Help: f.Usage}
	case *cli.StringFlag:
		return command.Option{Name: f.Name, Type: command.StringType, Default: f.Value, Required: f.Required, Help: f.Usage}
	case *cli.IntFlag:
		return command.Option{Name: f.Name, Type: command.IntType, Default: f.Value, Required: f.Required, Help: f.Usage}
	case *cli.FloatFlag:
		return command.Option{Name: f.Name, Type: command.FloatType, Default: f.Value, Required: f.Required, Help: f.Usage}
	case *cli.DurationFlag:
		return command.Option{Name: f.Name, Type: command.DurationType, Default: f.Value, Required: f.Required, Help: f.Usage}
	default:
		name := ""
		if names := flag.Names(); len(names) > 0 {
			name = names[0]
		}
		return command.Option{Name: name, Type: command.StringType}
	}
}

// flagHidden reports whether the flag is marked hidden. Unknown flag
// types are never hidden.
func flagHidden(flag cli.Flag) bool {
	switch f := flag.(type) {
	case *cli.BoolFlag:
		return f.Hidden
	case *cli.StringFlag:
		return f.Hidden
	case *cli.IntFlag:
		return f.Hidden
	case *cli.FloatFlag:
		return f.Hidden
	case *cli.DurationFlag:
		return f.Hidden
	default:
		return false
	}
}

// argumentsFromUsage parses an ArgsUsage string such as
// "<alias> [args...]" into positional declarations: <name> is
// required, [name] is optional, a trailing "..." marks repetition and
// is stripped. Tokens in any other form are ignored.
func argumentsFromUsage(usage string) []command.Param {
	var params []command.Param
	for _, token := range strings.Fields(usage) {
		required := false
		switch {
		case strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">"):
			required = true
		case strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]"):
			required = false
		default:
			continue
		}
		name := strings.TrimSuffix(token[1:len(token)-1], "...")
		if name == "" {
			continue
		}
		params = append(params, command.Argument{
			Name:     name,
			Type:     command.StringType,
			Required: required,
		})
	}
	return params
}
