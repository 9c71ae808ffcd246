// Package render displays an extracted schema tree in the terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/clispect/clispect/pkg/introspect"
)

// styles groups the lipgloss styles used for one rendering pass.
type styles struct {
	command  lipgloss.Style
	section  lipgloss.Style
	name     lipgloss.Style
	typ      lipgloss.Style
	required lipgloss.Style
	subtle   lipgloss.Style
}

func coloredStyles() styles {
	return styles{
		command:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		section:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		name:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		typ:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		required: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func plainStyles() styles {
	return styles{
		command:  lipgloss.NewStyle(),
		section:  lipgloss.NewStyle(),
		name:     lipgloss.NewStyle(),
		typ:      lipgloss.NewStyle(),
		required: lipgloss.NewStyle(),
		subtle:   lipgloss.NewStyle(),
	}
}

// Options controls rendering.
type Options struct {
	// MaxDepth limits how deep subcommands are rendered. Zero means
	// unlimited.
	MaxDepth int
	// NoColor disables styling.
	NoColor bool
}

// Render renders the schema tree to a string. Top-level commands are
// sorted by name; subcommands keep declaration order.
func Render(schemas map[string]*introspect.CommandSchema, opts Options) string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	st := coloredStyles()
	if opts.NoColor {
		st = plainStyles()
	}

	var b strings.Builder
	for _, name := range names {
		renderCommand(&b, schemas[name], 0, opts, st)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderCommand(b *strings.Builder, schema *introspect.CommandSchema, depth int, opts Options, st styles) {
	pad := strings.Repeat("   ", depth)

	header := st.command.Render(schema.Name)
	if schema.Docstring != "" {
		header += st.subtle.Render(" · " + firstLine(schema.Docstring))
	}
	b.WriteString(pad + header + "\n")

	for _, opt := range schema.Options {
		b.WriteString(pad + "   " + renderOption(opt, st) + "\n")
	}
	for _, arg := range schema.Arguments {
		b.WriteString(pad + "   " + renderArgument(arg, st) + "\n")
	}

	if len(schema.Subcommands) == 0 {
		return
	}
	if opts.MaxDepth > 0 && depth+1 >= opts.MaxDepth {
		b.WriteString(pad + "   " + st.subtle.Render(fmt.Sprintf("… %d subcommand(s)", len(schema.Subcommands))) + "\n")
		return
	}

	b.WriteString(pad + "   " + st.section.Render("Commands:") + "\n")
	for _, name := range schema.SubcommandNames() {
		renderCommand(b, schema.Subcommands[name], depth+2, opts, st)
	}
}

func renderOption(opt introspect.OptionSchema, st styles) string {
	line := st.name.Render("--"+opt.Name) + " " + st.typ.Render(opt.Type)
	if opt.Required {
		line += " " + st.required.Render("(required)")
	}
	if opt.Default != nil {
		line += " " + st.subtle.Render(fmt.Sprintf("(default: %v)", opt.Default))
	}
	if opt.Help != "" {
		line += " " + st.subtle.Render(firstLine(opt.Help))
	}
	return line
}

func renderArgument(arg introspect.ArgumentSchema, st styles) string {
	typeName := arg.Type
	if len(arg.Choices) > 0 {
		typeName = "{" + strings.Join(arg.Choices, "|") + "}"
	}
	line := st.name.Render(arg.Name) + " " + st.typ.Render(typeName)
	if arg.Required {
		line += " " + st.required.Render("(required)")
	}
	if arg.Default != nil {
		line += " " + st.subtle.Render(fmt.Sprintf("(default: %v)", arg.Default))
	}
	return line
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
