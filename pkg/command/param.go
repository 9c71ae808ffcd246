package command

// Param is a single parameter declaration on a command. It is a closed
// union: the only implementations are Option, Argument and FlagGroup.
// Classification into the schema's option/argument buckets happens once,
// at extraction time, by an exhaustive type switch over these variants.
type Param interface {
	param()
}

// Type is the semantic type of a parameter value. Name is the declared
// type name ("string", "int", ...); Choices is populated only for the
// choice type and lists the allowed values in declaration order.
type Type struct {
	Name    string
	Choices []string
}

// Built-in parameter types.
var (
	StringType   = Type{Name: "string"}
	IntType      = Type{Name: "int"}
	FloatType    = Type{Name: "float"}
	BoolType     = Type{Name: "bool"}
	DurationType = Type{Name: "duration"}
)

// Choice returns an enumeration type constrained to the given string
// values. Order is preserved.
func Choice(values ...string) Type {
	return Type{Name: "choice", Choices: values}
}

// IsChoice reports whether the type is an enumeration of strings.
func (t Type) IsChoice() bool {
	return t.Name == "choice" && len(t.Choices) > 0
}

// Option is a named, flag-style parameter.
type Option struct {
	Name     string
	Type     Type
	Default  any
	Required bool
	Help     string
}

func (Option) param() {}

// Argument is a positional parameter. Positional parameters carry no
// help text of their own; the command help documents them.
type Argument struct {
	Name     string
	Type     Type
	Default  any
	Required bool
}

func (Argument) param() {}

// FlagGroup is a named set of options declared together, such as a
// mutually exclusive group. The extractor classifies the group itself
// into the options bucket of the owning command.
type FlagGroup struct {
	Name    string
	Help    string
	Options []Option
}

func (FlagGroup) param() {}
