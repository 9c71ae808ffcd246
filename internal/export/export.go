// Package export turns an extracted schema tree into documents that
// downstream tooling can consume: JSON and YAML renditions of the
// command hierarchy. Parent back-references and action callables are
// deliberately absent from the wire format.
package export

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/clispect/clispect/pkg/introspect"
)

// DocumentVersion is the current version of the document format.
const DocumentVersion = "v1"

// Document is the serializable envelope around a set of extracted
// top-level commands.
type Document struct {
	Version  string       `json:"version" yaml:"version"`
	Commands []CommandDoc `json:"commands" yaml:"commands"`
}

// CommandDoc is the wire form of one command node. Subcommands are a
// list, in declaration order, since JSON objects do not guarantee key
// order.
type CommandDoc struct {
	Name        string        `json:"name" yaml:"name"`
	Path        string        `json:"path" yaml:"path"`
	Help        string        `json:"help,omitempty" yaml:"help,omitempty"`
	Callable    bool          `json:"callable" yaml:"callable"`
	Options     []OptionDoc   `json:"options,omitempty" yaml:"options,omitempty"`
	Arguments   []ArgumentDoc `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Subcommands []CommandDoc  `json:"subcommands,omitempty" yaml:"subcommands,omitempty"`
}

// OptionDoc is the wire form of one named parameter.
type OptionDoc struct {
	Name     string   `json:"name" yaml:"name"`
	Type     string   `json:"type" yaml:"type"`
	Default  any      `json:"default,omitempty" yaml:"default,omitempty"`
	Required bool     `json:"required" yaml:"required"`
	Help     string   `json:"help,omitempty" yaml:"help,omitempty"`
	Choices  []string `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// ArgumentDoc is the wire form of one positional parameter.
type ArgumentDoc struct {
	Name     string   `json:"name" yaml:"name"`
	Type     string   `json:"type" yaml:"type"`
	Required bool     `json:"required" yaml:"required"`
	Default  any      `json:"default,omitempty" yaml:"default,omitempty"`
	Choices  []string `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// NewDocument builds a document from extracted schemas. Top-level
// commands are sorted by name for deterministic output; below the top
// level, declaration order is preserved.
func NewDocument(schemas map[string]*introspect.CommandSchema) *Document {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := &Document{
		Version:  DocumentVersion,
		Commands: make([]CommandDoc, 0, len(names)),
	}
	for _, name := range names {
		doc.Commands = append(doc.Commands, commandDoc(schemas[name]))
	}
	return doc
}

func commandDoc(schema *introspect.CommandSchema) CommandDoc {
	doc := CommandDoc{
		Name:     schema.Name,
		Path:     schema.Path(),
		Help:     schema.Docstring,
		Callable: schema.Action != nil,
	}

	for _, opt := range schema.Options {
		doc.Options = append(doc.Options, OptionDoc{
			Name:     opt.Name,
			Type:     opt.Type,
			Default:  opt.Default,
			Required: opt.Required,
			Help:     opt.Help,
			Choices:  opt.Choices,
		})
	}
	for _, arg := range schema.Arguments {
		doc.Arguments = append(doc.Arguments, ArgumentDoc{
			Name:     arg.Name,
			Type:     arg.Type,
			Required: arg.Required,
			Default:  arg.Default,
			Choices:  arg.Choices,
		})
	}
	for _, name := range schema.SubcommandNames() {
		doc.Subcommands = append(doc.Subcommands, commandDoc(schema.Subcommands[name]))
	}

	return doc
}

// JSON encodes the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML encodes the document as YAML.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
