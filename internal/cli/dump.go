package cli

import (
	ucli "github.com/urfave/cli/v3"

	"github.com/clispect/clispect/internal/export"
	"github.com/clispect/clispect/internal/logger"
)

// DumpParams contains parameters for the Dump command
type DumpParams struct {
	Root     *ucli.Command
	LogLevel string
	Format   string // empty means use the configured format
	Output   string
}

// Dump introspects the command tree and prints its schema document.
func Dump(params DumpParams) error {
	log := logger.New(params.LogLevel, nil)
	cfg := resolveConfig(log)

	schemas, err := extractRoot(params.Root, cfg.IncludeHidden)
	if err != nil {
		return err
	}

	format := params.Format
	if format == "" {
		format = cfg.Format
	}

	doc := export.NewDocument(schemas)
	data, err := encodeDocument(doc, format)
	if err != nil {
		return err
	}

	log.Debug().
		Int("commands", len(doc.Commands)).
		Str("format", format).
		Msg("Schema extracted")

	return writeOutput(data, params.Output)
}
