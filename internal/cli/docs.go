package cli

import (
	"fmt"
	"os"

	ucli "github.com/urfave/cli/v3"

	"github.com/clispect/clispect/internal/docgen"
	"github.com/clispect/clispect/internal/export"
	"github.com/clispect/clispect/internal/logger"
)

// DocsParams contains parameters for the Docs command
type DocsParams struct {
	Root     *ucli.Command
	LogLevel string
	Template string // path to a custom template, empty for the built-in one
	Output   string
}

// Docs renders markdown reference documentation for the command tree.
func Docs(params DocsParams) error {
	log := logger.New(params.LogLevel, nil)
	cfg := resolveConfig(log)

	schemas, err := extractRoot(params.Root, cfg.IncludeHidden)
	if err != nil {
		return err
	}

	tmpl := docgen.DefaultTemplate()
	if params.Template != "" {
		content, err := os.ReadFile(params.Template)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", params.Template, err)
		}
		tmpl = string(content)
		log.Debug().Str("template", params.Template).Msg("Using custom template")
	}

	output, err := docgen.MarkdownWithTemplate(export.NewDocument(schemas), tmpl)
	if err != nil {
		return err
	}

	return writeOutput([]byte(output), params.Output)
}
