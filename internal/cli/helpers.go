// Package cli implements the clispect commands.
package cli

import (
	"fmt"
	"os"

	ucli "github.com/urfave/cli/v3"

	"github.com/clispect/clispect/internal/cerrors"
	"github.com/clispect/clispect/internal/config"
	"github.com/clispect/clispect/internal/export"
	"github.com/clispect/clispect/internal/logger"
	"github.com/clispect/clispect/pkg/command"
	"github.com/clispect/clispect/pkg/introspect"
)

// resolveConfig loads the config file from the current directory, or
// falls back to defaults. An unreadable or invalid file is logged and
// ignored rather than failing the command.
func resolveConfig(log *logger.Logger) config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Default()
	}

	path, found := config.Discover(cwd)
	if !found {
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Ignoring invalid config file")
		return config.Default()
	}

	log.Debug().Str("path", path).Msg("Loaded config file")
	return *cfg
}

// extractRoot converts a urfave/cli tree and extracts its schema.
func extractRoot(root *ucli.Command, includeHidden bool) (map[string]*introspect.CommandSchema, error) {
	model := introspect.FromCLI(root, includeHidden)
	if model == nil {
		return nil, cerrors.NewNotFoundError("command tree", "no command tree to introspect")
	}

	schemas, err := introspect.Extract(map[string]*command.Command{model.Name: model})
	if err != nil {
		return nil, fmt.Errorf("failed to extract schema: %w", err)
	}
	return schemas, nil
}

// encodeDocument serializes the document in the requested format.
func encodeDocument(doc *export.Document, format string) ([]byte, error) {
	switch format {
	case config.FormatJSON:
		return doc.JSON()
	case config.FormatYAML:
		return doc.YAML()
	default:
		msg := fmt.Sprintf("unknown format %q: must be %s or %s", format, config.FormatJSON, config.FormatYAML)
		return nil, cerrors.NewValidationError("format", msg, nil)
	}
}

// writeOutput prints data to stdout, or writes it to outputPath when
// one is given.
func writeOutput(data []byte, outputPath string) error {
	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	fmt.Printf("Written to: %s\n", outputPath)
	return nil
}
