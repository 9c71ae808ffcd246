package cli

import (
	"fmt"

	ucli "github.com/urfave/cli/v3"

	"github.com/clispect/clispect/internal/logger"
	"github.com/clispect/clispect/internal/render"
)

// ShowParams contains parameters for the Show command
type ShowParams struct {
	Root     *ucli.Command
	LogLevel string
	MaxDepth int // zero means use the configured depth
}

// Show renders the command tree schema for the terminal.
func Show(params ShowParams) error {
	log := logger.New(params.LogLevel, nil)
	cfg := resolveConfig(log)

	schemas, err := extractRoot(params.Root, cfg.IncludeHidden)
	if err != nil {
		return err
	}

	maxDepth := params.MaxDepth
	if maxDepth == 0 {
		maxDepth = cfg.MaxDepth
	}

	output := render.Render(schemas, render.Options{
		MaxDepth: maxDepth,
		NoColor:  !cfg.Color,
	})
	fmt.Println(output)

	return nil
}
