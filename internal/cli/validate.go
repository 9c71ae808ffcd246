package cli

import (
	"fmt"
	"os"

	"github.com/clispect/clispect/internal/cerrors"
	"github.com/clispect/clispect/internal/export"
)

// Validate validates a dumped schema document against the JSON Schema.
func Validate(path string) error {
	if path == "" {
		return cerrors.NewNotFoundError("document", "no document given")
	}

	fmt.Printf("Validating: %s\n\n", path)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	result, err := export.ValidateDocument(content)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Println("✅ Document is valid!")
		return nil
	}

	fmt.Println("❌ Document has errors:")
	for i, validationErr := range result.Errors {
		fmt.Printf("%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}

	fmt.Printf("\nFound %d error(s)\n", len(result.Errors))

	return fmt.Errorf("validation failed")
}
