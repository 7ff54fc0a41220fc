package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate [document]",
	Short: "Check a document for structural problems",
	Long: `Checks walls, rooms and fixtures for structural problems such as
zero-length walls, rooms with too few walls or out-of-range fixture
positions. Exits non-zero when errors are found; warnings never fail
the check.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output findings as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validationService == nil {
		return errors.New("validation service not configured")
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	result := validationService.Validate(doc)

	if validateJSON {
		if err := outputJSON(cmd, result); err != nil {
			return err
		}
	} else {
		if len(result.Errors) > 0 {
			cmd.Println(styleError.Render(fmt.Sprintf("Errors (%d):", len(result.Errors))))
			for _, issue := range result.Errors {
				cmd.Printf("  [%s] %s", issue.Code, issue.Message)
				if issue.ElementID != "" {
					cmd.Printf(" (%s %s)", issue.ElementType, issue.ElementID)
				}
				cmd.Println()
			}
		}

		if result.HasWarnings() {
			cmd.Println(styleWarning.Render(fmt.Sprintf("Warnings (%d):", len(result.Warnings))))
			for _, issue := range result.Warnings {
				cmd.Printf("  [%s] %s", issue.Code, issue.Message)
				if issue.ElementID != "" {
					cmd.Printf(" (%s %s)", issue.ElementType, issue.ElementID)
				}
				cmd.Println()
			}
		}

		if result.IsValid && !result.HasWarnings() {
			cmd.Println(styleSuccess.Render("Document is valid."))
		} else if result.IsValid {
			cmd.Println("Document is valid (with warnings).")
		}
	}

	if !result.IsValid {
		return fmt.Errorf("validation failed: %d error(s)", len(result.Errors))
	}
	return nil
}
