package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms [document]",
	Short: "Suggest rooms for unclaimed wall loops",
	Long: `Finds closed wall loops that no authored room claims and proposes a
room for each, with a generated ID and a suggested name. The document
itself is never modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runRooms,
}

func init() {
	rootCmd.AddCommand(roomsCmd)
}

func runRooms(cmd *cobra.Command, args []string) error {
	if boundaryTracer == nil {
		return errors.New("boundary tracer not configured")
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	detected := boundaryTracer.DetectRooms(doc)
	if len(detected) == 0 {
		cmd.Println("No unclaimed closed loops found.")
		return nil
	}

	cmd.Println(styleTitle.Render("Suggested rooms:"))
	cmd.Println()
	for i := range detected {
		room := &detected[i]
		cmd.Printf("  %s (%d walls)\n", room.Name, len(room.WallIDs))
		cmd.Printf("    %s\n", styleMuted.Render("id: "+room.ID))
	}
	cmd.Printf("\nTotal: %d suggested room(s)\n", len(detected))
	return nil
}
