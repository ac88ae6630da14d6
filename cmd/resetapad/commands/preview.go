package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/resetalabs/resetapad/pkg/preview"
	"github.com/resetalabs/resetapad/pkg/render"
	"github.com/resetalabs/resetapad/pkg/reseta"
)

var previewOutput string

var previewCmd = &cobra.Command{
	Use:   "preview <preset.yaml>",
	Short: "Render a preset file as preview HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := reseta.LoadPresetFile(args[0])
		if err != nil {
			return err
		}

		sheet, err := preview.New().Render(cmd.Context(), &preset.Template, render.Options{})
		if err != nil {
			return err
		}

		if previewOutput == "" {
			cmd.Println(string(sheet))
			return nil
		}
		if err := os.WriteFile(previewOutput, sheet, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", previewOutput, err)
		}
		cmd.Printf("Preview written to %s\n", previewOutput)
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "output file (stdout if empty)")
	rootCmd.AddCommand(previewCmd)
}
