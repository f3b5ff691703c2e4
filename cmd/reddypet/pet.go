package reddypet

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"reddypet/internal/pet"
	"reddypet/internal/ui"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the pet after catching up on elapsed time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, "", "")
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename NAME",
	Short: "Give the pet a new name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("name must not be blank")
		}
		return runAction(cmd, pet.ActionRename, name)
	},
}

// actionCmd builds a one-shot command for an action without arguments.
func actionCmd(action pet.Action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(action),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, action, "")
		},
	}
}

// runAction catches up decay, applies action (if any) and prints the pet.
func runAction(cmd *cobra.Command, action pet.Action, arg string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return withController(cmd.Context(), cfg, func(ctrl *pet.Controller) error {
		pr := ctrl.Tick(cmd.Context())
		if action != "" {
			pr = ctrl.Dispatch(cmd.Context(), action, arg)
		}
		return printView(cmd.OutOrStdout(), ui.BuildView(pr, false))
	})
}

func printView(w io.Writer, v ui.View) error {
	if statusJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", v.Name, ui.RenderCard(v, ui.CardOptions{}))
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&statusJSON, "json", false, "Print the pet view as JSON")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(actionCmd(pet.ActionFeed, "Feed the pet"))
	rootCmd.AddCommand(actionCmd(pet.ActionPlay, "Play with the pet"))
	rootCmd.AddCommand(actionCmd(pet.ActionClean, "Clean up after the pet"))
	rootCmd.AddCommand(actionCmd(pet.ActionSleep, "Let the pet nap"))
	rootCmd.AddCommand(actionCmd(pet.ActionReset, "Hatch a new egg in place of the current pet"))
	rootCmd.AddCommand(renameCmd)
}
