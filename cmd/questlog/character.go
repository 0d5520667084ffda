package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/orchestrators/game"
	"github.com/KirkDiggler/questlog-api/internal/render"
	"github.com/KirkDiggler/questlog-api/internal/repositories/catalog"
)

func newCharacterCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "character",
		Aliases: []string{"char", "me"},
		Short:   "Show and train your character",
	}
	cmd.AddCommand(
		newCharacterShowCmd(opts),
		newStatCmd(opts, "allocate", "Spend a stat point", func(s game.Service) statFunc { return s.AllocateStat }),
		newStatCmd(opts, "deallocate", "Refund a stat point", func(s game.Service) statFunc { return s.DeallocateStat }),
		newCharacterResetCmd(opts),
	)
	return cmd
}

type statFunc func(ctx context.Context, input *game.StatInput) (*game.StatOutput, error)

func newCharacterShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the character sheet and inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(ctx context.Context, a *app, snap *game.Snapshot) error {
				unlocked, err := a.catalog.ListUnlockedSkills(ctx, &catalog.ListUnlockedSkillsInput{UserID: a.userID})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.CharacterSheet(snap.Profile, unlocked.Skills))
				fmt.Fprintln(cmd.OutOrStdout(), render.Inventory(snap.Inventory))
				return nil
			})
		},
	}
}

func newStatCmd(opts *rootOptions, use, short string, action func(game.Service) statFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <str|dex|int>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stat, err := entities.ParseStat(args[0])
			if err != nil {
				return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid stat")
			}
			return withSession(cmd, opts, func(ctx context.Context, a *app, _ *game.Snapshot) error {
				out, err := action(a.game)(ctx, &game.StatInput{UserID: a.userID, Stat: stat})
				if err != nil {
					return err
				}
				return printStatOutput(cmd, out)
			})
		},
	}
}

func newCharacterResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Refund every spent stat point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(ctx context.Context, a *app, _ *game.Snapshot) error {
				out, err := a.game.ResetStats(ctx, &game.ResetStatsInput{UserID: a.userID})
				if err != nil {
					return err
				}
				return printStatOutput(cmd, out)
			})
		},
	}
}

// printStatOutput reports a rejected stat change as a failed precondition so
// the exit status reflects it
func printStatOutput(cmd *cobra.Command, out *game.StatOutput) error {
	if out.Result != nil && out.Result.Rejected {
		return errors.FailedPrecondition(out.Result.Message)
	}
	if p := render.Progression(out.Result); p != "" {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	ch := out.Character
	fmt.Fprintf(cmd.OutOrStdout(), "STR %d  DEX %d  INT %d  %s\n",
		ch.Stats.Strength, ch.Stats.Dexterity, ch.Stats.Intelligence,
		render.Muted.Render(fmt.Sprintf("(%d points left, %s)", ch.Stats.AvailablePoints, ch.Class)))
	return nil
}
