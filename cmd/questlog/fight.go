package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/questlog-api/internal/combat"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/orchestrators/game"
	"github.com/KirkDiggler/questlog-api/internal/render"
)

// parseAction reads one prompt line: attack, skill <id> or flee
func parseAction(line string) (combat.Action, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return combat.Action{}, errors.InvalidArgument("enter attack, skill <id> or flee")
	}

	switch fields[0] {
	case "a", "attack":
		return combat.Action{Type: combat.ActionAttack}, nil
	case "f", "flee", "run":
		return combat.Action{Type: combat.ActionFlee}, nil
	case "s", "skill", "cast":
		if len(fields) < 2 {
			return combat.Action{}, errors.InvalidArgument("skill needs an id")
		}
		return combat.Action{Type: combat.ActionSkill, SkillID: fields[1]}, nil
	default:
		return combat.Action{}, errors.InvalidArgumentf("unknown action %q", fields[0])
	}
}

func newFightCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fight [monster-id]",
		Short: "Fight a monster, a random one when no id is given",
		Long: "Starts an encounter and reads actions from stdin, one per line: " +
			"attack, skill <id> or flee. End of input flees.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			monsterID := ""
			if len(args) == 1 {
				monsterID = args[0]
			}

			return withSession(cmd, opts, func(ctx context.Context, a *app, _ *game.Snapshot) error {
				started, err := a.game.StartCombat(ctx, &game.StartCombatInput{UserID: a.userID, MonsterID: monsterID})
				if err != nil {
					return err
				}
				return fightLoop(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), a, started.Combat)
			})
		},
	}
	return cmd
}

func fightLoop(ctx context.Context, in io.Reader, out io.Writer, a *app, state *combat.State) error {
	limit := a.cfg.Combat.LogLimit
	fmt.Fprintln(out, render.Battle(state, limit))

	scanner := bufio.NewScanner(in)
	for state.IsActive {
		if ctx.Err() != nil {
			break
		}
		fmt.Fprint(out, render.Key.Render("> "))
		if !scanner.Scan() {
			break
		}

		action, err := parseAction(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, render.Warn.Render(errors.GetMessage(err)))
			continue
		}

		res, err := a.game.PerformCombatAction(ctx, &game.CombatActionInput{UserID: a.userID, Action: action})
		if err != nil {
			return err
		}
		state = res.Combat
		fmt.Fprintln(out, render.Battle(state, limit))
		if p := render.Progression(res.Progression); p != "" {
			fmt.Fprintln(out, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read action")
	}

	ended, err := a.game.EndCombat(context.WithoutCancel(ctx), &game.EndCombatInput{UserID: a.userID})
	if err != nil {
		return err
	}
	if state.IsActive {
		fmt.Fprintln(out, render.Warn.Render("You slip away from the fight."))
	}
	fmt.Fprintln(out, render.LabelValue("Result", ended.Result))
	return nil
}
