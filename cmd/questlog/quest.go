package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/orchestrators/game"
	"github.com/KirkDiggler/questlog-api/internal/render"
)

func newQuestCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quest",
		Aliases: []string{"q"},
		Short:   "Manage quests",
	}
	cmd.AddCommand(
		newQuestAddCmd(opts),
		newQuestListCmd(opts),
		newQuestStartCmd(opts),
		newQuestCompleteCmd(opts),
		newQuestDeleteCmd(opts),
		newQuestTimersCmd(opts),
	)
	return cmd
}

// parseDueDate accepts RFC 3339 or a plain YYYY-MM-DD date
func parseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.InvalidArgumentf("due date %q must be YYYY-MM-DD or RFC 3339", s)
}

func newQuestAddCmd(opts *rootOptions) *cobra.Command {
	var (
		questType   string
		difficulty  string
		duration    string
		description string
		due         string
		maxProgress int
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest with a difficulty or a timer duration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDueDate(due)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("difficulty") && duration != "" {
				difficulty = ""
			}

			return withSession(cmd, opts, func(ctx context.Context, a *app, _ *game.Snapshot) error {
				out, err := a.game.CreateQuest(ctx, &game.CreateQuestInput{
					UserID:      a.userID,
					Title:       strings.Join(args, " "),
					Description: description,
					Type:        entities.QuestType(questType),
					Difficulty:  entities.QuestDifficulty(difficulty),
					Duration:    entities.QuestDuration(duration),
					DueDate:     dueDate,
					MaxProgress: maxProgress,
				})
				if err != nil {
					return err
				}
				q := out.Quest
				fmt.Fprintln(cmd.OutOrStdout(), render.Good.Render("Quest added:")+" "+q.Title)
				fmt.Fprintln(cmd.OutOrStdout(), render.LabelValue("ID", q.ID))
				fmt.Fprintln(cmd.OutOrStdout(), render.LabelValue("Rewards",
					fmt.Sprintf("%d exp, %d gold", q.Rewards.Experience, q.Rewards.Gold)))
				if q.IsTimed() {
					fmt.Fprintln(cmd.OutOrStdout(), render.Muted.Render("start the timer with: questlog quest start "+q.ID))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&questType, "type", "t", string(entities.QuestTypeSingle), "daily, weekly, main or single")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(entities.DifficultyEasy), "easy, medium, hard or epic")
	cmd.Flags().StringVar(&duration, "duration", "", "timer length: 1h, 2h, 4h, 8h, 12h or 24h")
	cmd.Flags().StringVar(&description, "description", "", "longer description")
	cmd.Flags().StringVar(&due, "due", "", "due date")
	cmd.Flags().IntVar(&maxProgress, "max-progress", 0, "number of steps, 0 for none")
	return cmd
}

func newQuestListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the quest board",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(_ context.Context, a *app, snap *game.Snapshot) error {
				fmt.Fprintln(cmd.OutOrStdout(), render.QuestBoard(snap.Quests, a.clock.Now()))
				return nil
			})
		},
	}
}

func newQuestStartCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start <quest-id>",
		Short: "Start a timer quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(ctx context.Context, a *app, _ *game.Snapshot) error {
				out, err := a.game.StartQuest(ctx, &game.StartQuestInput{UserID: a.userID, QuestID: args[0]})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					render.IconTimer, render.Key.Render(out.Quest.Title),
					render.Muted.Render(fmt.Sprintf("ends in %s", out.Remaining)))
				return nil
			})
		},
	}
}

func newQuestCompleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <quest-id>",
		Aliases: []string{"done"},
		Short:   "Complete a quest and collect its rewards",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(ctx context.Context, a *app, _ *game.Snapshot) error {
				out, err := a.game.CompleteQuest(ctx, &game.CompleteQuestInput{UserID: a.userID, QuestID: args[0]})
				if err != nil {
					return err
				}
				if out.AlreadyCompleted {
					fmt.Fprintln(cmd.OutOrStdout(), render.Muted.Render(out.Quest.Title+" was already completed"))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.Good.Render(render.IconDone+" "+out.Quest.Title))
				fmt.Fprintln(cmd.OutOrStdout(), render.Rewards(out.Rewards))
				if p := render.Progression(out.Progression); p != "" {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			})
		},
	}
}

func newQuestDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <quest-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a quest",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(ctx context.Context, a *app, _ *game.Snapshot) error {
				if _, err := a.game.DeleteQuest(ctx, &game.DeleteQuestInput{UserID: a.userID, QuestID: args[0]}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.Muted.Render("deleted "+args[0]))
				return nil
			})
		},
	}
}

func newQuestTimersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "timers",
		Short: "Show running quest timers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(ctx context.Context, a *app, _ *game.Snapshot) error {
				out, err := a.game.QuestTimers(ctx, &game.QuestTimersInput{UserID: a.userID})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.Heading(render.IconTimer, "Timers"))
				if len(out.Timers) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), render.Muted.Render("no timers running"))
				}
				for _, t := range out.Timers {
					status := render.Warn.Render(t.Display)
					if t.Claimable {
						status = render.Good.Render("ready")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", status, render.Key.Render(t.Title), render.Muted.Render(t.QuestID))
				}
				return nil
			})
		},
	}
}
