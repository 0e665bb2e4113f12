package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flowcat/internal/bootstrap"
	goaldto "flowcat/internal/modules/goal/dto"
	"flowcat/internal/platform/config"
	"flowcat/internal/platform/randgen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "flowcat",
		Short:         "Goal tracker and pomodoro timer for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(dataDir)
		},
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.flowcat)")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newGoalCmd(&dataDir))
	root.AddCommand(newRandomCmd())
	root.AddCommand(newStatsCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func runTUI(dataDir string) error {
	app, err := loadApp(dataDir)
	if err != nil {
		return err
	}
	return bootstrap.RunTUI(app)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the flowcat terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(*dataDir)
		},
	}
}

func newGoalCmd(dataDir *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage goals"}
	goal.AddCommand(
		newGoalAddCmd(dataDir),
		newGoalListCmd(dataDir),
		newGoalEditCmd(dataDir),
		newGoalDeleteCmd(dataDir),
		newGoalCompleteCmd(dataDir),
	)
	return goal
}

func newGoalAddCmd(dataDir *string) *cobra.Command {
	var difficulty, start, end string
	var levels, pomodoros int

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.Create(context.Background(), args[0], difficulty, levels, pomodoros, start, end)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) %s, %d level(s), %d pomodoro(s) each, %s → %s\n",
				out.Name, out.ID, out.Difficulty, out.Levels, out.PomodorosPerLevel, out.Start, out.End)
			return nil
		},
	}
	add.Flags().StringVar(&difficulty, "difficulty", "Medium", "Easy|Medium|Hard")
	add.Flags().IntVar(&levels, "levels", 1, "number of levels")
	add.Flags().IntVar(&pomodoros, "pomodoros", 1, "pomodoros per level")
	add.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD (default today)")
	add.Flags().StringVar(&end, "end", "", "end date YYYY-MM-DD (default a week out)")
	return add
}

func newGoalListCmd(dataDir *string) *cobra.Command {
	var today bool
	var date string

	list := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			ctx := context.Background()
			var out []goaldto.GoalOutput
			if today || date != "" {
				out, err = app.GoalCLI.ListToday(ctx, date)
			} else {
				out, err = app.GoalCLI.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(out) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
				return nil
			}
			for _, g := range out {
				marker := " "
				if g.Active {
					marker = "●"
				}
				done := ""
				if g.Completed {
					done = "  ✓"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)  %s  level %d/%d  %d/%d pomodoros  %s → %s%s\n",
					marker, g.Name, g.ID, g.Difficulty, g.Progress, g.Levels,
					g.CurrentPomodoros, g.PomodorosPerLevel, g.Start, g.End, done)
			}
			return nil
		},
	}
	list.Flags().BoolVar(&today, "today", false, "only goals whose window contains today")
	list.Flags().StringVar(&date, "date", "", "filter by a specific day YYYY-MM-DD (implies --today)")
	return list
}

func newGoalEditCmd(dataDir *string) *cobra.Command {
	var name, difficulty, start, end string
	var levels, pomodoros int

	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a goal; unset flags keep the current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			ctx := context.Background()
			current, err := app.GoalCLI.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") {
				name = current.Name
			}
			if !cmd.Flags().Changed("difficulty") {
				difficulty = current.Difficulty
			}
			if !cmd.Flags().Changed("levels") {
				levels = current.Levels
			}
			if !cmd.Flags().Changed("pomodoros") {
				pomodoros = current.PomodorosPerLevel
			}
			if !cmd.Flags().Changed("start") {
				start = current.Start
			}
			if !cmd.Flags().Changed("end") {
				end = current.End
			}
			out, err := app.GoalCLI.Update(ctx, args[0], name, difficulty, levels, pomodoros, start, end)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", out.Name, out.ID)
			return nil
		},
	}
	edit.Flags().StringVar(&name, "name", "", "goal name")
	edit.Flags().StringVar(&difficulty, "difficulty", "", "Easy|Medium|Hard")
	edit.Flags().IntVar(&levels, "levels", 0, "number of levels")
	edit.Flags().IntVar(&pomodoros, "pomodoros", 0, "pomodoros per level")
	edit.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD")
	edit.Flags().StringVar(&end, "end", "", "end date YYYY-MM-DD")
	return edit
}

func newGoalDeleteCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.GoalCLI.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "deleted", args[0])
			return nil
		},
	}
}

func newGoalCompleteCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Complete the current level of a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.CompleteLevel(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !out.Advanced {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is already complete\n", out.Goal.Name)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s advanced to level %d/%d\n",
				out.Goal.Name, out.Goal.Progress, out.Goal.Levels)
			return nil
		},
	}
}

func newRandomCmd() *cobra.Command {
	var lo, hi int

	random := &cobra.Command{
		Use:   "random",
		Short: "Print a random integer in an inclusive range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := randgen.IntBetween(randgen.MathRand{}, lo, hi)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	random.Flags().IntVar(&lo, "min", 1, "lower bound, inclusive")
	random.Flags().IntVar(&hi, "max", 100, "upper bound, inclusive")
	return random
}

func newStatsCmd(dataDir *string) *cobra.Command {
	var days int

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show completed work sessions per day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Stats(context.Background(), days)
			if err != nil {
				return err
			}
			if len(out) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions recorded")
				return nil
			}
			for _, d := range out {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %d\n", d.Day, d.Sessions)
			}
			return nil
		},
	}
	stats.Flags().IntVar(&days, "days", 7, "number of most recent days")
	return stats
}
