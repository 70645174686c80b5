package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

func newGoalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage your reading goals",
	}
	cmd.AddCommand(
		newGoalsListCmd(),
		newGoalsAddCmd(),
		newGoalsProgressCmd(),
		newGoalsDeleteCmd(),
	)
	return cmd
}

func newGoalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your goals",
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			goals, err := a.Client.ListGoals(ctx)
			if err != nil {
				return errors.New("could not load goals")
			}
			if len(goals) == 0 {
				fmt.Println("No goals yet, try `bookmarkd goals add`")
				return nil
			}
			now := time.Now()
			for _, g := range goals {
				state := fmt.Sprintf("%d%%", g.PercentComplete())
				switch {
				case g.Complete():
					state = "complete"
				case g.Overdue(now):
					state += ", overdue"
				}
				fmt.Printf("[%d] %s: %d/%d %s (%s)\n", g.ID, g.Description, g.Progress, g.Total, g.Type, state)
			}
			return nil
		}),
	}
}

func newGoalsAddCmd() *cobra.Command {
	var goalType, duration string
	var amount int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			if amount <= 0 {
				return errors.New("--amount must be a positive integer")
			}
			req := model.CreateGoalRequest{
				Amount:   amount,
				Type:     model.GoalType(goalType),
				Duration: model.GoalDuration(duration),
			}
			if err := a.Client.CreateGoal(ctx, req); err != nil {
				return errors.New("could not create goal")
			}
			fmt.Println("Goal created")
			return nil
		}),
	}
	cmd.Flags().IntVar(&amount, "amount", 0, "target amount")
	cmd.Flags().StringVar(&goalType, "type", string(model.GoalBooksRead), `goal type: "books read", "pages read" or "hours read"`)
	cmd.Flags().StringVar(&duration, "duration", string(model.DurationThisMonth), `duration: "this week", "this month", "this year" or the "next *" variants`)
	return cmd
}

func newGoalsProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <goal-id> <value>",
		Short: "Update a goal's progress",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			goalID, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("invalid goal id %q", args[0])
			}
			progress, err := strconv.Atoi(args[1])
			if err != nil || progress < 0 {
				return errors.Errorf("invalid progress %q", args[1])
			}
			if err := a.Client.UpdateGoalProgress(ctx, goalID, progress); err != nil {
				return errors.New("could not update goal")
			}
			fmt.Println("Goal updated")
			return nil
		}),
	}
}

func newGoalsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <goal-id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			goalID, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("invalid goal id %q", args[0])
			}
			if err := a.Client.DeleteGoal(ctx, goalID); err != nil {
				return errors.New("could not delete goal")
			}
			fmt.Println("Goal deleted")
			return nil
		}),
	}
}
