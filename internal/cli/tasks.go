package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sandeepkv93/daybook/internal/commands"
	"github.com/sandeepkv93/daybook/internal/model"
	"github.com/sandeepkv93/daybook/internal/storage"
	"github.com/sandeepkv93/daybook/internal/store"
	"github.com/spf13/cobra"
)

func newAddCmd(flags *globalFlags) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := commands.Command{
				Type: commands.TypeAdd,
				Raw:  strings.Join(args, " "),
				Add:  &commands.AddArgs{Title: strings.Join(args, " "), Description: description},
			}
			return runIntent(cmd, flags, parsed)
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	return cmd
}

// newToggleCmd builds the id-taking subcommands. The argument goes through the
// palette parser so "#3" and "3" are both accepted.
func newToggleCmd(flags *globalFlags, verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := commands.Parse(verb + " " + args[0])
			if err != nil {
				return err
			}
			return runIntent(cmd, flags, parsed)
		},
	}
}

func runIntent(cmd *cobra.Command, flags *globalFlags, parsed commands.Command) error {
	out := cmd.OutOrStdout()
	return withSession(cmd.Context(), flags, func(sess *session) error {
		res, err := commands.Execute(parsed, storeHandlers(cmd.Context(), sess.store))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, res.Message)
		return nil
	})
}

// storeHandlers applies intents straight to the store. Unknown ids are not errors.
func storeHandlers(ctx context.Context, s *store.TaskStore) commands.Handlers {
	toggle := func(op func(context.Context, int) (model.Task, bool, error), describe func(model.Task) string) func(commands.TaskArgs) (commands.Result, error) {
		return func(a commands.TaskArgs) (commands.Result, error) {
			task, found, err := op(ctx, a.ID)
			if !found {
				return commands.Result{Message: fmt.Sprintf("no task with id %d", a.ID)}, nil
			}
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: describe(task)}, nil
		}
	}

	return commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, err := s.Add(ctx, a.Title, a.Description)
			if errors.Is(err, model.ErrEmptyTitle) {
				return commands.Result{}, errors.New("please enter a task title")
			}
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added #%d %s", task.ID, task.Title)}, nil
		},
		Important: toggle(s.ToggleImportant, func(t model.Task) string {
			if t.Important {
				return fmt.Sprintf("#%d marked as important", t.ID)
			}
			return fmt.Sprintf("#%d is no longer important", t.ID)
		}),
		Done: toggle(s.ToggleCompleted, func(t model.Task) string {
			if t.Completed {
				return fmt.Sprintf("#%d marked as completed", t.ID)
			}
			return fmt.Sprintf("#%d is active again", t.ID)
		}),
		Delete: toggle(s.Delete, func(t model.Task) string {
			return fmt.Sprintf("deleted #%d %s", t.ID, t.Title)
		}),
	}
}

func newListCmd(flags *globalFlags) *cobra.Command {
	var filterName string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, ok := model.ParseFilter(filterName)
			if !ok {
				return fmt.Errorf("unknown filter %q (all, important, recent)", filterName)
			}
			return withSession(cmd.Context(), flags, func(sess *session) error {
				writeList(cmd.OutOrStdout(), model.Project(sess.store.Tasks(), filter, sess.store.Now()), filter)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&filterName, "filter", string(model.FilterAll), "all, important or recent")
	return cmd
}

func writeList(w io.Writer, tasks []model.Task, filter model.Filter) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, model.EmptyMessage(filter))
		return
	}
	for _, t := range tasks {
		star := " "
		if t.Important {
			star = "*"
		}
		check := " "
		if t.Completed {
			check = "x"
		}
		fmt.Fprintf(w, "%3d [%s] %s %s  (%s)\n", t.ID, check, star, t.Title, t.Date)
		if t.Description != model.DefaultDescription {
			fmt.Fprintf(w, "          %s\n", strings.ReplaceAll(t.Description, "\n", "\n          "))
		}
	}
	fmt.Fprintf(w, "tasks: %d\n", len(tasks))
}

func newResetCmd(flags *globalFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every task and restart ids at 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset removes all tasks; pass --yes to confirm")
			}
			return withSession(cmd.Context(), flags, func(sess *session) error {
				if err := sess.store.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "all tasks removed")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the reset")
	return cmd
}

func newDumpCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the raw persisted keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), flags, func(sess *session) error {
				entries, err := sess.repo.List(cmd.Context(), storage.EntryListFilter{})
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", e.Key, e.Value)
				}
				return nil
			})
		},
	}
}
