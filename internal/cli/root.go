package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/daybook/internal/model"
	"github.com/sandeepkv93/daybook/internal/update"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand and override the config file.
type globalFlags struct {
	configPath string
	dbPath     string
	memory     bool
}

func newRootCmd(version string) *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "daybook",
		Short: "daybook - a terminal task list",
		Long: `daybook keeps a short list of tasks you can add, star, complete and delete.

Without a subcommand it opens the interactive list. Subcommands run a single
action against the same database, which is handy for scripts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.daybook/config.yaml)")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite database path")
	root.PersistentFlags().BoolVar(&flags.memory, "memory", false, "keep tasks in memory only")

	root.AddCommand(newAddCmd(flags))
	root.AddCommand(newListCmd(flags))
	root.AddCommand(newToggleCmd(flags, "important", "Toggle the important flag of a task"))
	root.AddCommand(newToggleCmd(flags, "done", "Toggle the completed flag of a task"))
	root.AddCommand(newToggleCmd(flags, "delete", "Delete a task"))
	root.AddCommand(newResetCmd(flags))
	root.AddCommand(newDumpCmd(flags))
	root.AddCommand(newConfigCmd(flags))
	return root
}

// Execute runs the root command.
func Execute(version string) error {
	root := newRootCmd(version)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func runTUI(ctx context.Context, flags *globalFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := openSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	filter, ok := model.ParseFilter(cfg.UI.DefaultFilter)
	if !ok {
		log.Printf("unknown default filter %q, using all", cfg.UI.DefaultFilter)
		filter = model.FilterAll
	}

	m := update.NewModel(sess.store, update.Options{
		Context:              ctx,
		Filter:               filter,
		NotificationTTL:      cfg.NotificationTTL(),
		DesktopNotifications: cfg.UI.DesktopNotifications,
		Notifier:             update.ExecDesktopNotifier{},
	})
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("daybook failed: %w", err)
	}
	return nil
}

// setupLogging sends log output to path while the TUI owns the terminal, or
// drops it when no path is configured.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "daybook")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
