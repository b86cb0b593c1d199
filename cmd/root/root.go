// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/budget-chat/internal/agent"
	"fjacquet/budget-chat/internal/config"
	"fjacquet/budget-chat/internal/logging"
	"fjacquet/budget-chat/internal/matcher"
	"fjacquet/budget-chat/internal/store"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// StateFile overrides the configured state file path when set.
	StateFile string

	// GroupsFile overrides the configured keyword groups file path when set.
	GroupsFile string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "budget-chat",
		Short: "A conversational CLI for tracking spending against budget categories.",
		Long: `budget-chat tracks per-category spending against user-set budget
allocations through a chat-style command interface. It understands commands
like "set Food to $200" and "spent $12.50 on groceries", infers the closest
category when the text doesn't name one exactly, and persists state to disk.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budget-chat!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv(Log)

			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)
		},
	}
)

// Init initializes the root command and all flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&StateFile, "state-file", "s", "", "Budget state file (overrides config)")
	Cmd.PersistentFlags().StringVarP(&GroupsFile, "groups-file", "g", "", "Keyword groups file (overrides config)")
}

// StatePath returns the effective budget state file path.
func StatePath() string {
	if StateFile != "" {
		return StateFile
	}
	return Cfg.Data.StateFile
}

// GroupsPath returns the effective keyword groups file path.
func GroupsPath() string {
	if GroupsFile != "" {
		return GroupsFile
	}
	return Cfg.Data.GroupsFile
}

// Session bundles the wired collaborators of one budgeting session.
type Session struct {
	Agent   *agent.Agent
	Matcher *matcher.Matcher
	Store   *store.StateStore
}

// BuildSession loads the ledger from the state store, loads keyword groups,
// and wires the matcher and interpreter together.
func BuildSession() (*Session, error) {
	logger := logging.NewLogrusAdapterFromLogger(Log)

	groups, err := store.NewGroupStore(GroupsPath(), logger).LoadGroups()
	if err != nil {
		return nil, err
	}

	stateStore := store.NewStateStore(StatePath(), logger)
	l, err := stateStore.Load()
	if err != nil {
		return nil, err
	}

	m := matcher.New(logger,
		matcher.WithGroups(groups),
		matcher.WithFuzzyCutoff(Cfg.Matcher.FuzzyCutoff),
		matcher.WithMinScore(Cfg.Matcher.MinScore),
	)

	return &Session{
		Agent:   agent.New(l, m, stateStore, logger),
		Matcher: m,
		Store:   stateStore,
	}, nil
}
