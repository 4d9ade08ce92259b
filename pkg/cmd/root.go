package cmd

import (
	"os"

	"github.com/agentres/agentres/pkg/config"
	"github.com/spf13/cobra"
)

var (
	flagEnv  string
	flagRepo string

	// DevCfg holds the resolved developer configuration, available to all
	// subcommands after PersistentPreRunE completes.
	DevCfg *config.DevConfig
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "agentres",
		Short: "Fetch agent resources from GitHub",
		Long:  "agentres installs Claude Code skills, slash commands, and sub-agents from a user's agent-resources repository into your project or home directory.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDevConfig(flagEnv, flagRepo)
			if err != nil {
				return err
			}
			DevCfg = cfg
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagEnv, "env", "", "target environment (claude, opencode, codex, amp, clawdbot)")
	root.PersistentFlags().StringVar(&flagRepo, "repo", "", "repository name to fetch from (default: agent-resources)")

	root.AddCommand(newAddCmd())
	root.AddCommand(newInitCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
