package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/agentres/agentres/pkg/gh"
	"github.com/agentres/agentres/pkg/scaffold"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		path   string
		github bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter agent-resources repository",
		Long:  "Creates an agent-resources repository with example resources, initializes git, and optionally creates and pushes a GitHub repository (requires the gh CLI).",
		// init does not need dev config resolution; skip the root PersistentPreRunE.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, path, github)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "directory to create (default: ./agent-resources)")
	cmd.Flags().BoolVarP(&github, "github", "g", false, "create a GitHub repository and push (requires gh CLI)")

	return cmd
}

func runInit(cmd *cobra.Command, path string, github bool) error {
	if path == "" {
		path = filepath.Join(".", "agent-resources")
	}

	username := ""
	if github {
		if !gh.Authenticated() {
			return fmt.Errorf("GitHub CLI (gh) is not installed or not authenticated; install it from https://cli.github.com/ and run 'gh auth login'")
		}
		if gh.RepoExists("agent-resources") {
			return fmt.Errorf("repository 'agent-resources' already exists on GitHub")
		}
		username = gh.Username()
	}

	starters, err := promptStarters()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Creating agent-resources repository at %s...\n", path)
	if err := scaffold.Create(path, username, starters); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "  Created directory structure")
	for _, s := range starters {
		fmt.Fprintf(cmd.OutOrStdout(), "  Added %s %s\n", s.Name, s.Kind)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "  Created README.md")

	if err := scaffold.InitGit(path); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "  Warning: could not initialize git repository: %v\n", err)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "  Initialized git repository")
	}

	if !github {
		fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
		fmt.Fprintln(cmd.OutOrStdout(), "  1. Create a GitHub repository named 'agent-resources'")
		fmt.Fprintf(cmd.OutOrStdout(), "  2. cd %s\n", path)
		fmt.Fprintln(cmd.OutOrStdout(), "  3. git remote add origin <your-repo-url>")
		fmt.Fprintln(cmd.OutOrStdout(), "  4. git push -u origin main")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Creating GitHub repository...")
	url, err := gh.CreateRepo(path, "agent-resources")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Pushed to %s\n", url)
	fmt.Fprintln(cmd.OutOrStdout(), "\nYour agent-resources repo is ready!")
	fmt.Fprintln(cmd.OutOrStdout(), "Others can now install your resources:")
	for _, s := range starters {
		fmt.Fprintf(cmd.OutOrStdout(), "  agentres add %s %s/%s\n", s.Kind, username, s.Name)
	}
	return nil
}

// promptStarters uses huh to let the user pick which example resources the
// new repository starts with. All are preselected.
func promptStarters() ([]scaffold.Starter, error) {
	all := scaffold.Starters()
	options := make([]huh.Option[scaffold.Starter], len(all))
	for i, s := range all {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", s.Name, s.Kind), s).Selected(true)
	}

	var selected []scaffold.Starter
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[scaffold.Starter]().
				Title("Include starter resources?").
				Options(options...).
				Value(&selected),
		),
	).Run()
	if err != nil {
		return nil, fmt.Errorf("starter selection prompt failed: %w", err)
	}

	return selected, nil
}
