package cmd

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/agentres/agentres/pkg/fetch"
	"github.com/agentres/agentres/pkg/resource"
	"github.com/agentres/agentres/pkg/target"
	"github.com/charmbracelet/huh/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a resource from a remote repository",
		Long:  "Downloads a skill, command, or agent from a user's agent-resources repository and installs it locally.",
	}

	addCmd.AddCommand(
		newAddResourceCmd(resource.Skill),
		newAddResourceCmd(resource.Command),
		newAddResourceCmd(resource.Agent),
	)
	return addCmd
}

func newAddResourceCmd(kind resource.Kind) *cobra.Command {
	var (
		overwrite bool
		global    bool
		dest      string
	)

	cmd := &cobra.Command{
		Use:   kind.String() + " <ref>",
		Short: fmt.Sprintf("Add and install a %s", kind),
		Long: fmt.Sprintf(`Fetches a %[1]s from a GitHub user's agent-resources repository.

A ref like owner/%[1]s-name fetches from github.com; host/owner/%[1]s-name
and full URLs select another host. With --repo, the ref may name just the
owner%[2]s.`, kind, ownerOnlyHint(kind)),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], kind, overwrite, global, dest)
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, fmt.Sprintf("overwrite the %s if it already exists", kind))
	cmd.Flags().BoolVarP(&global, "global", "g", false, "install to the home directory instead of the project")
	cmd.Flags().StringVar(&dest, "dest", "", "custom destination directory")

	return cmd
}

func ownerOnlyHint(kind resource.Kind) string {
	if kind.IsDir() {
		return "; the skill name is then read from the repository's own SKILL.md"
	}
	return ""
}

func runAdd(cmd *cobra.Command, rawRef string, kind resource.Kind, overwrite, global bool, dest string) error {
	repo := DevCfg.Repo
	if repo == "" {
		repo = fetch.DefaultRepo
	}

	// Owner-only refs are allowed only for skills fetched from an explicit
	// repository override; the root-level fallback supplies the name.
	ownerOnly := kind.IsDir() && repo != fetch.DefaultRepo

	ref, err := fetch.ParseRef(rawRef, ownerOnly)
	if err != nil {
		return err
	}

	destDir, err := target.Dir(DevCfg.Environment, kind, global, dest)
	if err != nil {
		return err
	}

	opts := fetch.Options{
		Owner:     ref.Owner,
		Name:      ref.Name,
		Dest:      destDir,
		Kind:      kind,
		Overwrite: overwrite,
		Host:      ref.Host,
		Repo:      repo,
	}

	var installed string
	var fetchErr error
	spin := spinner.New().Title(fmt.Sprintf("Fetching %s...", kind)).Action(func() {
		installed, fetchErr = fetch.Fetch(cmd.Context(), opts)
	})
	if err := spin.Run(); err != nil {
		return fmt.Errorf("running fetch spinner: %w", err)
	}
	if fetchErr != nil {
		return fetchErr
	}

	name := strings.TrimSuffix(filepath.Base(installed), kind.Suffix())
	printSuccess(cmd, kind, ref.Host, ref.Owner, name)
	return nil
}

// printSuccess prints the branded confirmation plus one rotating
// call-to-action line, dimmed.
func printSuccess(cmd *cobra.Command, kind resource.Kind, host, owner, name string) {
	dim := color.New(color.Faint)
	dim.Fprintf(cmd.OutOrStdout(), "✅ Added %s '%s' via agentres\n", kind, name)

	hostPrefix := host + "/"
	if host == fetch.DefaultHost {
		hostPrefix = ""
	}

	ctas := []string{
		fmt.Sprintf("💡 Create your own %s library on GitHub: agentres init --github", kind),
		fmt.Sprintf("📢 Share: agentres add %s %s%s/%s", kind, hostPrefix, owner, name),
		fmt.Sprintf("🔭 Explore more resources: https://%s/%s", host, owner),
	}
	dim.Fprintln(cmd.OutOrStdout(), ctas[rand.Intn(len(ctas))])
}
