package fetch

import (
	"fmt"
	"strings"

	"github.com/agentres/agentres/pkg/resource"
)

// RepoNotFoundError indicates the repository archive endpoint returned 404:
// the repository does not exist or its default branch is not "main".
type RepoNotFoundError struct {
	Host  string
	Owner string
	Repo  string
}

func (e *RepoNotFoundError) Error() string {
	return fmt.Sprintf("repository '%s/%s' not found on %s", e.Owner, e.Repo, e.Host)
}

// TransferError indicates a network or HTTP failure other than 404 while
// downloading the repository archive. Not retried.
type TransferError struct {
	URL    string
	Status int // 0 for connection-level failures
	Err    error
}

func (e *TransferError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to download %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("network error downloading %s: %v", e.URL, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// LayoutError indicates the archive did not unpack to the expected
// <repo>-main root directory.
type LayoutError struct {
	Expected string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("unexpected archive layout: extracted tree has no %s directory", e.Expected)
}

// ExistsError indicates the destination path is already occupied and
// overwriting was not requested.
type ExistsError struct {
	Kind resource.Kind
	Name string
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("%s '%s' already exists at %s\nUse --overwrite to replace it.", capitalize(e.Kind.String()), e.Name, e.Path)
}

// NotFoundError indicates no convention and no fallback matched. It carries
// the full resolution diagnostics: every convention path attempted in
// order, the known layout fragments actually present at the repository
// root, and the outcome of the root-level fallback when it was consulted.
type NotFoundError struct {
	Kind  resource.Kind
	Name  string // "" when no name was requested
	Host  string
	Owner string
	Repo  string

	// Tried lists every instantiated convention path, in precedence order.
	Tried []string
	// Found lists known layout fragments present at the repository root.
	Found []string
	// FallbackNote describes why the root-level fallback did not apply
	// (missing manifest, bad front matter, name mismatch). Empty when the
	// fallback was never consulted.
	FallbackNote string
}

func (e *NotFoundError) Error() string {
	displayName := e.Name
	if displayName == "" {
		displayName = "<unspecified>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s '%s' not found in %s/%s.\n", capitalize(e.Kind.String()), displayName, e.Owner, e.Repo)
	b.WriteString("Tried these locations:\n")
	for _, p := range e.Tried {
		fmt.Fprintf(&b, "- %s\n", p)
	}

	if len(e.Found) == 0 {
		b.WriteString("\nRepository structure issues:\n")
		b.WriteString("- Repository doesn't match common agent-resources patterns.\n")
		b.WriteString("- Expected: .claude/skills/, skills/, or skill/ directories.\n")
	} else {
		fmt.Fprintf(&b, "\nFound directories: %s\n", strings.Join(e.Found, ", "))
	}

	if e.FallbackNote != "" {
		b.WriteString("\nManual repo override check:\n")
		fmt.Fprintf(&b, "- %s\n", e.FallbackNote)
	}

	b.WriteString("\nQuick fixes:\n")
	b.WriteString("- Double-check the resource name\n")
	b.WriteString("- Try --repo REPO_NAME if using a different repository\n")
	b.WriteString("- Try --dest PATH for custom installation location\n")
	fmt.Fprintf(&b, "- Visit https://%s/%s/%s to verify the resource exists", e.Host, e.Owner, e.Repo)

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
