// Package fetch implements the resource resolution pipeline: download a
// repository's default-branch archive, extract it into a scoped temporary
// workspace, locate the requested resource against the known repository
// conventions (with a root-level single-skill fallback), and install it
// into the destination directory.
//
// Expected failures are typed errors (RepoNotFoundError, TransferError,
// LayoutError, NotFoundError, ExistsError) inspectable with errors.As;
// nothing in the pipeline panics on bad input or bad repositories.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/agentres/agentres/pkg/resource"
)

// DefaultRepo is the repository name resources are fetched from unless the
// caller overrides it. The root-level fallback never applies to it.
const DefaultRepo = "agent-resources"

// Options describes one fetch operation.
type Options struct {
	// Owner is the account the repository belongs to. Required.
	Owner string
	// Name is the resource to look up. May be empty only for skills
	// fetched from a non-default repository, where the root-level
	// fallback derives the name from the repository's own manifest.
	Name string
	// Dest is the directory the resource is installed into.
	Dest string
	// Kind selects the resource kind (skill, command, agent).
	Kind resource.Kind
	// Overwrite replaces an existing installed copy instead of failing.
	Overwrite bool
	// Host defaults to DefaultHost.
	Host string
	// Repo defaults to DefaultRepo.
	Repo string

	// Client overrides the HTTP client, used by tests. Nil means a
	// default client with a 30s timeout.
	Client *http.Client
}

// Fetch resolves and installs one resource, returning the final installed
// path. The stages run strictly in sequence: download, extract, locate,
// install. All temporary state lives in a workspace removed on every exit
// path; the installed path is the only artifact that outlives the call.
func Fetch(ctx context.Context, opts Options) (string, error) {
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.Repo == "" {
		opts.Repo = DefaultRepo
	}
	if opts.Owner == "" {
		return "", fmt.Errorf("owner is required")
	}
	if opts.Name == "" && !opts.Kind.IsDir() {
		return "", fmt.Errorf("%s name is required", opts.Kind)
	}

	// Check the destination before touching the network so a doomed fetch
	// fails fast. The fallback path re-checks once the name is known.
	if opts.Name != "" && !opts.Overwrite {
		if err := checkDest(opts.Dest, opts.Kind, opts.Name); err != nil {
			return "", err
		}
	}

	ws, err := newWorkspace()
	if err != nil {
		return "", err
	}
	defer ws.Close()

	archive, err := download(ctx, opts.Client, opts.Host, opts.Owner, opts.Repo)
	if err != nil {
		return "", err
	}

	root, err := extract(ws, archive, opts.Repo)
	if err != nil {
		return "", err
	}

	loc, err := locate(root, opts.Kind, opts.Name, opts.Host, opts.Owner, opts.Repo)
	if err != nil {
		return "", err
	}

	return install(loc.src, opts.Dest, opts.Kind, loc.name, opts.Overwrite)
}

func checkDest(dest string, kind resource.Kind, name string) error {
	target := destPath(dest, kind, name)
	if _, err := os.Lstat(target); err == nil {
		return &ExistsError{Kind: kind, Name: name, Path: target}
	}
	return nil
}
