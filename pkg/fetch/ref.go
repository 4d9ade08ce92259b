package fetch

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultHost is the source-control host assumed when a reference does not
// name one.
const DefaultHost = "github.com"

// Ref is a parsed resource reference: which host and owner to fetch from,
// and which resource to look for. Name may be empty only for owner-only
// references, which resolve via the root-level fallback.
type Ref struct {
	Host  string
	Owner string
	Name  string
}

// ParseRef parses a user-provided reference into its components.
//
// Accepted forms:
//
//	owner/name
//	host/owner/name   (first segment must contain a dot)
//	https://host/owner/name(.git)
//	owner             (only when ownerOnly is true; name stays empty)
//
// A trailing ".git" on the name is stripped.
func ParseRef(ref string, ownerOnly bool) (Ref, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Ref{}, fmt.Errorf("resource reference cannot be empty")
	}

	host := DefaultHost
	path := ref

	if strings.Contains(ref, "://") {
		parsed, err := url.Parse(ref)
		if err != nil || parsed.Host == "" {
			return Ref{}, fmt.Errorf("invalid reference %q: expected <owner>/<name> or a full URL", ref)
		}
		host = parsed.Host
		path = strings.TrimPrefix(parsed.Path, "/")
	}

	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	var owner, name string
	switch {
	case len(parts) == 3 && host == DefaultHost && strings.Contains(parts[0], "."):
		host, owner, name = parts[0], parts[1], parts[2]
	case len(parts) == 2:
		owner, name = parts[0], parts[1]
	case len(parts) == 1 && ownerOnly:
		owner = parts[0]
	default:
		return Ref{}, fmt.Errorf("invalid reference %q: expected <owner>/<name> or <host>/<owner>/<name>", ref)
	}

	name = strings.TrimSuffix(name, ".git")
	if owner == "" || (name == "" && !ownerOnly) {
		return Ref{}, fmt.Errorf("invalid reference %q: expected <owner>/<name> or <host>/<owner>/<name>", ref)
	}

	return Ref{Host: host, Owner: owner, Name: name}, nil
}
