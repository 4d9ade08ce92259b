package resource

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

var yamlFrontMatterDelim = []byte{'-', '-', '-'}

// Manifest is the leading YAML front matter block of a SKILL.md file.
type Manifest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	License     string `json:"license,omitempty"`
}

// ParseManifest reads the YAML front matter from a manifest file and
// returns it. The name field is trimmed; an empty or missing name is an
// error because the fallback resolution path depends on it.
func ParseManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	inFrontMatter := false
	yamlBuffer := bytes.Buffer{}

	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("reading front matter from %s: %w", path, err)
		}

		if bytes.HasPrefix(line, yamlFrontMatterDelim) {
			if inFrontMatter {
				break
			}

			inFrontMatter = true
			continue
		}

		if inFrontMatter {
			yamlBuffer.Write(line)
		}
	}

	if !inFrontMatter || yamlBuffer.Len() == 0 {
		return nil, fmt.Errorf("%s is missing YAML front matter ('---' delimiters)", path)
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(yamlBuffer.Bytes(), m); err != nil {
		return nil, fmt.Errorf("parsing front matter in %s: %w", path, err)
	}

	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return nil, fmt.Errorf("front matter in %s has no name field", path)
	}

	return m, nil
}
