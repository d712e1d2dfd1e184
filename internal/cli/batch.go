package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/texinspect"
)

// manifestEntry is one file entry in a batch manifest.
type manifestEntry struct {
	Path string `yaml:"path"`
	Name string `yaml:"name" default:""`
}

// CmdBatch inspects every file named in a YAML manifest.
type CmdBatch struct {
	Args struct {
		Manifest string `positional-arg-name:"manifest" description:"Path to a YAML manifest listing texture files" required:"yes"`
	} `positional-args:"yes" required:"yes"`

	Only []string `long:"only" description:"Inspect only entries with this name (repeatable)"`
	YAML bool     `long:"yaml" description:"Print each descriptor as YAML instead of a summary line"`
}

// Execute runs the batch command.
func (c *CmdBatch) Execute(args []string) error {
	data, err := os.ReadFile(c.Args.Manifest)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	entries, err := parseManifestEntries(data)
	if err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no entries found in %q", c.Args.Manifest)
	}

	onlySet := make(map[string]struct{}, len(c.Only))
	for _, name := range c.Only {
		onlySet[strings.TrimSpace(name)] = struct{}{}
	}

	for i := range entries {
		if err := defaults.Set(&entries[i]); err != nil {
			return fmt.Errorf("apply defaults: %w", err)
		}
	}

	for _, entry := range entries {
		if len(onlySet) > 0 {
			if _, ok := onlySet[entry.Name]; !ok {
				continue
			}
		}

		fileData, err := os.ReadFile(entry.Path)
		if err != nil {
			return fmt.Errorf("read %q: %w", entry.Path, err)
		}

		d, err := texinspect.Parse(fileData)
		if err != nil {
			return fmt.Errorf("parse %q: %w", entry.Path, err)
		}

		if err := printDescriptor(entry.Path, d, c.YAML); err != nil {
			return err
		}
	}

	return nil
}

// parseManifestEntries decodes a batch manifest, trying the wrapper shape
// ({entries: [...]}) first and falling back to a bare list.
func parseManifestEntries(data []byte) ([]manifestEntry, error) {
	var doc struct {
		Entries []manifestEntry `yaml:"entries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Entries) > 0 {
		return doc.Entries, nil
	}

	var list []manifestEntry
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, err
	}

	return list, nil
}
