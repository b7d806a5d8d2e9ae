// Package config provides configuration types, defaults, and persistence for heks.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/heks/internal/log"
)

// SetValue sets a dotted key such as "ui.fps" in the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
// Missing sections are created; the file is created if it does not exist.
func SetValue(configPath, key, value string) error {
	path := strings.Split(key, ".")
	for _, part := range path {
		if part == "" {
			return fmt.Errorf("invalid key %q", key)
		}
	}

	// Read existing file content
	data, err := os.ReadFile(configPath) //nolint:gosec // G304: path comes from the user's own config flag
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level is not a mapping")
	}

	if err := setPath(root, path, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	// Marshal back to YAML
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := writeAtomic(configPath, buf.Bytes()); err != nil {
		return err
	}

	log.Info(log.CatConfig, "Updated config", "path", configPath, "key", key, "value", value)
	return nil
}

// setPath walks mapping nodes along path, creating them as needed, and
// stores value in the last one.
func setPath(node *yaml.Node, path []string, value string) error {
	for i, part := range path {
		last := i == len(path)-1

		var child *yaml.Node
		for j := 0; j < len(node.Content)-1; j += 2 {
			if node.Content[j].Value == part {
				child = node.Content[j+1]
				break
			}
		}

		if last {
			if child == nil {
				node.Content = append(node.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: part},
					&yaml.Node{Kind: yaml.ScalarNode, Value: value},
				)
				return nil
			}
			if child.Kind != yaml.ScalarNode {
				return fmt.Errorf("%s is a section, not a value", strings.Join(path, "."))
			}
			// Keep comments, let the encoder pick the quoting.
			child.Value = value
			child.Tag = ""
			child.Style = 0
			return nil
		}

		if child != nil && child.Kind == yaml.ScalarNode && (child.Tag == "!!null" || child.Value == "") {
			// A section holding only comments parses as null.
			child.Kind, child.Tag, child.Value = yaml.MappingNode, "", ""
		}
		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: part},
				child,
			)
		}
		if child.Kind != yaml.MappingNode {
			return fmt.Errorf("%s is a value, not a section", strings.Join(path[:i+1], "."))
		}
		node = child
	}
	return nil
}

// writeAtomic writes to a temp file next to configPath, then renames it.
func writeAtomic(configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".heks.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
