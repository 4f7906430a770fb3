// Package docs embeds the gbk user manual as markdown topics.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var manual embed.FS

// Topic returns the manual page for one topic, like "vouchers".
func Topic(name string) (string, error) {
	content, err := manual.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("no manual page for topic %q: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates the manual pages for the given topic names. The name
// "*" expands to every topic except the readme.
func Topics(names ...string) (string, error) {
	var pages []string
	for _, name := range names {
		if name == "*" {
			all, err := AllTopics()
			if err != nil {
				return "", err
			}
			pages = append(pages, all...)
			continue
		}
		pages = append(pages, name)
	}

	var b strings.Builder
	for _, page := range pages {
		content, err := Topic(page)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// AllTopics lists the embedded topics in alphabetical order. The readme is
// the table of contents, not a topic, so it is skipped.
func AllTopics() ([]string, error) {
	files, err := fs.Glob(manual, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, file := range files {
		name := strings.TrimSuffix(file, ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	return topics, nil
}
