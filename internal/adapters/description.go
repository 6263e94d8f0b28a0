package adapters

import (
	"bufio"
	"strings"
)

// descriptionFile is the parsed form of an R package DESCRIPTION file:
// Debian-control-style "Field: value" records where continuation lines
// start with whitespace.
type descriptionFile struct {
	fields map[string]string
}

func parseDescription(content string) descriptionFile {
	parsed := descriptionFile{fields: map[string]string{}}
	scanner := bufio.NewScanner(strings.NewReader(content))
	current := ""
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if current != "" {
				parsed.fields[current] += " " + strings.TrimSpace(line)
			}
			continue
		}
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		current = strings.TrimSpace(name)
		parsed.fields[current] = strings.TrimSpace(value)
	}
	return parsed
}

func (d descriptionFile) field(name string) string {
	return d.fields[name]
}

// packageList splits a comma-separated dependency field into bare
// package names, dropping version constraints like "(>= 1.6)".
func (d descriptionFile) packageList(name string) []string {
	raw := d.fields[name]
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var names []string
	for _, item := range strings.Split(raw, ",") {
		entry := strings.TrimSpace(item)
		if open := strings.Index(entry, "("); open >= 0 {
			entry = strings.TrimSpace(entry[:open])
		}
		if entry == "" {
			continue
		}
		names = append(names, entry)
	}
	return names
}
