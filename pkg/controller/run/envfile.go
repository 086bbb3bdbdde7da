package run

import (
	"bufio"
	"fmt"
	"strings"
)

// parseEnvFile parses the run-scoped environment file steps append to.
// The format follows GITHUB_ENV: one KEY=value per line, blank lines and
// lines starting with # are ignored, and multiline values use a heredoc
// style delimiter:
//
//	KEY<<EOF
//	line1
//	line2
//	EOF
//
// Later assignments of the same key win.
func parseEnvFile(content string) (map[string]string, error) {
	env := map[string]string{}
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if key, delimiter, ok := parseHeredocHeader(line); ok {
			value, err := readHeredoc(scanner, delimiter)
			if err != nil {
				return nil, fmt.Errorf("read a multiline value of %s: %w", key, err)
			}
			env[key] = value
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid environment file line: %s", line)
		}
		env[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan an environment file: %w", err)
	}
	return env, nil
}

func parseHeredocHeader(line string) (string, string, bool) {
	key, delimiter, ok := strings.Cut(line, "<<")
	if !ok || key == "" || delimiter == "" || strings.Contains(key, "=") {
		return "", "", false
	}
	return key, delimiter, true
}

func readHeredoc(scanner *bufio.Scanner, delimiter string) (string, error) {
	lines := []string{}
	for scanner.Scan() {
		line := scanner.Text()
		if line == delimiter {
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("delimiter %s isn't found", delimiter)
}
