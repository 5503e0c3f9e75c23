// Package filter narrows and reshapes JSON-encodable values such as a dumped
// compass scene, using JMESPath expressions or a shell command.
package filter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/jmespath/go-jmespath"
)

const (
	// QueryShellTimeout is the maximum time allowed for query shell command execution
	QueryShellTimeout = 30 * time.Second
)

var (
	// Shell command pattern: $(command)
	shellPattern = regexp.MustCompile(`^\$\((.+)\)$`)
)

// Text is the raw output of a shell query
type Text string

// Apply narrows v with the filter expression, then reshapes the result with
// query. v goes through a JSON round trip first, so its json tags name the
// fields. Both expressions are optional.
//
// The filter is always JMESPath (e.g. markings[?kind=='major']). A query of
// the form $(command) runs command through sh with the filtered value piped
// to stdin as indented JSON, and returns its trimmed stdout as Text. Any
// other query is JMESPath (e.g. [].degree).
func Apply(ctx context.Context, v interface{}, filter, query string) (interface{}, error) {
	data, err := toJSONValue(v)
	if err != nil {
		return nil, err
	}

	if filter != "" {
		data, err = search(data, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to apply filter: %w", err)
		}
	}

	if query == "" {
		return data, nil
	}

	if command, ok := shellCommand(query); ok {
		body, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode query input: %w", err)
		}
		out, err := executeShellCommand(ctx, body, command)
		if err != nil {
			return nil, fmt.Errorf("failed to execute query shell command: %w", err)
		}
		return Text(out), nil
	}

	data, err = search(data, query)
	if err != nil {
		return nil, fmt.Errorf("failed to apply query: %w", err)
	}
	return data, nil
}

// toJSONValue converts v into the generic maps and slices JMESPath walks
func toJSONValue(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}

	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return data, nil
}

func search(data interface{}, expression string) (interface{}, error) {
	jp, err := jmespath.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return nil, fmt.Errorf("JMESPath search failed: %w", err)
	}
	return result, nil
}

// shellCommand extracts command from a $(command) query
func shellCommand(query string) (string, bool) {
	matches := shellPattern.FindStringSubmatch(query)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}

// executeShellCommand executes a shell command with body piped to stdin
func executeShellCommand(ctx context.Context, body []byte, command string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryShellTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdin = bytes.NewReader(body)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := err.Error()
		if stderr.Len() > 0 {
			errMsg = strings.TrimSpace(stderr.String())
		}
		return "", fmt.Errorf("command '%s' failed: %s", command, errMsg)
	}

	return strings.TrimSpace(stdout.String()), nil
}
