package app

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/ogaidukov/gauth/internal/config"
	"github.com/ogaidukov/gauth/internal/logger"
)

// loginResult is the printable outcome of one credential login.
type loginResult struct {
	Service string            `yaml:"service"`
	Email   string            `yaml:"email"`
	Headers map[string]string `yaml:"headers"`
}

// tokenResult describes a token adopted through the consent flow,
// either captured by the browser or pasted by the user.
type tokenResult struct {
	Email     string            `yaml:"email"`
	Kind      string            `yaml:"kind"`
	Exchanged bool              `yaml:"exchanged"`
	Headers   map[string]string `yaml:"headers"`
}

// tokenInfoResult mirrors the token info endpoint response.
type tokenInfoResult struct {
	Target string `yaml:"target"`
	Scope  string `yaml:"scope"`
	Secure bool   `yaml:"secure"`
}

// renderResult prints a command result on stdout in the configured output
// format. YAML is emitted as-is so it can be piped into other tools; the text
// layout is supplied by the command itself.
func renderResult(ctx context.Context, cfg *config.Config, result any, renderText func()) {
	if cfg.Output != config.OutputFormatYAML {
		renderText()
		return
	}

	encoded, err := encodeYAML(result)
	if err != nil {
		logger.Fatalf(ctx, "Failed to render result: %v", err)
		return
	}

	fmt.Print(encoded)
}

// encodeYAML renders a command result as a YAML document.
func encodeYAML(result any) (string, error) {
	encoded, err := yaml.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to encode result as YAML: %w", err)
	}

	return string(encoded), nil
}

// printHeaders writes one colored "Name: value" line per header.
func printHeaders(headers map[string]string) {
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		fmt.Printf("%s %s\n", color.CyanString(name+":"), headers[name])
	}
}
