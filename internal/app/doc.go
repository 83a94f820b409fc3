// Package app carries the entry points for the CLI commands. It wires the
// configuration, the protocol client, and the services together and owns the
// interactive parts of each flow: password and CAPTCHA prompts, the browser
// consent capture, and result rendering in text or YAML form.
package app
