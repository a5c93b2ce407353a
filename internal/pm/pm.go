// Package pm shells out to the JavaScript package manager.
//
// Top-level installs inherit the terminal's streams so their output is
// visible live; per-component scaffold steps capture output and surface it
// only on failure. Neither path retries: install failures are fatal to the
// run, scaffold failures are reported by the caller as warnings.
package pm

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/stencil-kit/stencil/internal/errors"
	"github.com/stencil-kit/stencil/internal/output"
)

// Manager runs package-manager commands in a project directory.
type Manager struct {
	// Name is the package manager binary (npm, pnpm, yarn, or bun).
	Name string

	// Dir is the project directory commands run in.
	Dir string
}

// New creates a Manager. An empty name defaults to npm.
func New(name, dir string) *Manager {
	if name == "" {
		name = "npm"
	}
	return &Manager{Name: name, Dir: dir}
}

// installArgs returns the install subcommand and flags for the manager.
func (m *Manager) installArgs(dev bool) []string {
	switch m.Name {
	case "yarn":
		if dev {
			return []string{"add", "--dev"}
		}
		return []string{"add"}
	case "pnpm", "bun":
		if dev {
			return []string{"add", "-D"}
		}
		return []string{"add"}
	default: // npm
		if dev {
			return []string{"install", "--save-dev"}
		}
		return []string{"install"}
	}
}

// runnerArgs returns the command and leading args for one-off package
// execution (npx and friends).
func (m *Manager) runnerArgs() (string, []string) {
	switch m.Name {
	case "pnpm":
		return "pnpm", []string{"dlx"}
	case "yarn":
		return "yarn", []string{"dlx"}
	case "bun":
		return "bunx", nil
	default:
		return "npx", nil
	}
}

// Install installs the given packages, inheriting the terminal's streams.
// A non-zero exit is fatal: the returned error carries a manual recovery
// instruction for the caller to surface before aborting the run.
func (m *Manager) Install(ctx context.Context, pkgs []string, dev bool) error {
	if len(pkgs) == 0 {
		return nil
	}

	args := append(m.installArgs(dev), pkgs...)
	output.Debug("running package manager", "cmd", m.Name, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, m.Name, args...)
	cmd.Dir = m.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		manual := m.Name + " " + strings.Join(args, " ")
		return errors.New("E120").
			WithDetail("Command '" + manual + "' failed").
			WithSuggestion("Run '" + manual + "' manually, then re-run setup").
			Wrap(err)
	}

	return nil
}

// InstallAll runs a bare dependency install (package.json driven).
func (m *Manager) InstallAll(ctx context.Context) error {
	sub := "install"
	output.Debug("running package manager", "cmd", m.Name, "args", sub)

	cmd := exec.CommandContext(ctx, m.Name, sub)
	cmd.Dir = m.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		return errors.New("E120").
			WithDetail("Command '" + m.Name + " install' failed").
			WithSuggestion("Run '" + m.Name + " install' manually, then re-run setup").
			Wrap(err)
	}

	return nil
}

// Scaffold runs a one-off scaffolding command (npx-style) with captured
// output and a spinner. On failure the captured output is attached to the
// error so the caller can log it as a warning and continue.
func (m *Manager) Scaffold(ctx context.Context, title string, args ...string) error {
	bin, lead := m.runnerArgs()
	all := append(lead, args...)

	var buf bytes.Buffer
	run := func() error {
		cmd := exec.CommandContext(ctx, bin, all...)
		cmd.Dir = m.Dir
		cmd.Stdout = &buf
		cmd.Stderr = &buf
		return cmd.Run()
	}

	if err := output.RunWithSpinner(ctx, title, run); err != nil {
		return errors.New("E121").
			WithDetail(tail(strings.TrimSpace(buf.String()), 500)).
			Wrap(err)
	}

	return nil
}

// tail returns at most n trailing bytes of s, advanced past any partial
// rune at the cut so the result is valid UTF-8.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := len(s) - n
	for cut < len(s) && !utf8.RuneStart(s[cut]) {
		cut++
	}
	return s[cut:]
}
