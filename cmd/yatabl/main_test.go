package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/yatabl/internal/config"
)

const testSchemes = `
version: 1
schemes:
  - name: Clone Trooper
    fields:
      - name: id
        kind: number
        required: true
      - name: rank
        kind: string
        required: true
  - name: Commander
    fields:
      - name: rank
        kind: string
        required: true
        one_of: [Commander]
  - name: Sith
    token: true
    fields:
      - name: lightsaber
        kind: string
        required: true
        one_of: [red]
`

const testRecords = `
- id: 7567
  rank: Commander
  name: Rex
- id: 5555
  rank: Trooper
  name: Fives
- name: Ahsoka
  lightsaber: green
`

func newTestRegistry() (*CommandRegistry, *bytes.Buffer) {
	var out bytes.Buffer
	r := NewCommandRegistry(VersionInfo{Version: "v1.2.3", Commit: "abc123", Date: "2026-01-02"}, &out)
	registerCommands(r)
	return r, &out
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExecute_NoCommand(t *testing.T) {
	r, out := newTestRegistry()
	err := r.Execute(nil)
	assert.EqualError(t, err, "no command specified")
	assert.Contains(t, out.String(), "COMMANDS:")
}

func TestExecute_UnknownCommand(t *testing.T) {
	r, _ := newTestRegistry()
	assert.EqualError(t, r.Execute([]string{"deploy"}), "unknown command: deploy")
}

func TestExecute_Help(t *testing.T) {
	for _, args := range [][]string{{"help"}, {"--help"}, {"-h"}} {
		r, out := newTestRegistry()
		require.NoError(t, r.Execute(args))
		for _, name := range []string{"check", "validate", "version", "help"} {
			assert.Contains(t, out.String(), "    "+name)
		}
		assert.Contains(t, out.String(), config.EnvConfigPath)
	}
}

func TestExecute_HelpForCommand(t *testing.T) {
	r, out := newTestRegistry()
	require.NoError(t, r.Execute([]string{"help", "check"}))
	assert.Contains(t, out.String(), "Apply tagging schemes to a file of records")
	assert.Contains(t, out.String(), "EXAMPLES:")

	assert.EqualError(t, r.Execute([]string{"help", "deploy"}), "unknown command: deploy")
}

func TestExecute_CommandFlagHelp(t *testing.T) {
	r, out := newTestRegistry()
	require.NoError(t, r.Execute([]string{"check", "-h"}))
	assert.Contains(t, out.String(), "-strict")
}

func TestVersion(t *testing.T) {
	r, out := newTestRegistry()
	require.NoError(t, r.Execute([]string{"version"}))
	assert.Equal(t, "yatabl CLI v1.2.3 (commit: abc123, built: 2026-01-02)\n", out.String())

	out.Reset()
	require.NoError(t, r.Execute([]string{"version", "--verbose"}))
	assert.Contains(t, out.String(), "Go: go")
}

func TestTableWriter(t *testing.T) {
	table := NewTableWriter([]string{"A", "Bb"})
	table.AddRow([]string{"xyz", "1"})

	var out bytes.Buffer
	table.Print(&out)

	want := "" +
		"┌─────┬────┐\n" +
		"│ A   │ Bb │\n" +
		"├─────┼────┤\n" +
		"│ xyz │ 1  │\n" +
		"└─────┴────┘\n"
	assert.Equal(t, want, out.String())
}
