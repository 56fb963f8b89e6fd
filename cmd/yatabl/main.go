// Command yatabl applies configured tagging schemes to YAML records.
package main

import (
	"fmt"
	"os"

	"github.com/sufield/yatabl/internal/debug"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	debug.Init()
	debug.InitLogger()

	versionInfo := VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	registry := NewCommandRegistry(versionInfo, os.Stdout)
	registerCommands(registry)

	if err := registry.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func registerCommands(r *CommandRegistry) {
	check := &Command{
		Name:        "check",
		Description: "Apply tagging schemes to a file of records",
		Usage:       "yatabl check [--config schemes.yaml] [--strict] [--verbose] <records.yaml>",
		Examples: []string{
			"yatabl check --config schemes.yaml troopers.yaml",
			"YATABL_CONFIG=schemes.yaml yatabl check troopers.yaml",
			"yatabl check --strict --verbose --config schemes.yaml troopers.yaml",
		},
	}
	check.Run = checkCommand(check, r.out)
	r.Register(check)

	validate := &Command{
		Name:        "validate",
		Description: "Validate a scheme file",
		Usage:       "yatabl validate <schemes.yaml>",
		Examples: []string{
			"yatabl validate schemes.yaml",
		},
	}
	validate.Run = validateCommand(validate, r.out)
	r.Register(validate)

	versionCmd := &Command{
		Name:        "version",
		Description: "Show version information",
		Usage:       "yatabl version [--verbose]",
		Examples: []string{
			"yatabl version",
			"yatabl version --verbose",
		},
	}
	versionCmd.Run = versionCommand(versionCmd, r.out, r.version)
	r.Register(versionCmd)

	r.Register(&Command{
		Name:        "help",
		Description: "Show help information",
		Usage:       "yatabl help [command]",
		Examples: []string{
			"yatabl help",
			"yatabl help check",
		},
		Run: func(args []string) error {
			return r.Help(args)
		},
	})
}
