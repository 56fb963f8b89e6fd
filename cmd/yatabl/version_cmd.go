package main

import (
	"fmt"
	"io"
	"runtime"
	rtdebug "runtime/debug"
)

func versionCommand(cmd *Command, out io.Writer, v VersionInfo) func(args []string) error {
	return func(args []string) error {
		fs := cmd.NewFlagSet(out)
		verbose := fs.Bool("verbose", false, "Show Go runtime and module dependency versions")
		if err := fs.Parse(args); err != nil {
			return err
		}

		fmt.Fprintf(out, "yatabl CLI %s (commit: %s, built: %s)\n", v.Version, v.Commit, v.Date)
		if !*verbose {
			return nil
		}

		fmt.Fprintf(out, "\nGo: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

		info, ok := rtdebug.ReadBuildInfo()
		if !ok || len(info.Deps) == 0 {
			fmt.Fprintln(out, "\nModule information unavailable")
			return nil
		}

		fmt.Fprintln(out, "\nDependencies:")
		table := NewTableWriter([]string{"Module", "Version"})
		for _, dep := range info.Deps {
			table.AddRow([]string{dep.Path, dep.Version})
		}
		table.Print(out)
		return nil
	}
}
