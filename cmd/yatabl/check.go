package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sufield/yatabl"
	"github.com/sufield/yatabl/internal/config"
	"github.com/sufield/yatabl/internal/debug"
	"github.com/sufield/yatabl/internal/scheme"
)

func checkCommand(cmd *Command, out io.Writer) func(args []string) error {
	return func(args []string) error {
		fs := cmd.NewFlagSet(out)
		configPath := fs.String("config", "", "Scheme file (default $"+config.EnvConfigPath+")")
		strict := fs.Bool("strict", false, "Fail when any record passes no scheme")
		verbose := fs.Bool("verbose", false, "Show why each failing scheme rejected a record")

		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() < 1 {
			fs.Usage()
			return fmt.Errorf("records file path required")
		}

		path, err := config.ResolvePath(*configPath)
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load schemes: %w", err)
		}
		set, err := scheme.Build(cfg)
		if err != nil {
			return err
		}

		records, err := loadRecords(fs.Arg(0))
		if err != nil {
			return err
		}
		debug.GetLogger().Debugw("checking records", "schemes", path, "records", len(records))

		table := NewTableWriter([]string{"#", "Tag", "Passed", "Failed"})
		var details []string
		untagged := 0
		for i, r := range records {
			res := set.Apply(r)

			tag := "-"
			if res.Tagged {
				tag = res.Tag.String()
			} else {
				untagged++
			}

			failed := make([]string, 0, len(res.Failed))
			for _, f := range res.Failed {
				failed = append(failed, f.Scheme)
				details = append(details, fmt.Sprintf("#%d %v", i, f.Err))
			}

			table.AddRow([]string{strconv.Itoa(i), tag, joinOrDash(res.Passed), joinOrDash(failed)})
		}

		table.Print(out)
		fmt.Fprintf(out, "\n%d of %d records tagged\n", len(records)-untagged, len(records))

		if *verbose && len(details) > 0 {
			fmt.Fprintln(out, "\nFailures:")
			for _, d := range details {
				fmt.Fprintf(out, "    %s\n", d)
			}
		}

		if *strict && untagged > 0 {
			return fmt.Errorf("%d record(s) passed no scheme", untagged)
		}
		return nil
	}
}

// loadRecords reads a YAML sequence of mappings. Each record is decoded into
// its own allocation so tags never alias.
func loadRecords(path string) ([]*yatabl.Record, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - records path is provided by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var records []*yatabl.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse records file %s: %w", cleanPath, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records in %s", cleanPath)
	}
	return records, nil
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
