package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sufield/yatabl/internal/config"
	"github.com/sufield/yatabl/internal/scheme"
)

func validateCommand(cmd *Command, out io.Writer) func(args []string) error {
	return func(args []string) error {
		fs := cmd.NewFlagSet(out)
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() < 1 {
			fs.Usage()
			return fmt.Errorf("scheme file path required")
		}

		path := fs.Arg(0)
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		set, err := scheme.Build(cfg)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		fmt.Fprintf(out, "✓ Valid scheme file: %s\n\n", path)

		table := NewTableWriter([]string{"Scheme", "Identifier", "Fields"})
		for _, s := range set.Schemes() {
			table.AddRow([]string{s.Name, identifierKind(s), describeFields(s.Fields)})
		}
		table.Print(out)
		fmt.Fprintln(out, "\n* required")
		return nil
	}
}

func identifierKind(s *scheme.Scheme) string {
	if s.ID.IsToken() {
		return "token"
	}
	return "name"
}

func describeFields(fields []scheme.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		p := f.Name + ":" + f.Kind
		if f.Required {
			p += "*"
		}
		parts[i] = p
	}
	return strings.Join(parts, ", ")
}
