// Command measure converts, decomposes and formats quantities using
// the predefined measurement types or types defined in a YAML file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/urfave/cli/v3"

	"measure"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	if err := rootCmd().Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:  "measure",
		Usage: "Unit-safe measurement arithmetic and formatting",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML file with additional type definitions",
			},
		},
		Commands: []*cli.Command{
			convertCmd(),
			breakdownCmd(),
			formatCmd(),
			typesCmd(),
		},
	}
}

func loadTypes(cmd *cli.Command) (map[string]*measure.Type, error) {
	types := measure.Quantities()
	path := cmd.String("config")
	if path == "" {
		return types, nil
	}
	extra, err := measure.LoadTypes(path)
	if err != nil {
		return nil, err
	}
	for name, t := range extra {
		types[name] = t
	}
	return types, nil
}

// parseValue reads "<amount> <unit>" positional arguments into a value
// of the named type.
func parseValue(cmd *cli.Command, types map[string]*measure.Type) (measure.Value, *measure.Type, error) {
	name := cmd.String("type")
	t, ok := types[name]
	if !ok {
		return measure.Value{}, nil, fmt.Errorf("unknown measurement type %q", name)
	}
	args := cmd.Args().Slice()
	if len(args) != 2 {
		return measure.Value{}, nil, fmt.Errorf("expected <amount> <unit> arguments, got %d", len(args))
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return measure.Value{}, nil, fmt.Errorf("invalid amount %q: %w", args[0], err)
	}
	v, err := t.New(measure.Description{args[1]: amount})
	if err != nil {
		return measure.Value{}, nil, err
	}
	return v, t, nil
}

func typeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Usage:    "Measurement type (e.g. distance, weight)",
		Required: true,
	}
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a quantity to another unit",
		ArgsUsage: "<amount> <unit>",
		Flags: []cli.Flag{
			typeFlag(),
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Target unit",
				Required: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			types, err := loadTypes(cmd)
			if err != nil {
				return err
			}
			v, t, err := parseValue(cmd, types)
			if err != nil {
				return err
			}
			to := cmd.String("to")
			if _, ok := t.Ratio(to); !ok {
				return fmt.Errorf("unknown unit %q for type %q", to, t.Name())
			}
			fmt.Println(strconv.FormatFloat(v.To(to), 'f', -1, 64))
			return nil
		},
	}
}

func breakdownCmd() *cli.Command {
	return &cli.Command{
		Name:      "breakdown",
		Usage:     "Decompose a quantity into mixed units",
		ArgsUsage: "<amount> <unit>",
		Flags:     []cli.Flag{typeFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			types, err := loadTypes(cmd)
			if err != nil {
				return err
			}
			v, _, err := parseValue(cmd, types)
			if err != nil {
				return err
			}
			out, err := json.Marshal(v.Breakdown())
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func formatCmd() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "Render a quantity in its most readable unit",
		ArgsUsage: "<amount> <unit>",
		Flags: []cli.Flag{
			typeFlag(),
			&cli.FloatFlag{
				Name:  "target",
				Usage: "Preferred magnitude for unit selection (0 uses the type default)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			types, err := loadTypes(cmd)
			if err != nil {
				return err
			}
			v, _, err := parseValue(cmd, types)
			if err != nil {
				return err
			}
			fmt.Println(v.FormatNearest(cmd.Float("target")))
			return nil
		},
	}
}

func typesCmd() *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "List available measurement types and their units",
		Action: func(_ context.Context, cmd *cli.Command) error {
			types, err := loadTypes(cmd)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(types))
			for name := range types {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				t := types[name]
				fmt.Printf("%s (reference: %s)\n", name, t.ReferenceUnit())
				for _, unit := range t.Units() {
					fmt.Printf("  %s\n", unit)
				}
			}
			return nil
		},
	}
}
