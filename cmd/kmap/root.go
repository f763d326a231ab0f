package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kmap/internal/config"
	"github.com/katalvlaran/kmap/render"
	"github.com/katalvlaran/kmap/simplify"
	"github.com/katalvlaran/kmap/verify"
)

type rootFlags struct {
	vars      int
	minterms  []int
	dontcares []int
	form      string
	config    string
	json      bool
	noColor   bool
	checker   string
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "kmap",
		Short: "Simplify a boolean function with a Karnaugh map",
		Long: `kmap classifies every index of a 2 to 4 variable function, lays the
values out on a Gray-coded grid, groups adjacent true cells on the torus
and prints the minimized expression in literal notation.`,
		Example:       "  kmap -n 4 -m 0,2,5,7,8,10,13,15 -d 1,3",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.vars, "vars", "n", 4, "number of variables (2-4)")
	fl.IntSliceVarP(&f.minterms, "minterms", "m", nil, "indices where the function is true")
	fl.IntSliceVarP(&f.dontcares, "dontcares", "d", nil, "indices whose value does not matter")
	fl.StringVarP(&f.form, "form", "f", "", "SOP or POS (default from config)")
	fl.StringVar(&f.config, "config", "", "path to a YAML config file")
	fl.BoolVar(&f.json, "json", false, "print the result as JSON")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colours")
	fl.StringVar(&f.checker, "checker", "", "equivalence checker: sat, bdd or none (default from config)")
	_ = cmd.MarkFlagRequired("minterms")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, f rootFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.form != "" {
		cfg.Form = strings.ToUpper(f.form)
	}
	if f.checker != "" {
		cfg.Checker = strings.ToLower(f.checker)
	}
	if f.noColor {
		cfg.Theme.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []simplify.Option{
		simplify.WithLogger(cfg.Log.NewLogger(cmd.ErrOrStderr())),
		simplify.WithVarNames(cfg.Variables.Names),
		simplify.WithRegisterer(prometheus.NewRegistry()),
	}
	if cfg.Checker == "none" {
		opts = append(opts, simplify.WithChecker(nil))
	} else {
		checker, err := verify.New(cfg.Checker)
		if err != nil {
			return err
		}
		opts = append(opts, simplify.WithChecker(checker))
	}
	svc := simplify.New(opts...)

	res, err := svc.Simplify(ctx, simplify.Request{
		Variables: f.vars,
		Minterms:  f.minterms,
		DontCares: f.dontcares,
		Form:      cfg.Form,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	return printResult(out, res, svc.VarNames(f.vars), cfg.Theme.RenderTheme())
}

func printResult(w io.Writer, res *simplify.Result, vars []string, theme render.Theme) error {
	_, err := fmt.Fprintf(w, "%s\n%s: %s\n", render.Render(res.Map, vars, theme), res.Form, res.Literal)

	return err
}
