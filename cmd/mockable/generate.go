package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mockable/internal/diag"
	"mockable/internal/gogen"
	"mockable/internal/mockable"
	"mockable/internal/source"
	"mockable/internal/syntax"
)

const definitionExt = ".iface"

func newGenerateCmd() *cobra.Command {
	var (
		lang      string
		suffix    string
		helper    string
		goPackage string
	)

	cmd := &cobra.Command{
		Use:   "generate [paths]",
		Short: "Expand @Mockable declarations into mock types and factories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if lang != "" {
				cfg.Lang = lang
			}
			if suffix != "" {
				cfg.Suffix = suffix
			}
			if helper != "" {
				cfg.Helper = helper
			}
			if goPackage != "" {
				cfg.GoPackage = goPackage
			}
			err = cfg.Validate()
			if err != nil {
				return err
			}

			return run(cfg, args, true)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", `output language: "iface" or "go"`)
	cmd.Flags().StringVar(&suffix, "suffix", "", "suffix appended to generated file names")
	cmd.Flags().StringVar(&helper, "helper", "", "name of the unimplemented helper called by sentinel defaults")
	cmd.Flags().StringVar(&goPackage, "go-package", "", "package name of generated Go files")

	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths]",
		Short: "Report diagnostics without writing generated files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			err = cfg.Validate()
			if err != nil {
				return err
			}

			return run(cfg, args, false)
		},
	}
}

type fileOutcome struct {
	file    *source.File
	diags   []diag.Diagnostic
	outPath string
	output  []byte
}

// run expands every definition file. Files are independent and processed
// concurrently; diagnostics and outputs are reported afterwards in path
// order so runs are deterministic.
func run(cfg Config, args []string, write bool) error {
	paths, err := collectFiles(args, cfg.Suffix)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no definition files found")
	}

	outcomes := make([]*fileOutcome, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path // per-iteration copies; required under go1.21 loop semantics
		g.Go(func() error {
			outcome, err := processFile(path, cfg)
			if err != nil {
				return err
			}
			outcomes[i] = outcome

			return nil
		})
	}
	err = g.Wait()
	if err != nil {
		return err
	}

	printer := diag.NewPrinter(os.Stderr)
	errorCount := 0
	for _, outcome := range outcomes {
		printer.PrintAll(outcome.file, outcome.diags)
		for _, d := range outcome.diags {
			if d.Severity == diag.SevError {
				errorCount++
			}
		}

		if write && outcome.output != nil {
			err = os.WriteFile(outcome.outPath, outcome.output, 0o644)
			if err != nil {
				return fmt.Errorf("cannot write %s: %v", outcome.outPath, err)
			}
			log.Println("generated:", outcome.outPath)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("found %d error(s)", errorCount)
	}

	return nil
}

func processFile(path string, cfg Config) (*fileOutcome, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag()
	parsed := syntax.Parse(file, bag)

	outcome := &fileOutcome{
		file:  file,
		diags: bag.Items(),
	}
	if bag.HasErrors() {
		// The declarations are unreliable after a syntax error; report and
		// skip generation for this file.
		return outcome, nil
	}

	results := mockable.ExpandFile(parsed, mockable.Options{Helper: cfg.Helper})
	for _, res := range results {
		outcome.diags = append(outcome.diags, res.Diagnostics...)
	}

	switch cfg.Lang {
	case "go":
		var mocks []*mockable.MockType
		for _, res := range results {
			if res.Ok() {
				mocks = append(mocks, res.Mock)
			}
		}
		if len(mocks) == 0 {
			return outcome, nil
		}

		rendered, err := gogen.Render(cfg.GoPackage, mocks)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}

		outcome.output = rendered
		outcome.outPath = outputPath(path, cfg.Suffix, ".go")
	default:
		rendered, err := mockable.RenderFile(results)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
		if rendered == "" {
			return outcome, nil
		}

		outcome.output = []byte(rendered)
		outcome.outPath = outputPath(path, cfg.Suffix, definitionExt)
	}

	return outcome, nil
}

func outputPath(path, suffix, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix + ext
}

func collectFiles(args []string, suffix string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	seen := map[string]bool{}
	var paths []string
	add := func(path string) {
		// A previous run's output is never an input.
		if strings.HasSuffix(strings.TrimSuffix(path, definitionExt), suffix) {
			return
		}
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot stat %s: %v", arg, err)
		}
		if !info.IsDir() {
			if filepath.Ext(arg) != definitionExt {
				return nil, fmt.Errorf("not a definition file: %s (expected a %s file)", arg, definitionExt)
			}
			add(arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == definitionExt {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("cannot walk %s: %v", arg, err)
		}
	}

	sort.Strings(paths)

	return paths, nil
}
