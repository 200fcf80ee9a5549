package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	if err := newApp(&Config{}).Run(os.Args); err != nil {
		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			if msg := coder.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the CLI application around cfg. Tests pass a config with
// buffer sinks; main passes an empty one and lets the defaults apply.
func newApp(cfg *Config) *cli.App {
	app := &cli.App{
		Name:      "multiples",
		Usage:     "compute the numbers in 1..end divisible by either of two divisors, per input line",
		ArgsUsage: "<input-path> <output-path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "sort",
				Value: orderByEnd,
				Usage: "output ordering: end or count",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "structured diagnostics on stderr",
			},
			&cli.BoolFlag{
				Name:  "report",
				Usage: "render a markdown run report after writing",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "re-read the output file and check it matches the computed results",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable styled output",
			},
		},
		// Errors are mapped to exit codes in main; the default handler
		// would call os.Exit before tests could observe anything.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit(fmt.Sprintf("Usage: %s [flags] <input-path> <output-path>", c.App.Name), 1)
			}
			cfg.InputPath = c.Args().Get(0)
			cfg.OutputPath = c.Args().Get(1)
			cfg.SortBy = c.String("sort")
			cfg.Verbose = c.Bool("verbose")
			cfg.Report = c.Bool("report")
			cfg.Verify = c.Bool("verify")
			cfg.NoColor = c.Bool("no-color")
			cfg.applyDefaults()

			if _, err := os.Stat(cfg.InputPath); os.IsNotExist(err) {
				return cli.Exit(fmt.Sprintf("input file does not exist: %s", cfg.InputPath), 1)
			}
			return run(cfg)
		},
	}
	if cfg.Stdout != nil {
		app.Writer = cfg.Stdout
	}
	if cfg.Stderr != nil {
		app.ErrWriter = cfg.Stderr
	}
	return app
}

// run executes the pipeline: read, compute, sort, write, then the optional
// verification and report passes.
func run(cfg *Config) error {
	initLogger(cfg.Verbose)
	defer syncLogger()

	theme = DefaultTheme
	if cfg.NoColor {
		theme = PlainTheme
	}

	ord, err := ParseOrdering(cfg.SortBy)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	start := time.Now()
	logInfo("starting run",
		zap.String("run", cfg.RunID),
		zap.String("input", cfg.InputPath),
		zap.String("output", cfg.OutputPath),
		zap.String("sort", ord.Name))

	triples, err := ReadTriples(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("reading triples: %w", err)
	}
	logInfo("read input", zap.String("run", cfg.RunID), zap.Int("lines", len(triples)))

	computeStart := time.Now()
	results := BuildResults(triples)
	SortResults(results, ord)
	logInfo("computed results",
		zap.String("run", cfg.RunID),
		zap.Int("results", len(results)),
		zap.Duration("took", time.Since(computeStart)))

	// The output file is created only here, after reading and computing
	// succeeded. A parse failure above leaves no file behind.
	if err := WriteResults(cfg.OutputPath, cfg.Stdout, results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	if cfg.Verify {
		if err := VerifyOutput(cfg.OutputPath, results); err != nil {
			return err
		}
		logInfo("verified output", zap.String("run", cfg.RunID), zap.Int("lines", len(results)))
	}

	elapsed := time.Since(start)
	if cfg.Report {
		RenderReport(cfg.Stdout, BuildReport(cfg, ord, results, elapsed))
	}
	if cfg.Verbose {
		PrintSummary(cfg.Stderr, results, elapsed)
	}
	return nil
}
