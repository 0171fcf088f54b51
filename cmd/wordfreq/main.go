package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/basedalex/storywords/internal/pipeline"
	"github.com/basedalex/storywords/internal/report"
	"github.com/basedalex/storywords/pkg/config"
	"github.com/basedalex/storywords/pkg/words"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yaml"

type options struct {
	configPath string
	root       string
	input      string
	output     string
	column     string
	preset     string
	topN       int
	preview    int
	logLevel   string
	listStops  bool
}

func main() {
	// Failures are reported on stdout; the exit status is always 0.
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Println("An error occurred:", err)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "wordfreq",
		Short:         "Count the most frequent words in the squirrel stories CSV",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.listStops {
				for _, word := range words.StopWords() {
					fmt.Fprintln(out, word)
				}
				return nil
			}

			cfg, err := loadConfig(cmd, &opts)
			if err != nil {
				return err
			}

			res := pipeline.Run(cfg)
			fmt.Fprintln(out, res.Message())

			if res.Kind == pipeline.KindOK && cfg.Preview > 0 {
				fmt.Fprintln(out, report.Preview(res.Table, cfg.Preview))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to yaml config")
	flags.StringVar(&opts.root, "root", "", "project root for relative paths (default: parent of the executable's directory)")
	flags.StringVar(&opts.input, "input", "", "stories CSV path")
	flags.StringVar(&opts.output, "output", "", "word frequencies CSV path")
	flags.StringVar(&opts.column, "column", "", "name of the story text column")
	flags.StringVar(&opts.preset, "preset", "", "pipeline preset: filtered or plain")
	flags.IntVar(&opts.topN, "top", 0, "number of words to write, 0 for all")
	flags.IntVar(&opts.preview, "preview", 0, "print the N most frequent words")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.listStops, "list-stop-words", false, "print the stop words removed by the filtered preset and exit")

	return cmd
}

// loadConfig reads the config file and applies flag overrides. A missing
// default config file is not an error.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	flags := cmd.Flags()

	cfg, err := config.Load(opts.configPath)
	if errors.Is(err, fs.ErrNotExist) && !flags.Changed("config") {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if opts.preset != "" {
		if err = cfg.ApplyPreset(opts.preset); err != nil {
			return nil, err
		}
	}
	if flags.Changed("root") {
		cfg.Root = opts.root
	}
	if flags.Changed("input") {
		cfg.Input = opts.input
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("column") {
		cfg.Column = opts.column
	}
	if flags.Changed("top") {
		cfg.TopN = opts.topN
	}
	if flags.Changed("preview") {
		cfg.Preview = opts.preview
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(cmd.ErrOrStderr())

	return cfg, nil
}
