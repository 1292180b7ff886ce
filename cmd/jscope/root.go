package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/t14raptor/go-scope/config"
	"github.com/t14raptor/go-scope/internal/logging"
	"github.com/t14raptor/go-scope/report"
)

var log = logging.GetLogger("cli")

// errReported signals that diagnostics were printed and the exit status
// must be non-zero.
var errReported = errors.New("errors reported")

type globalFlags struct {
	config    string
	verbosity int
	logFile   string

	strict           bool
	globals          []string
	noDefaultGlobals bool
	noSuggestions    bool
	format           string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "jscope",
		Short: "Static lexical-scope resolver for JavaScript",
		Long: `jscope binds every identifier of a JavaScript program to the scope that
declares it and reports unresolved references and conflicting declarations.

Settings are read from the nearest jscope.toml or jscope.yaml unless --config
is given; flags override the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "configuration file (default: nearest jscope.toml or jscope.yaml)")
	pf.CountVarP(&flags.verbosity, "verbose", "v", "log more; repeat for debug output")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.BoolVar(&flags.strict, "strict", false, "resolve every file as strict mode code")
	pf.StringSliceVarP(&flags.globals, "global", "g", nil, "predeclare a global name (repeatable)")
	pf.BoolVar(&flags.noDefaultGlobals, "no-default-globals", false, "do not predeclare builtin and host globals")
	pf.BoolVar(&flags.noSuggestions, "no-suggestions", false, "omit \"did you mean\" hints")

	cmd.AddCommand(newResolveCmd(flags), newScopesCmd(flags))
	return cmd
}

// load reads the configuration file, applies the flags that were set on the
// command line and configures logging.
func (f *globalFlags) load(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.config != "" {
		cfg, err = config.Load(f.config)
	} else {
		var wd string
		if wd, err = os.Getwd(); err == nil {
			cfg, err = config.FindAndLoad(wd)
		}
	}
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	changed := cmd.Flags().Changed
	if changed("strict") {
		cfg.Strict = f.strict
	}
	if changed("no-default-globals") {
		cfg.DefaultGlobals = !f.noDefaultGlobals
	}
	if changed("no-suggestions") {
		cfg.Suggestions = !f.noSuggestions
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("verbose") {
		cfg.Verbosity = f.verbosity
	}
	cfg.Globals = append(cfg.Globals, f.globals...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Configure(cfg.Verbosity, f.logFile)
	if cfg.Path != "" {
		log.Infof("using configuration %s", cfg.Path)
	}
	return cfg, nil
}

func outputFormat(cfg *config.Config) (report.Format, error) {
	if cfg.Format == "" {
		return report.FormatText, nil
	}
	return report.ParseFormat(cfg.Format)
}
