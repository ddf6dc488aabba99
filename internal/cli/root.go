package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"eatsandthinks/internal/shared"
)

var (
	flagJSON    bool
	flagVerbose bool
	flagBase    string
	flagToken   string
	flagCity    string
	flagTimeout time.Duration
	flagSeed    string
	flagSection string
)

var knownCommands = []string{"resolve", "image", "categories", "home", "place", "help", "completion"}

var rootCmd = &cobra.Command{
	Use:   "eatsctl",
	Short: "Inspect EatsAndThinks categories, images and homepage sections",
	Long: "Command line companion to the EatsAndThinks API.\n" +
		"resolve, image and categories work offline; home and place query the places API " +
		"configured by EATS_API_BASE (or --base).",
	Example: `  eatsctl resolve pizzería "comida rápida" kebab
  eatsctl image heladería --seed place-42
  eatsctl categories --json
  eatsctl home --city Sevilla
  eatsctl home --section hidden_gems --json
  eatsctl place ChIJ123`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		lvl := zerolog.WarnLevel
		if flagVerbose {
			lvl = zerolog.DebugLevel
		}
		// logs go to stderr so --json output stays parseable
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
			Level(lvl).With().Timestamp().Str("service", "eatsctl").Logger()
	},
}

func init() {
	registerGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(resolveCmd, imageCmd, categoriesCmd, homeCmd, placeCmd)

	imageCmd.Flags().StringVar(&flagSeed, "seed", "", "Stable seed (e.g. a place ID); empty picks at random")
	homeCmd.Flags().StringVar(&flagSection, "section", "", "Build only one section (featured, trending, hidden_gems, cheap_eats, community)")
}

func registerGlobalFlags(f *pflag.FlagSet) {
	f.BoolVar(&flagJSON, "json", false, "Output as JSON")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "Log upstream calls to stderr")
	f.StringVar(&flagBase, "base", "", "Places API base URL (default $EATS_API_BASE)")
	f.StringVar(&flagToken, "token", "", "Places API bearer token (default $EATS_API_TOKEN)")
	f.StringVar(&flagCity, "city", "", "City appended to homepage queries (default $HOME_CITY)")
	f.DurationVar(&flagTimeout, "timeout", 0, "Per-query timeout (default $QUERY_TIMEOUT_MS)")
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if flagJSON {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

func resetCLIState() {
	flagJSON = false
	flagVerbose = false
	flagBase = ""
	flagToken = ""
	flagCity = ""
	flagTimeout = 0
	flagSeed = ""
	flagSection = ""
}

// loadConfig reads the environment and applies command line overrides.
func loadConfig() shared.Config {
	cfg := shared.Load()
	if flagBase != "" {
		cfg.EatsBase = flagBase
	}
	if flagToken != "" {
		cfg.EatsToken = flagToken
	}
	if flagCity != "" {
		cfg.City = flagCity
	}
	if flagTimeout > 0 {
		cfg.QueryTimeout = flagTimeout
	}
	return cfg
}
