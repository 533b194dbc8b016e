package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/euid/internal/cliconfig"
	"github.com/getmockd/euid/pkg/logging"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// globals holds the persistent flags and the state resolved from them
// before a subcommand runs.
type globals struct {
	configPath string
	logLevel   string
	logFormat  string
	epoch      string
	jsonOutput bool

	cfg    *cliconfig.CLIConfig
	logger *slog.Logger
}

// NewRootCommand builds the euid command tree.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "euid",
		Short: "euid generates and inspects extensible unique identifiers",
		Long: `euid generates and inspects EUIDs: 128-bit identifiers that sort by
creation time, carry an optional small extension value and print as 27
Crockford base32 characters with a trailing check symbol.

Configuration can be provided via flags, EUID_* environment variables, or a
configuration file (.euid.yaml in the current directory, then
$XDG_CONFIG_HOME/euid/config.yaml).`,
		// No Run function here means 'euid' with no args will print help text by default.
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Run()
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.load(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "Path to a config file (also EUID_CONFIG)")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&g.logFormat, "log-format", "", "Log format: text or json")
	pf.StringVar(&g.epoch, "epoch", "", "Epoch as an RFC 3339 time or Unix milliseconds")
	pf.BoolVar(&g.jsonOutput, "json", false, "Output command results in JSON format")

	rootCmd.AddCommand(
		newNewCmd(g),
		newInspectCmd(g),
		newFromCmd(g),
		newConfigCmd(g),
		newVersionCmd(g),
	)
	return rootCmd
}

// load resolves configuration, applies flag overrides and builds the logger.
func (g *globals) load(cmd *cobra.Command) error {
	cfg, err := cliconfig.LoadAll(g.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(flag, key string, dst *string, value string) {
		if flags.Changed(flag) {
			*dst = value
			cfg.Sources[key] = cliconfig.SourceFlag
		}
	}
	override("epoch", "epoch", &cfg.Epoch, g.epoch)
	override("log-level", "logLevel", &cfg.LogLevel, g.logLevel)
	override("log-format", "logFormat", &cfg.LogFormat, g.logFormat)

	if err := cfg.Validate(); err != nil {
		return err
	}

	lc, err := cfg.Logging()
	if err != nil {
		return err
	}
	lc.Output = cmd.ErrOrStderr()

	g.cfg = cfg
	g.logger = logging.New(lc)
	g.logger.Debug("configuration loaded", "epoch", cfg.Epoch, "checksum", cfg.Checksum, "sources", cfg.Sources)
	return nil
}

// overrideChecksum applies a --no-checksum flag to the resolved config.
func (g *globals) overrideChecksum(cmd *cobra.Command, noChecksum bool) {
	if cmd.Flags().Changed("no-checksum") {
		g.cfg.Checksum = !noChecksum
		g.cfg.Sources["checksum"] = cliconfig.SourceFlag
	}
}

// Run executes the command tree with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Execute runs the command tree against the process arguments and exits on
// failure. This is called by main.main().
func Execute() {
	if code := Run(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}
