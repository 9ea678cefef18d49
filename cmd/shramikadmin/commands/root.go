package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shramikadmin/internal/app"
	"shramikadmin/pkg/logger"
)

// localOnly marks commands that never call the API, so they run without an
// API URL.
const localOnly = "local-only"

var (
	appCtx *app.Wire

	apiURL    string
	home      string
	logLevel  string
	logPretty bool
)

// Execute runs the CLI against the process arguments.
func Execute() error {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	appCtx = nil
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if appCtx == nil {
		return err
	}
	if appCtx.SessionRevoked() {
		fmt.Fprintln(stderr, "Session expired or rejected. Run `shramikadmin login` to sign in again.")
	}
	if merr := appCtx.WriteMetrics(); merr != nil {
		log := logger.Get()
		log.Error().Err(merr).Str("file", appCtx.Config.MetricsFile).Msg("write metrics")
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shramikadmin",
		Short:         "Admin console for the Shramik job marketplace",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]any{}
			flags := cmd.Flags()
			if flags.Changed("api-url") {
				overrides["api_url"] = apiURL
			}
			if flags.Changed("home") {
				overrides["home"] = home
			}
			if flags.Changed("log-level") {
				overrides["log_level"] = logLevel
			}
			if flags.Changed("log-pretty") {
				overrides["log_pretty"] = logPretty
			}

			load := app.LoadConfig
			if cmd.Annotations[localOnly] == "true" {
				load = app.LoadLocalConfig
			}
			cfg, err := load(overrides)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			log := logger.Init(logger.Options{
				Level:  cfg.LogLevel,
				Pretty: cfg.LogPretty,
				Output: cmd.ErrOrStderr(),
			})
			w, err := app.NewWire(cfg, log)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&apiURL, "api-url", "", "API base URL (env SHRAMIK_API_URL)")
	pf.StringVar(&home, "home", "", "config and session dir (default ~/.shramikadmin)")
	pf.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.BoolVar(&logPretty, "log-pretty", false, "human-friendly log output")

	root.AddCommand(
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		specializationsCmd(),
		questionSetsCmd(),
		coinPricingCmd(),
	)
	return root
}
