package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Jinansh2608/ledger-backend/client"
	"github.com/Jinansh2608/ledger-backend/internal/config"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries the resolved configuration to every subcommand.
type app struct {
	cfg *config.Config

	apiURL  string
	token   string
	debug   bool
	timeout time.Duration
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "pocli",
		Short:         "pocli manages purchase orders, projects, billing and vendor orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.apiURL, "api-url", "", "Base URL of the PO API (default $PO_API_URL or http://localhost:8000)")
	pf.StringVar(&a.token, "token", "", "Bearer token (default $PO_API_TOKEN)")
	pf.BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output, including HTTP dumps")
	pf.DurationVar(&a.timeout, "timeout", 0, "Per-command timeout (default $PO_HTTP_TIMEOUT or 30s)")

	rootCmd.AddCommand(newHealthCmd(a))
	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newPOCmd(a))
	rootCmd.AddCommand(newLineItemsCmd(a))
	rootCmd.AddCommand(newUploadCmd(a))
	rootCmd.AddCommand(newProjectsCmd(a))
	rootCmd.AddCommand(newVerbalCmd(a))
	rootCmd.AddCommand(newBillingCmd(a))
	rootCmd.AddCommand(newVendorOrdersCmd(a))
	rootCmd.AddCommand(newVendorsCmd(a))
	rootCmd.AddCommand(newPaymentsCmd(a))
	rootCmd.AddCommand(newExportCmd(a))

	return rootCmd
}

// init merges PO_* environment settings with explicit flags; flags win.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = a.apiURL
	}
	if flags.Changed("token") {
		cfg.APIToken = a.token
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if flags.Changed("timeout") {
		if a.timeout <= 0 {
			return fmt.Errorf("--timeout must be > 0")
		}
		cfg.HTTPTimeout = a.timeout
	}
	cfg.Init()
	a.cfg = cfg
	return nil
}

func (a *app) newClient(extra ...client.Option) (*client.Client, error) {
	opts := []client.Option{
		client.WithHTTPTimeout(a.cfg.HTTPTimeout),
		client.WithDebugLogging(a.cfg.Debug),
	}
	if a.cfg.APIToken != "" {
		opts = append(opts, client.WithAuthToken(a.cfg.APIToken))
	}
	return client.New(a.cfg.APIURL, append(opts, extra...)...)
}

// run executes fn with a fresh client under the command timeout and prints
// its result as JSON.
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) (any, error)) error {
	return a.runWith(cmd, nil, fn)
}

func (a *app) runWith(cmd *cobra.Command, opts []client.Option, fn func(ctx context.Context, c *client.Client) (any, error)) error {
	c, err := a.newClient(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.HTTPTimeout)
	defer cancel()

	start := time.Now()
	out, err := fn(ctx, c)
	elapsed := time.Since(start)
	if err != nil {
		log.Debug().Err(err).Str("command", cmd.CommandPath()).Dur("elapsed", elapsed).Msg("request failed")
		return err
	}
	log.Debug().Str("command", cmd.CommandPath()).Dur("elapsed", elapsed).Msg("request completed")
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func parseID(name, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", name, s)
	}
	return id, nil
}

// idCmd builds a "<use> <arg>" command whose single argument is an id.
func idCmd(a *app, use, arg, short string, fn func(context.Context, *client.Client, int64) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <" + arg + ">",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(strings.ReplaceAll(arg, "-", " "), args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return fn(ctx, c, id)
			})
		},
	}
}

// optFloat returns &v when the flag was set explicitly.
func optFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API and database liveness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.Health(ctx)
			})
		},
	}
}

func newLoginCmd(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for an access token (export it as PO_API_TOKEN)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.Login(ctx, username, password)
			})
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
