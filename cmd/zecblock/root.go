package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dmagro/zecblock/internal/config"
	"github.com/dmagro/zecblock/internal/explorer"
	"github.com/dmagro/zecblock/internal/logging"
	"github.com/dmagro/zecblock/internal/render"
)

type options struct {
	configPath string
	baseURL    string
	noColor    bool
	debug      bool
}

func rootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zecblock [hash|height]",
		Short: "Show a Zcash block and its transactions",
		Long: `Fetch a block from a Blockbook explorer and print a summary of the
block, each of its transactions, and each transaction's outputs.

When no block is given on the command line, zecblock asks for one.

Examples:
  zecblock 2500000
  zecblock 0000000001a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c
  zecblock --url https://zcashblockexplorer.example/api/v2 2500000`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultPath, "Config file path")
	cmd.Flags().StringVar(&opts.baseURL, "url", "", "Explorer API base URL (overrides config)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log request details to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	config.LoadEnv()

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	log, err := logging.New(opts.debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var id string
	if len(args) == 1 {
		id = strings.TrimSpace(args[0])
	} else {
		id, err = promptIdentifier(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	client := explorer.NewClient(explorer.ClientConfig{
		BaseURL:   cfg.Explorer.BaseURL,
		UserAgent: cfg.Explorer.UserAgent,
		Logger:    log,
	})
	log.Debug("fetching block", zap.String("id", id), zap.String("explorer", cfg.Explorer.BaseURL))

	block, err := client.FetchBlock(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("fetching block details: %w", err)
	}

	r := render.New(cmd.OutOrStdout(), render.Options{
		Color:       cfg.ColorEnabled() && !opts.noColor,
		Location:    loc,
		Placeholder: render.DefaultOptions().Placeholder,
	})
	r.Block(block)
	return nil
}

// loadConfig reads the config file. A missing file is only an error when the
// path was given explicitly; otherwise built-in defaults apply.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		cfg = config.Default()
	case err != nil:
		return nil, err
	}

	if opts.baseURL != "" {
		cfg.Explorer.BaseURL = opts.baseURL
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
