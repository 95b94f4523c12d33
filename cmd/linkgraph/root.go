package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/linkgraph/config"
	"github.com/katalvlaran/linkgraph/core"
	"github.com/katalvlaran/linkgraph/network"
	"github.com/katalvlaran/linkgraph/provider"
)

// app carries the global flags and the state built from them.
type app struct {
	configPath string
	sourceURL  string
	sourceFile string
	logLevel   string

	cfg config.Config
	log *zap.Logger
}

// newRootCmd assembles the command tree. Any command that is not one of the
// subcommands lands in the root Run and is reported as invalid.
func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "linkgraph",
		Short: "Explore a social network of people and their connections",
		Long: `linkgraph loads an adjacency mapping of people and answers:

  show_network                     every person, in depth-first discovery order
  show_connections PERSON          1st, 2nd and 3rd degree connections of PERSON
  connect PERSON_1 PERSON_2        link two people, then show PERSON_1's connections

The mapping is fetched from the graph endpoint or read from a file.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Invalid command.")
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.sourceURL, "source-url", "", "fetch the network from this URL")
	pf.StringVar(&a.sourceFile, "source-file", "", "read the network from this JSON or YAML file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newShowNetworkCmd(a),
		newShowConnectionsCmd(a),
		newConnectCmd(a),
	)

	return root
}

// setup resolves configuration, builds the logger, fetches the network and
// wraps it in a Service.
func (a *app) setup(ctx context.Context) (*network.Service, error) {
	// flags override file and env; validate only the final result
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.sourceURL != "" {
		cfg.Source.Kind = config.KindHTTP
		cfg.Source.URL = a.sourceURL
	}
	if a.sourceFile != "" {
		cfg.Source.Kind = config.KindFile
		cfg.Source.Path = a.sourceFile
	}
	if a.logLevel != "" {
		cfg.Log.Level = strings.ToLower(a.logLevel)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	a.cfg = cfg

	if a.log, err = newLogger(cfg.Log); err != nil {
		return nil, err
	}

	m, err := newProvider(cfg.Source, a.log).Fetch(ctx)
	if err != nil {
		return nil, err
	}
	a.log.Debug("network loaded",
		zap.String("source", cfg.Source.Kind),
		zap.Int("people", m.Len()),
	)

	return network.NewService(core.NewGraph(m),
		network.WithLogger(a.log),
		network.WithMaxDegree(cfg.Report.MaxDegree),
	)
}

// newProvider picks the adjacency source named by cfg.Kind.
func newProvider(cfg config.SourceConfig, log *zap.Logger) provider.Provider {
	if cfg.Kind == config.KindFile {
		return provider.NewFileProvider(cfg.Path, cfg.Field)
	}

	return provider.NewHTTPProvider(cfg.URL,
		provider.WithField(cfg.Field),
		provider.WithTimeout(cfg.Timeout),
		provider.WithRetries(uint64(cfg.Retries)),
		provider.WithHTTPLogger(log.Named("provider")),
	)
}

// newLogger builds a production JSON or development console logger at the
// configured level.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	zc.Level = level

	return zc.Build()
}
