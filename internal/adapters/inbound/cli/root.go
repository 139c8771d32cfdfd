package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/abscore/abscore/internal/adapters/outbound/config"
	"github.com/abscore/abscore/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
)

// settings carries the persistent flags, layered over ABSCORE_* environment
// variables through viper.
type settings struct {
	v *viper.Viper
}

// loadConfig reads the scoring config. An explicit --config file must exist;
// otherwise .abscore.yaml is looked up in dir and defaults apply when absent.
func (s settings) loadConfig(dir string) (domain.Config, error) {
	loader := config.New()
	var (
		cfg domain.Config
		err error
	)
	if path := s.v.GetString("config"); path != "" {
		cfg, err = loader.LoadFile(path, false)
	} else {
		cfg, err = loader.Load(dir)
	}
	if err != nil {
		return domain.Config{}, err
	}
	if w := s.v.GetInt("workers"); w > 0 {
		cfg.Workers = w
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	s := settings{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "abscore",
		Short: "Score antibody designs",
		Long: "abscore runs structure, developability and novelty tools over submitted antibody designs " +
			"and turns their measurements into a ranked, gated 0-100 score.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to a config file (default: <root>/.abscore.yaml)")
	cmd.PersistentFlags().Int("workers", 0, "Designs scored concurrently (overrides config)")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := s.v.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(fmt.Sprintf("binding root flags: %v", err))
	}
	s.v.SetEnvPrefix("ABSCORE")
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.v.AutomaticEnv()

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if s.v.GetBool("debug") {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRunCmd(s))
	cmd.AddCommand(newScoreCmd(s))
	cmd.AddCommand(newRescoreCmd())
	cmd.AddCommand(newIdentityCmd(s))
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newToolsCmd(s))
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newCacheCmd())
	cmd.AddCommand(newMCPCmd(s))
	cmd.AddCommand(newInitCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI, cancelling in-flight tools on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

// absDir resolves the optional directory argument, defaulting to ".".
func absDir(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}
