package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/abscore/abscore/internal/adapters/outbound/tui"
	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/identity"
	"github.com/abscore/abscore/internal/domain/scoring"
	"github.com/spf13/cobra"
)

// identityReport is the JSON shape of the identity command.
type identityReport struct {
	Challenge string          `json:"challenge"`
	Strategy  string          `json:"strategy"`
	Result    identity.Result `json:"result"`
	Novelty   float64         `json:"novelty_score"`
}

func newIdentityCmd(s settings) *cobra.Command {
	var (
		fastaPath  string
		sequence   string
		challenge  string
		strategy   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Compare a heavy chain's CDR-H3 against a challenge reference panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			heavy, err := heavyChain(fastaPath, sequence)
			if err != nil {
				return err
			}

			cfg, err := s.loadConfig(".")
			if err != nil {
				return err
			}
			panel, err := cfg.Panel(challenge)
			if err != nil {
				return err
			}
			if strategy == "" {
				strategy = cfg.Novelty.Strategy
			}
			analyzer, err := identity.NewAnalyzer(strategy)
			if err != nil {
				return err
			}

			res := analyzer.Identity(heavy, panel)
			if jsonOutput {
				return renderJSON(cmd, identityReport{
					Challenge: strings.ToLower(challenge),
					Strategy:  strategy,
					Result:    res,
					Novelty:   scoring.ScoreNovelty(res.Percent),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderIdentity(res, strategy))
			return nil
		},
	}

	cmd.Flags().StringVar(&fastaPath, "fasta", "", "FASTA holding the design's chains")
	cmd.Flags().StringVar(&sequence, "sequence", "", "Heavy chain sequence")
	cmd.Flags().StringVar(&challenge, "challenge", "", "Challenge whose reference panel is used")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Identity strategy: window or motif (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("challenge")
	cmd.MarkFlagsMutuallyExclusive("fasta", "sequence")
	cmd.MarkFlagsOneRequired("fasta", "sequence")

	return cmd
}

func heavyChain(fastaPath, sequence string) (string, error) {
	if sequence != "" {
		return strings.ToUpper(strings.TrimSpace(sequence)), nil
	}
	f, err := os.Open(fastaPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMissingInput, err)
	}
	defer f.Close()

	records, err := identity.ParseFASTA(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", fastaPath, err)
	}
	heavy := identity.HeavyChain(records)
	if heavy == "" {
		return "", errors.New("no heavy chain found in " + fastaPath)
	}
	return heavy, nil
}
