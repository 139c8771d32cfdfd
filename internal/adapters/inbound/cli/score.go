package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/abscore/abscore/internal/adapters/outbound/submission"
	"github.com/abscore/abscore/internal/adapters/outbound/toolrunner"
	"github.com/abscore/abscore/internal/adapters/outbound/tui"
	"github.com/abscore/abscore/internal/application"
	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/scoring"
	"github.com/spf13/cobra"
)

// metricFlags maps score flags onto the raw metric they set.
var metricFlags = []struct {
	name  string
	usage string
	set   func(*domain.RawMetrics, float64)
}{
	{"delta-g", "Binding free energy ΔG (kcal/mol)", func(r *domain.RawMetrics, v float64) { r.BindingEnergy = domain.Float(v) }},
	{"dockq", "Docking quality vs native (0-1)", func(r *domain.RawMetrics, v float64) { r.DockingQuality = domain.Float(v) }},
	{"iface-plddt", "Interface residue confidence (0-100)", func(r *domain.RawMetrics, v float64) { r.InterfaceResidue = domain.Float(v) }},
	{"ipsae", "Predicted interface confidence (0-1)", func(r *domain.RawMetrics, v float64) { r.InterfaceConfidence = domain.Float(v) }},
	{"paratope-area", "Buried paratope area (Å²)", func(r *domain.RawMetrics, v float64) { r.ParatopeArea = domain.Float(v) }},
	{"solubility", "Predicted solubility (0-1)", func(r *domain.RawMetrics, v float64) { r.Solubility = domain.Float(v) }},
	{"cdr3-identity", "CDR-H3 identity to the closest reference (%)", func(r *domain.RawMetrics, v float64) { r.CDR3Identity = domain.Float(v) }},
}

func newScoreCmd(s settings) *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   float64
		contacts   int
		design     domain.DesignInput
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a single design",
		Long: "Score one design, either from metric values given as flags or by running the configured tools on " +
			"--complex/--pae/--fasta. Metric flags override measured values.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw domain.RawMetrics
			design.Challenge = strings.ToLower(design.Challenge)

			if design.ComplexPDB != "" {
				measured, err := measureDesign(cmd, s, design)
				if err != nil {
					return err
				}
				raw = measured
			}

			for _, f := range metricFlags {
				if cmd.Flags().Changed(f.name) {
					v, _ := cmd.Flags().GetFloat64(f.name)
					f.set(&raw, v)
				}
			}
			if cmd.Flags().Changed("contacts") {
				raw.Contacts = domain.Int(contacts)
			}

			row := domain.NewResultRow(design, raw, scoring.ScoreDesign(raw))

			if jsonOutput {
				if err := renderJSON(cmd, row); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderScorecard(row))
			}

			if ciMode {
				if !row.IsViable {
					return fmt.Errorf("design is not viable: %s", *row.FailReason)
				}
				if row.FinalScore100 < minScore {
					return fmt.Errorf("score %.1f is below minimum %.1f", row.FinalScore100, minScore)
				}
			}
			return nil
		},
	}

	for _, f := range metricFlags {
		cmd.Flags().Float64(f.name, 0, f.usage)
	}
	cmd.Flags().IntVar(&contacts, "contacts", 0, "Intermolecular contact count")

	cmd.Flags().StringVar(&design.Team, "team", "", "Team name")
	cmd.Flags().StringVar(&design.DesignID, "design", "", "Design identifier")
	cmd.Flags().StringVar(&design.Challenge, "challenge", "", "Challenge id selecting the reference panel (e.g. challenge1)")
	cmd.Flags().StringVar(&design.ComplexPDB, "complex", "", "Predicted complex PDB; runs the configured tools")
	cmd.Flags().StringVar(&design.PAEJSON, "pae", "", "PAE JSON of the predicted complex")
	cmd.Flags().StringVar(&design.FASTA, "fasta", "", "FASTA with heavy, light and antigen chains")
	cmd.Flags().StringVar(&design.NativeComplex, "native", "", "Native complex for docking quality")

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the scored row as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if not viable or below --min")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum 0-100 score for CI mode")

	return cmd
}

// measureDesign runs the tool pipeline on one design described by flags.
func measureDesign(cmd *cobra.Command, s settings, d domain.DesignInput) (domain.RawMetrics, error) {
	if d.Challenge == "" {
		return domain.RawMetrics{}, fmt.Errorf("%w: --challenge is required with --complex", domain.ErrConfiguration)
	}

	cfg, err := s.loadConfig(filepath.Dir(d.ComplexPDB))
	if err != nil {
		return domain.RawMetrics{}, err
	}
	logger := slog.Default()
	scorer, err := application.NewScoreService(cfg, toolrunner.New(logger), submission.NewFASTAReader(),
		application.WithLogger(logger))
	if err != nil {
		return domain.RawMetrics{}, err
	}
	return scorer.Measure(cmd.Context(), d)
}
