package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/identity"
	"github.com/abscore/abscore/internal/domain/scoring"
	"github.com/abscore/abscore/internal/domain/toolparse"
	"golang.org/x/sync/errgroup"
)

// ScoreService orchestrates the per-design pipeline:
// read sequences → run each external tool → parse → paratope proxy → CDR3 identity → score.
type ScoreService struct {
	cfg      domain.Config
	runner   domain.ToolRunner
	reader   domain.SequenceReader
	analyzer identity.Analyzer
	parsers  map[string]toolparse.Parser
	cache    domain.MeasurementCache
	cacheKey string
	logger   *slog.Logger
}

// ScoreOption configures a ScoreService.
type ScoreOption func(*ScoreService)

// WithCache reuses raw metrics of designs whose inputs did not change.
func WithCache(c domain.MeasurementCache) ScoreOption {
	return func(s *ScoreService) {
		s.cache = c
	}
}

func WithLogger(l *slog.Logger) ScoreOption {
	return func(s *ScoreService) {
		s.logger = l
	}
}

// NewScoreService validates the configuration and resolves the identity
// strategy and every tool parser up front, so configuration errors surface
// before any design runs.
func NewScoreService(
	cfg domain.Config,
	runner domain.ToolRunner,
	reader domain.SequenceReader,
	opts ...ScoreOption,
) (*ScoreService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	analyzer, err := identity.NewAnalyzer(cfg.Novelty.Strategy)
	if err != nil {
		return nil, err
	}
	parsers := make(map[string]toolparse.Parser, len(cfg.Tools))
	for _, name := range cfg.ToolNames() {
		p, err := toolparse.Lookup(cfg.Tools[name].ParserFor(name))
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", name, err)
		}
		parsers[name] = p
	}
	key, err := configKey(cfg)
	if err != nil {
		return nil, err
	}

	s := &ScoreService{
		cfg:      cfg,
		runner:   runner,
		reader:   reader,
		analyzer: analyzer,
		parsers:  parsers,
		cacheKey: key,
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Config returns the configuration the service was built with.
func (s *ScoreService) Config() domain.Config { return s.cfg }

// Measure produces the raw metrics of one design. Tool failures only blank
// the metrics of the failing tool; the returned error is reserved for
// configuration problems such as a missing reference panel.
func (s *ScoreService) Measure(ctx context.Context, d domain.DesignInput) (domain.RawMetrics, error) {
	panel, err := s.cfg.Panel(d.Challenge)
	if err != nil {
		return domain.RawMetrics{}, fmt.Errorf("design %s/%s: %w", d.Team, d.DesignID, err)
	}

	if s.cache != nil {
		cached, err := s.cache.Load(d, s.cacheKey)
		if err != nil {
			s.logger.Warn("cache read failed", "design", d.DesignID, "error", err)
		} else if cached != nil {
			s.logger.Debug("using cached metrics", "team", d.Team, "design", d.DesignID)
			return *cached, nil
		}
	}

	records, complete := s.readSequences(d)
	vars := s.templateVars(d, records)

	var raw domain.RawMetrics
	for _, name := range s.cfg.ToolNames() {
		if err := ctx.Err(); err != nil {
			return domain.RawMetrics{}, err
		}
		reading, outcome := s.runTool(ctx, name, d, vars)
		switch outcome {
		case toolParsed:
			reading.ApplyTo(&raw)
		case toolFailed:
			complete = false
		}
	}

	if raw.ParatopeArea == nil && raw.Contacts != nil && s.cfg.Paratope.AreaPerContact > 0 {
		raw.ParatopeArea = domain.Float(float64(*raw.Contacts) * s.cfg.Paratope.AreaPerContact)
	}

	if heavy := identity.HeavyChain(records); heavy != "" {
		res := s.analyzer.Identity(heavy, panel)
		if res.Percent != nil {
			raw.CDR3Identity = res.Percent
			raw.IdentityQC = domain.Bool(res.QC)
		}
		if !res.QC {
			s.logger.Warn("cdr3 identity unresolved", "team", d.Team, "design", d.DesignID)
		}
	}

	// A failed tool may succeed on the next run, so partial metrics are not kept.
	if s.cache != nil && complete && ctx.Err() == nil {
		if err := s.cache.Save(d, s.cacheKey, raw); err != nil {
			s.logger.Warn("cache write failed", "design", d.DesignID, "error", err)
		}
	}
	return raw, nil
}

// ScoreDesign measures and scores one design.
func (s *ScoreService) ScoreDesign(ctx context.Context, d domain.DesignInput) (domain.ResultRow, error) {
	raw, err := s.Measure(ctx, d)
	if err != nil {
		return domain.ResultRow{}, err
	}
	return domain.NewResultRow(d, raw, scoring.ScoreDesign(raw)), nil
}

// ScoreBatch scores designs concurrently, bounded by the configured worker
// count. Rows come back in input order. Every design's reference panel is
// checked before any tool runs.
func (s *ScoreService) ScoreBatch(ctx context.Context, designs []domain.DesignInput) ([]domain.ResultRow, error) {
	for _, d := range designs {
		if _, err := s.cfg.Panel(d.Challenge); err != nil {
			return nil, fmt.Errorf("design %s/%s: %w", d.Team, d.DesignID, err)
		}
	}

	rows := make([]domain.ResultRow, len(designs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.EffectiveWorkers())
	for i, d := range designs {
		g.Go(func() error {
			row, err := s.ScoreDesign(gctx, d)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// toolOutcome says what happened to one tool invocation.
type toolOutcome int

const (
	toolParsed toolOutcome = iota
	toolSkipped
	toolFailed
)

// runTool invokes one tool and parses its output. A tool whose inputs are
// unavailable is skipped; a run that errors or yields nothing parseable has
// failed. The reason is logged, never returned.
func (s *ScoreService) runTool(ctx context.Context, name string, d domain.DesignInput, vars map[string]string) (toolparse.Reading, toolOutcome) {
	td := s.cfg.Tools[name]
	log := s.logger.With("tool", name, "team", d.Team, "design", d.DesignID)

	inv, missing := s.invocation(name, td, vars)
	if len(missing) > 0 {
		log.Debug("tool skipped", "missing", strings.Join(missing, ","))
		return nil, toolSkipped
	}

	out, err := s.runner.Run(ctx, inv)
	if err != nil {
		log.Warn("tool failed", "error", err)
		return nil, toolFailed
	}
	if out.ExitCode != 0 {
		log.Warn("tool exited non-zero, parsing output anyway", "exit_code", out.ExitCode)
	}

	reading := s.parsers[name].Parse(out)
	if len(reading) == 0 {
		log.Warn("tool output unparseable")
		return nil, toolFailed
	}
	log.Debug("tool parsed", "metrics", reading.Metrics())
	return reading, toolParsed
}

// invocation expands a descriptor's templates. Any placeholder without a
// value is reported, and the tool should not run.
func (s *ScoreService) invocation(name string, td domain.ToolDescriptor, vars map[string]string) (domain.ToolInvocation, []string) {
	var missing []string
	expand := func(tpl string) string {
		out, m := domain.ExpandTemplate(tpl, vars)
		missing = append(missing, m...)
		return out
	}

	inv := domain.ToolInvocation{
		Tool:    name,
		Command: td.Command,
		Dir:     expand(td.Dir),
		Env:     td.Env,
		Timeout: s.cfg.EffectiveTimeout(td),
	}
	for _, a := range td.Args {
		inv.Args = append(inv.Args, expand(a))
	}
	if len(td.Outputs) > 0 {
		inv.Outputs = make(map[string]string, len(td.Outputs))
		for k, v := range td.Outputs {
			inv.Outputs[k] = expand(v)
		}
	}
	return inv, missing
}

// readSequences returns the design's FASTA records; ok is false when the
// file could not be read.
func (s *ScoreService) readSequences(d domain.DesignInput) (records []domain.SequenceRecord, ok bool) {
	if d.FASTA == "" {
		return nil, true
	}
	records, err := s.reader.ReadFASTA(d.FASTA)
	if err != nil {
		s.logger.Warn("reading sequences failed", "design", d.DesignID, "error", err)
		return nil, false
	}
	return records, true
}

// templateVars lists the values a tool descriptor may reference. Values
// that cannot be derived are left empty, which skips any tool needing them.
func (s *ScoreService) templateVars(d domain.DesignInput, records []domain.SequenceRecord) map[string]string {
	vars := map[string]string{
		"complex": d.ComplexPDB,
		"pae":     d.PAEJSON,
		"fasta":   d.FASTA,
		"native":  d.NativeComplex,
	}
	if vars["native"] == "" {
		vars["native"] = s.cfg.NativeFor(d.Challenge)
	}
	if d.ComplexPDB != "" {
		vars["complex_dir"] = filepath.Dir(d.ComplexPDB)
		vars["complex_stem"] = stem(d.ComplexPDB)
	}
	if d.FASTA != "" {
		vars["fasta_dir"] = filepath.Dir(d.FASTA)
		vars["fasta_stem"] = stem(d.FASTA)
	}
	antibody, antigen := identity.ChainLengths(records)
	if antibody > 0 && antigen > 0 {
		vars["antibody_len"] = strconv.Itoa(antibody)
		vars["antigen_len"] = strconv.Itoa(antigen)
	}
	return vars
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// configKey fingerprints everything that influences measured metrics.
func configKey(cfg domain.Config) (string, error) {
	data, err := json.Marshal(struct {
		Tools      map[string]domain.ToolDescriptor `json:"tools"`
		Novelty    domain.NoveltyConfig             `json:"novelty"`
		Challenges map[string]domain.Challenge      `json:"challenges"`
		Paratope   domain.ParatopeConfig            `json:"paratope"`
	}{cfg.Tools, cfg.Novelty, cfg.Challenges, cfg.Paratope})
	if err != nil {
		return "", fmt.Errorf("fingerprinting config: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// IsConfigurationError reports whether err must abort a batch.
func IsConfigurationError(err error) bool {
	return errors.Is(err, domain.ErrConfiguration)
}
