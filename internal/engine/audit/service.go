// internal/engine/audit/service.go

// Package audit orchestrates the full single-locale pipeline: tokenize,
// generate, classify, score. One call, one immutable result.
package audit

import (
	"context"
	goerrors "errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"aso-engine/internal/common/errors"
	"aso-engine/internal/common/logger"
	"aso-engine/internal/common/metrics"
	"aso-engine/internal/common/observability"
	"aso-engine/internal/engine/classify"
	"aso-engine/internal/engine/combos"
	"aso-engine/internal/engine/kpi"
	"aso-engine/internal/engine/tokenizer"
	"aso-engine/internal/models"
	"aso-engine/pkg/registry"
)

// Options tunes one Service instance. Zero values pick engine defaults.
type Options struct {
	ComboCapPerPattern int
	RecommendLimit     int
	DefaultLocale      string
	DefaultPlatform    models.Platform
}

const defaultRecommendLimit = 50

// Service runs audits against a fixed registry. It holds no per-call state
// and is safe for concurrent use.
type Service struct {
	registry *registry.KpiRegistry
	opts     Options
	log      logger.Logger
	obs      *observability.Observability
}

func NewService(reg *registry.KpiRegistry, opts Options, log logger.Logger) *Service {
	if opts.RecommendLimit <= 0 {
		opts.RecommendLimit = defaultRecommendLimit
	}
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = "en-US"
	}
	if opts.DefaultPlatform == "" {
		opts.DefaultPlatform = models.PlatformPrimary
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Service{registry: reg, opts: opts, log: log}
}

// WithObservability attaches an OTel recorder. Optional; the pipeline runs
// identically without one.
func (s *Service) WithObservability(obs *observability.Observability) *Service {
	s.obs = obs
	return s
}

// Execute runs one complete audit. The result depends only on the input and
// the registry version; repeated calls with the same input are identical
// except for AuditID, GeneratedAt and DurationMs.
func (s *Service) Execute(ctx context.Context, in *models.AuditInput) (*models.AuditResult, error) {
	start := time.Now()

	if err := validateInput(in); err != nil {
		platform := ""
		if in != nil {
			platform = string(in.Platform)
		}
		code := string(errors.ErrCodeInputParseFailed)
		var stdErr *errors.StandardError
		if goerrors.As(err, &stdErr) {
			code = string(stdErr.Code)
		}
		metrics.AuditsFailed.WithLabelValues(platform, code).Inc()
		return nil, err
	}

	locale := in.Locale
	if locale == "" {
		locale = s.opts.DefaultLocale
	}
	platform := in.Platform
	if platform == "" {
		platform = s.opts.DefaultPlatform
	}

	log := s.log.WithFields(map[string]interface{}{
		"locale":   locale,
		"platform": string(platform),
	})
	log.Info("starting audit", map[string]interface{}{
		"titleLength":    len([]rune(in.Title)),
		"subtitleLength": len([]rune(in.Subtitle)),
	})

	brandWords := append([]string{in.BrandName}, in.BrandAliases...)
	tok := tokenizer.New(locale, brandWords)

	title := tok.Tokenize(in.Title, models.FieldTitle)
	subtitle := tok.Tokenize(in.Subtitle, models.FieldSubtitle)
	keywords := tok.Tokenize(in.Keywords, models.FieldKeywords)
	if in.Tokens != nil {
		if in.Tokens.Title != nil {
			title.Tokens = in.Tokens.Title
		}
		if in.Tokens.Subtitle != nil {
			subtitle.Tokens = in.Tokens.Subtitle
		}
	}

	gen := combos.NewGenerator(combos.Options{
		CapPerPattern: s.opts.ComboCapPerPattern,
		ExistingTexts: in.ExistingCombos,
	})
	set := gen.Generate(title.Tokens, subtitle.Tokens, keywords.Tokens)

	classify.ClassifyStrength(set)
	matcher := classify.NewBrandMatcher(in.BrandName, in.BrandAliases)
	classify.ClassifyBrand(set, matcher)

	sortByStrength(set)
	metrics.CombosGenerated.WithLabelValues(locale).Observe(float64(len(set)))

	analysis := s.buildAnalysis(set)

	kpiRes := kpi.NewEvaluator(s.registry).Evaluate(&kpi.FormulaInput{
		Title:          in.Title,
		Subtitle:       in.Subtitle,
		Platform:       platform,
		TitleTokens:    title.Tokens,
		SubtitleTokens: subtitle.Tokens,
		RawWordCount:   title.RawWordCount + subtitle.RawWordCount,
		DroppedCount:   title.DroppedCount + subtitle.DroppedCount,
		Combos:         set,
	})
	for id, r := range kpiRes.Kpis {
		if r.Failed {
			metrics.KpiFormulaFailures.WithLabelValues(id).Inc()
			log.Warn("kpi formula failed", map[string]interface{}{
				"kpiId":       id,
				"failureCode": r.FailureCode,
			})
		}
	}

	duration := time.Since(start)
	result := &models.AuditResult{
		AuditID:       uuid.New().String(),
		Locale:        locale,
		Platform:      platform,
		ComboAnalysis: analysis,
		KpiResult:     kpiRes,
		GeneratedAt:   start.UTC(),
		DurationMs:    duration.Milliseconds(),
	}

	metrics.AuditsCompleted.WithLabelValues(string(platform)).Inc()
	metrics.AuditDuration.WithLabelValues(string(platform)).Observe(duration.Seconds())
	if s.obs != nil {
		s.obs.RecordAuditProcessed(ctx, "completed")
		s.obs.RecordAuditDuration(ctx, duration, "completed")
	}

	log.Info("audit completed", map[string]interface{}{
		"auditId":      result.AuditID,
		"totalCombos":  analysis.Stats.Total,
		"overallScore": kpiRes.OverallScore,
		"durationMs":   result.DurationMs,
	})

	return result, nil
}

// buildAnalysis splits the classified set into the analysis views. The input
// is already sorted strongest first, so RecommendedToAdd is the strongest
// missing combos up to the limit.
func (s *Service) buildAnalysis(set []models.Combo) models.ComboAnalysis {
	analysis := models.ComboAnalysis{
		AllPossibleCombos: set,
		Stats:             models.BuildComboStats(set),
	}
	for _, c := range set {
		if c.Exists {
			analysis.ExistingCombos = append(analysis.ExistingCombos, c)
			continue
		}
		analysis.MissingCombos = append(analysis.MissingCombos, c)
		if len(analysis.RecommendedToAdd) < s.opts.RecommendLimit {
			analysis.RecommendedToAdd = append(analysis.RecommendedToAdd, c)
		}
	}
	return analysis
}

func validateInput(in *models.AuditInput) error {
	if in == nil {
		return errors.NewInputParseFailedError(fmt.Errorf("input is nil"))
	}
	// Empty or missing metadata text is not an error: the pipeline produces
	// an empty combo set and a usable KPI vector.
	switch in.Platform {
	case "", models.PlatformPrimary, models.PlatformSecondary:
	default:
		return errors.NewInputParseFailedError(fmt.Errorf("unknown platform %q", in.Platform))
	}
	for i, alias := range in.BrandAliases {
		if len([]rune(alias)) > 64 {
			return errors.NewBrandAliasInvalidError(fmt.Sprintf("alias %d exceeds 64 characters", i))
		}
	}
	return nil
}

// sortByStrength orders a classified set strongest first with a fully keyed,
// deterministic tie-break.
func sortByStrength(set []models.Combo) {
	sort.SliceStable(set, func(i, j int) bool {
		if set[i].Tier != set[j].Tier {
			return set[i].Tier.Strength() > set[j].Tier.Strength()
		}
		ri, rj := set[i].TotalRelevance(), set[j].TotalRelevance()
		if ri != rj {
			return ri > rj
		}
		if set[i].Length != set[j].Length {
			return set[i].Length < set[j].Length
		}
		return set[i].Text < set[j].Text
	})
}
