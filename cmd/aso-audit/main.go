// cmd/aso-audit/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"aso-engine/internal/common/config"
	"aso-engine/internal/common/logger"
	"aso-engine/internal/common/observability"
	"aso-engine/internal/engine/audit"
	"aso-engine/internal/engine/diff"
	"aso-engine/internal/engine/fusion"
	"aso-engine/internal/models"
	"aso-engine/pkg/registry"
)

func main() {
	mode := flag.String("mode", "audit", "run mode: audit, diff, locales")
	inputPath := flag.String("input", "", "path to the JSON input document (defaults to stdin)")
	baselinePath := flag.String("baseline", "", "diff mode: path to the baseline audit input")
	outputPath := flag.String("output", "", "write the JSON result here instead of stdout")
	brandName := flag.String("brand", "", "locales mode: brand name for brand classification")
	brandAliases := flag.String("brand-aliases", "", "locales mode: comma-separated brand aliases")
	flag.Parse()

	zapLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "healthy",
					"time":   time.Now().Format(time.RFC3339),
				})
			})
			zapLog.Info("metrics server listening", zap.String("address", cfg.Metrics.Address))
			if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
				zapLog.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	reg, err := loadRegistry(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("registry load failed", zap.Error(err))
	}
	zapLog.Info("registry loaded",
		zap.String("version", reg.Version),
		zap.Int("kpis", reg.Size()),
	)

	svc := audit.NewService(reg, audit.Options{
		ComboCapPerPattern: cfg.Engine.ComboCapPerPattern,
		RecommendLimit:     cfg.Engine.RecommendLimit,
		DefaultLocale:      cfg.Engine.DefaultLocale,
		DefaultPlatform:    models.Platform(cfg.Engine.DefaultPlatform),
	}, log).WithObservability(obs)

	ctx := context.Background()

	var result interface{}
	switch *mode {
	case "audit":
		var in models.AuditInput
		if err := readJSON(*inputPath, &in); err != nil {
			zapLog.Fatal("input read failed", zap.Error(err))
		}
		result, err = svc.Execute(ctx, &in)

	case "diff":
		result, err = runDiff(ctx, svc, *baselinePath, *inputPath)

	case "locales":
		var locales []models.LocaleMetadata
		if err := readJSON(*inputPath, &locales); err != nil {
			zapLog.Fatal("input read failed", zap.Error(err))
		}
		result = fusion.Analyze(locales, fusion.Options{
			CapPerPattern: cfg.Engine.ComboCapPerPattern,
			BrandName:     *brandName,
			BrandAliases:  splitAliases(*brandAliases),
		})

	default:
		zapLog.Fatal("unknown mode", zap.String("mode", *mode))
	}
	if err != nil {
		zapLog.Fatal("run failed", zap.Error(err))
	}

	if err := writeJSON(*outputPath, result); err != nil {
		zapLog.Fatal("output write failed", zap.Error(err))
	}
}

// runDiff audits both metadata versions and compares the resulting combo
// sets.
func runDiff(ctx context.Context, svc *audit.Service, baselinePath, candidatePath string) (models.ComboDiff, error) {
	var baseline, candidate models.AuditInput
	if err := readJSON(baselinePath, &baseline); err != nil {
		return models.ComboDiff{}, fmt.Errorf("baseline: %w", err)
	}
	if err := readJSON(candidatePath, &candidate); err != nil {
		return models.ComboDiff{}, fmt.Errorf("candidate: %w", err)
	}

	baseRes, err := svc.Execute(ctx, &baseline)
	if err != nil {
		return models.ComboDiff{}, fmt.Errorf("baseline audit: %w", err)
	}
	candRes, err := svc.Execute(ctx, &candidate)
	if err != nil {
		return models.ComboDiff{}, fmt.Errorf("candidate audit: %w", err)
	}

	return diff.Compare(
		baseRes.ComboAnalysis.AllPossibleCombos,
		candRes.ComboAnalysis.AllPossibleCombos,
	), nil
}

func splitAliases(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func loadRegistry(path string) (*registry.KpiRegistry, error) {
	if path == "" {
		return registry.LoadDefault()
	}
	return registry.LoadRegistry(path)
}

func readJSON(path string, v interface{}) error {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
