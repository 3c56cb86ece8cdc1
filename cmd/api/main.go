package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"call-insights-go/internal/actionable"
	"call-insights-go/internal/aggregator"
	"call-insights-go/internal/analyzer"
	"call-insights-go/internal/dataset"
	"call-insights-go/internal/logger"
	"call-insights-go/internal/processor"
	"call-insights-go/internal/types"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "call-insights-go").Info("starting service")

	an := analyzer.NewDefault()
	datasetPath := envOr("DATASET_PATH", "call_log.xlsx")

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// analyze endpoint: run the pure analytic core on a caller-supplied
	// transcription, no vendor calls involved
	mux.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "analyze")
		if r.Method != http.MethodPost {
			http.Error(w, "POST required", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Transcription types.TranscriptionResult `json:"transcription"`
			Context       types.CallContext         `json:"context"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			reqLog.WithError(err).Warn("bad analyze payload")
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.Context.CallDirection == "" {
			req.Context.CallDirection = types.DirectionInbound
		}
		start := time.Now()
		report := an.Analyze(req.Transcription, req.Context)
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("outcome", report.SalesMetrics.Outcome).
			Info("analysis finished")
		writeJSON(w, reqLog, report)
	})

	// process endpoint: full pipeline for one recording URL
	mux.HandleFunc("/process", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "process")
		audioURL := r.URL.Query().Get("audio_url")
		if audioURL == "" {
			reqLog.Warn("missing audio_url")
			http.Error(w, "missing audio_url", http.StatusBadRequest)
			return
		}
		rec := types.CallRecord{
			AudioURL:      audioURL,
			CallDirection: r.URL.Query().Get("direction"),
			CustomerName:  r.URL.Query().Get("customer"),
		}
		res, err := processor.ProcessCall(an, rec)
		if err != nil {
			reqLog.WithError(err).Warn("processor returned error")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			_ = enc.Encode(res)
			return
		}
		writeJSON(w, reqLog, res)
	})

	// demo endpoint (process first N rows from the call log)
	mux.HandleFunc("/demo", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "demo")
		reqLog.Info("demo invoked")
		results, err := processBatch(an, datasetPath, demoLimit())
		if err != nil {
			reqLog.WithError(err).Error("call log load error")
			http.Error(w, "call log load error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, reqLog, results)
	})

	// dashboard endpoint: aggregate a batch, derive the action card, and
	// optionally export a workbook when EXPORT_PATH is set
	mux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "dashboard")
		results, err := processBatch(an, datasetPath, demoLimit())
		if err != nil {
			reqLog.WithError(err).Error("call log load error")
			http.Error(w, "call log load error", http.StatusInternalServerError)
			return
		}
		reports := make([]types.AnalysisReport, 0, len(results))
		for _, res := range results {
			if res.Error == "" {
				reports = append(reports, res.Report)
			}
		}
		dash := aggregator.Aggregate(reports)
		card := actionable.Generate(dash)

		out := map[string]interface{}{
			"dashboard":   dash,
			"action_card": card,
		}
		if exportPath := os.Getenv("EXPORT_PATH"); exportPath != "" {
			if err := dataset.Export(exportPath, results, dash, card); err != nil {
				reqLog.WithError(err).Error("workbook export failed")
			} else {
				reqLog.WithField("export_path", exportPath).Info("workbook exported")
				out["exported_to"] = exportPath
			}
		}
		writeJSON(w, reqLog, out)
	})

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func processBatch(an *analyzer.Analyzer, datasetPath string, limit int) ([]processor.CallResult, error) {
	records, err := dataset.Load(datasetPath)
	if err != nil {
		return nil, err
	}
	if len(records) > limit {
		records = records[:limit]
	}
	results := make([]processor.CallResult, 0, len(records))
	for _, rec := range records {
		res, _ := processor.ProcessCall(an, rec)
		results = append(results, res)
	}
	return results, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func demoLimit() int {
	if v := os.Getenv("DEMO_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 5
}

func writeJSON(w http.ResponseWriter, reqLog *logrus.Entry, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		reqLog.Error("failed to write response: ", err)
	}
}
