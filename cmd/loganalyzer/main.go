package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"commerce-insights-go/internal/chatlog"
	"commerce-insights-go/internal/logger"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New().WithRun().WithField("service", "chatlog-analyzer")

	logFile := envOr("LOG_FILE", "logs.json")
	log.WithField("log_file", logFile).Info("loading chatbot logs")

	entries, err := chatlog.Load(logFile)
	if err != nil {
		log.WithError(err).Fatal("failed to load logs")
	}

	rows := chatlog.Preprocess(entries)
	summary := chatlog.Summarize(rows)
	cost := chatlog.DefaultCostTradeoff()

	fmt.Println("\n==== Chatbot Performance Summary ====")
	fmt.Printf("Total log entries analyzed: %d\n", summary.TotalEntries)
	fmt.Printf("P99 Latency: %.1f ms\n", summary.P99LatencyMs)
	fmt.Printf("Average generation input tokens: %.1f\n", summary.AvgInputTokens)
	if summary.AccuracyRate != nil {
		fmt.Printf("Answer correctness rate: %.2f%%\n", *summary.AccuracyRate*100)
	} else {
		fmt.Println("No answer correctness feedback available.")
	}
	fmt.Printf("\nAverage chunk counts for correct answers: wiki=%.2f pdf=%.2f conf=%.2f\n",
		summary.ChunksCorrect.Wiki, summary.ChunksCorrect.PDF, summary.ChunksCorrect.Conf)
	fmt.Printf("Average chunk counts for incorrect answers: wiki=%.2f pdf=%.2f conf=%.2f\n",
		summary.ChunksIncorrect.Wiki, summary.ChunksIncorrect.PDF, summary.ChunksIncorrect.Conf)

	fmt.Printf("\nOption A adds %.0fms fixed latency.\n", cost.OptionALatencyMs)
	fmt.Printf("Option B adds %.0fms retrieval latency.\n", cost.OptionBRetrievalDelay)
	fmt.Printf("Option B estimated monthly cost increase: $%.2f\n", cost.ExtraMonthlyCost)

	log.WithField("p99_latency_ms", summary.P99LatencyMs).
		WithField("entries", summary.TotalEntries).
		Info("summary computed")

	outDir := filepath.Dir(logFile)

	csvPath := filepath.Join(outDir, "log_analysis_summary.csv")
	if err := chatlog.WriteSummaryCSV(rows, csvPath); err != nil {
		log.WithError(err).Fatal("failed to write summary CSV")
	}
	fmt.Printf("\n[+] Summary CSV saved: %s\n", csvPath)

	reportPath := filepath.Join(outDir, "chatlog_report.xlsx")
	if err := chatlog.WriteReportXLSX(rows, summary, cost, reportPath); err != nil {
		log.WithError(err).Fatal("failed to write report workbook")
	}
	fmt.Printf("[+] Report workbook saved: %s\n", reportPath)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
