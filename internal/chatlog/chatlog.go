// Package chatlog analyzes chatbot interaction logs: latency and accuracy
// statistics, retrieval-source breakdowns and the retrieval-strategy cost
// trade-off.
package chatlog

import (
	"encoding/json"
	"fmt"
	"os"

	"commerce-insights-go/internal/logger"
)

// Chunk is one retrieved context chunk reference inside a log entry.
type Chunk struct {
	Source string `json:"source"`
}

// Entry is a raw interaction log entry. Latency is a pointer so that
// entries without a measured latency can be told apart from zero.
type Entry struct {
	ResponseLatencyMs      *float64 `json:"response_latency_ms"`
	RetrievalTimeMs        float64  `json:"retrieval_time_ms"`
	GenerationTimeMs       float64  `json:"generation_time_ms"`
	GenerationInputTokens  float64  `json:"generation_input_tokens"`
	GenerationOutputTokens float64  `json:"generation_output_tokens"`
	UserFeedback           string   `json:"user_feedback"`
	RetrievedChunks        []Chunk  `json:"retrieved_chunks"`
}

// Load reads a JSON array of log entries. An unreadable or undecodable
// source aborts the run.
func Load(path string) ([]Entry, error) {
	log := logger.New().WithField("component", "chatlog").WithField("path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Error("read failed")
		return nil, fmt.Errorf("failed to load logs from %s: %w", path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.WithError(err).Error("decode failed")
		return nil, fmt.Errorf("failed to load logs from %s: %w", path, err)
	}

	log.WithField("entries", len(entries)).Info("log entries loaded")
	return entries, nil
}
