package chatlog

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"commerce-insights-go/internal/logger"
)

// Row is one structured observation derived from a log entry.
type Row struct {
	LatencyMs              float64
	RetrievalTimeMs        float64
	GenerationTimeMs       float64
	GenerationInputTokens  float64
	GenerationOutputTokens float64
	AnswerCorrect          *bool // nil when there was no feedback
	WikiChunks             int
	PDFChunks              int
	ConfChunks             int
}

// Preprocess turns raw entries into rows. Entries with no measured latency
// are dropped; thumb_up/thumb_down feedback maps to a correctness flag and
// anything else leaves it unknown.
func Preprocess(entries []Entry) []Row {
	log := logger.New().WithField("component", "chatlog")

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		if e.ResponseLatencyMs == nil {
			continue
		}

		var correct *bool
		switch strings.ToLower(e.UserFeedback) {
		case "thumb_up":
			v := true
			correct = &v
		case "thumb_down":
			v := false
			correct = &v
		}

		var wiki, pdf, conf int
		for _, c := range e.RetrievedChunks {
			if strings.Contains(c.Source, "Wiki") {
				wiki++
			}
			if strings.Contains(c.Source, "PDF") {
				pdf++
			}
			if strings.Contains(c.Source, "Confluence") {
				conf++
			}
		}

		rows = append(rows, Row{
			LatencyMs:              *e.ResponseLatencyMs,
			RetrievalTimeMs:        e.RetrievalTimeMs,
			GenerationTimeMs:       e.GenerationTimeMs,
			GenerationInputTokens:  e.GenerationInputTokens,
			GenerationOutputTokens: e.GenerationOutputTokens,
			AnswerCorrect:          correct,
			WikiChunks:             wiki,
			PDFChunks:              pdf,
			ConfChunks:             conf,
		})
	}

	log.WithField("entries", len(entries)).WithField("rows", len(rows)).Info("logs preprocessed")
	return rows
}

// Frame lays the rows out as a dataframe for stats and CSV output.
// answer_correct renders as "true"/"false"/"" since the flag is nullable.
func Frame(rows []Row) dataframe.DataFrame {
	n := len(rows)
	latency := make([]float64, n)
	retrieval := make([]float64, n)
	generation := make([]float64, n)
	inputTokens := make([]float64, n)
	outputTokens := make([]float64, n)
	correct := make([]string, n)
	wiki := make([]int, n)
	pdf := make([]int, n)
	conf := make([]int, n)

	for i, r := range rows {
		latency[i] = r.LatencyMs
		retrieval[i] = r.RetrievalTimeMs
		generation[i] = r.GenerationTimeMs
		inputTokens[i] = r.GenerationInputTokens
		outputTokens[i] = r.GenerationOutputTokens
		if r.AnswerCorrect != nil {
			if *r.AnswerCorrect {
				correct[i] = "true"
			} else {
				correct[i] = "false"
			}
		}
		wiki[i] = r.WikiChunks
		pdf[i] = r.PDFChunks
		conf[i] = r.ConfChunks
	}

	return dataframe.New(
		series.New(latency, series.Float, "latency_ms"),
		series.New(retrieval, series.Float, "retrieval_time_ms"),
		series.New(generation, series.Float, "generation_time_ms"),
		series.New(inputTokens, series.Float, "generation_input_tokens"),
		series.New(outputTokens, series.Float, "generation_output_tokens"),
		series.New(correct, series.String, "answer_correct"),
		series.New(wiki, series.Int, "wiki_chunks"),
		series.New(pdf, series.Int, "pdf_chunks"),
		series.New(conf, series.Int, "conf_chunks"),
	)
}
