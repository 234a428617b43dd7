package chatlog

// ChunkMeans holds average retrieved-chunk counts per source.
type ChunkMeans struct {
	Wiki float64 `json:"wiki_chunks"`
	PDF  float64 `json:"pdf_chunks"`
	Conf float64 `json:"conf_chunks"`
}

// Summary is the headline report over preprocessed rows.
type Summary struct {
	TotalEntries    int        `json:"total_entries"`
	P99LatencyMs    float64    `json:"p99_latency_ms"`
	AvgInputTokens  float64    `json:"avg_generation_input_tokens"`
	AccuracyRate    *float64   `json:"accuracy_rate,omitempty"` // nil when no feedback at all
	ChunksCorrect   ChunkMeans `json:"chunks_correct"`
	ChunksIncorrect ChunkMeans `json:"chunks_incorrect"`
}

// Summarize computes the headline stats. The p99 comes from the latency
// series' empirical quantile.
func Summarize(rows []Row) Summary {
	s := Summary{TotalEntries: len(rows)}
	if len(rows) == 0 {
		return s
	}

	df := Frame(rows)
	s.P99LatencyMs = df.Col("latency_ms").Quantile(0.99)
	s.AvgInputTokens = df.Col("generation_input_tokens").Mean()

	var withFeedback, correctCount int
	var corr, incorr []Row
	for _, r := range rows {
		if r.AnswerCorrect == nil {
			continue
		}
		withFeedback++
		if *r.AnswerCorrect {
			correctCount++
			corr = append(corr, r)
		} else {
			incorr = append(incorr, r)
		}
	}
	if withFeedback > 0 {
		rate := float64(correctCount) / float64(withFeedback)
		s.AccuracyRate = &rate
	}
	s.ChunksCorrect = chunkMeans(corr)
	s.ChunksIncorrect = chunkMeans(incorr)
	return s
}

func chunkMeans(rows []Row) ChunkMeans {
	if len(rows) == 0 {
		return ChunkMeans{}
	}
	var m ChunkMeans
	for _, r := range rows {
		m.Wiki += float64(r.WikiChunks)
		m.PDF += float64(r.PDFChunks)
		m.Conf += float64(r.ConfChunks)
	}
	n := float64(len(rows))
	m.Wiki /= n
	m.PDF /= n
	m.Conf /= n
	return m
}

// CostEstimate quantifies the retrieval-strategy trade-off: option A adds a
// fixed re-ranking delay, option B widens retrieval and pays for the extra
// generation tokens.
type CostEstimate struct {
	ExtraChunks           int     `json:"extra_chunks"`
	TokensPerChunk        int     `json:"tokens_per_chunk"`
	QueriesPerMonth       int     `json:"queries_per_month"`
	CostPerMillionTokens  float64 `json:"cost_per_million_tokens"`
	ExtraMonthlyCost      float64 `json:"extra_monthly_cost"`
	OptionALatencyMs      float64 `json:"option_a_fixed_latency_ms"`
	OptionBRetrievalDelay float64 `json:"option_b_retrieval_latency_ms"`
}

// DefaultCostTradeoff evaluates the model with the standing assumptions:
// 6 extra chunks of ~400 tokens, 100k queries/month, $3 per million tokens.
func DefaultCostTradeoff() CostEstimate {
	e := CostEstimate{
		ExtraChunks:           6,
		TokensPerChunk:        400,
		QueriesPerMonth:       100_000,
		CostPerMillionTokens:  3.00,
		OptionALatencyMs:      600,
		OptionBRetrievalDelay: 250,
	}
	extraTokensPerMonth := float64(e.ExtraChunks*e.TokensPerChunk) * float64(e.QueriesPerMonth)
	e.ExtraMonthlyCost = extraTokensPerMonth / 1_000_000 * e.CostPerMillionTokens
	return e
}
