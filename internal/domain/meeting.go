package domain

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// MeetingSummary é o resultado do resumo de uma transcrição de reunião
type MeetingSummary struct {
	Summary       string    `json:"summary"`
	Sentiment     Sentiment `json:"sentiment"`
	Opportunities []string  `json:"opportunities"`
	Risks         []string  `json:"risks"`
	NextSteps     []string  `json:"next_steps"`
}

type SummarizeMeetingRequest struct {
	ConsultancyID string `json:"consultancy_id,omitempty"`
	Transcript    string `json:"transcript"`
}
