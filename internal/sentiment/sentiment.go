package sentiment

// Sentiment is the class a model score is bucketed into.
type Sentiment int

const (
	Positive Sentiment = iota
	Neutral
	Negative
)

// Score thresholds. Both bounds are inclusive on the Neutral side.
const (
	NegativeBelow = 0.4
	PositiveAbove = 0.6
)

var sentimentNames = [...]string{
	Positive: "Positivo",
	Neutral:  "Neutro",
	Negative: "Negativo",
}

// String returns the wire name of the class.
func (s Sentiment) String() string {
	if s < Positive || s > Negative {
		return "Desconocido"
	}
	return sentimentNames[s]
}

// FromScore buckets a model score into a class.
func FromScore(score float64) Sentiment {
	switch {
	case score < NegativeBelow:
		return Negative
	case score > PositiveAbove:
		return Positive
	default:
		return Neutral
	}
}
