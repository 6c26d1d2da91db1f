package metrics

import "github.com/prometheus/client_golang/prometheus"

// PredictionMetrics tracks classify outcomes.
type PredictionMetrics struct {
	PredictionsTotal *prometheus.CounterVec
	ErrorsTotal      *prometheus.CounterVec
	Scores           prometheus.Histogram
}

func NewPredictionMetrics(reg prometheus.Registerer) *PredictionMetrics {
	m := &PredictionMetrics{
		PredictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "predict",
			Name:      "predictions_total",
			Help:      "Successful predictions by sentiment.",
		}, []string{"sentiment"}),
		ErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "predict",
			Name:      "errors_total",
			Help:      "Failed predictions by error kind.",
		}, []string{"kind"}),
		Scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "predict",
			Name:      "score",
			Help:      "Distribution of model scores.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 9),
		}),
	}

	reg.MustRegister(m.PredictionsTotal, m.ErrorsTotal, m.Scores)
	return m
}

func (m *PredictionMetrics) ObservePrediction(sentiment string, score float64) {
	m.PredictionsTotal.WithLabelValues(sentiment).Inc()
	m.Scores.Observe(score)
}

func (m *PredictionMetrics) ObserveError(kind string) {
	m.ErrorsTotal.WithLabelValues(kind).Inc()
}
