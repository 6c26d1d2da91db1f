package models

// PredictRequest is the body of POST /predict/.
type PredictRequest struct {
	Text string `json:"text"`
}

type PredictResponse struct {
	Sentimiento string  `json:"sentimiento"`
	Respuesta   string  `json:"respuesta"`
	Score       float64 `json:"score"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	Scorer     string `json:"scorer"`
	Translator string `json:"translator"`
}
