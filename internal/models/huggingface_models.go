package models

// InferenceRequest is the text-classification payload. The service accepts
// several inputs but every request carries exactly one.
type InferenceRequest struct {
	Inputs []string `json:"inputs"`
}

type InferenceLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// InferenceResponse holds one list of candidate labels per input.
type InferenceResponse [][]InferenceLabel
