package models

// AskRequest is the payload of POST /api/ask. Zero values fall back to the
// server's configured retry settings; an empty question is sent as is.
type AskRequest struct {
	Question     string  `json:"question"`
	Retries      int     `json:"retries"`
	DelaySeconds float64 `json:"delaySeconds"`
	MaxChars     int     `json:"maxChars"`
}

// AskResponse carries the rendered answer and the outcome kind.
type AskResponse struct {
	Response string `json:"response"`
	Kind     string `json:"kind"`
}

type CoachRequest struct {
	Focus string `json:"focus"`
}

type CoachResponse struct {
	Summary  ProfileSummary `json:"summary"`
	Response string         `json:"response"`
	Kind     string         `json:"kind"`
}
