package services

// ResultKind tags the outcome of a generative call.
type ResultKind string

const (
	ResultOK             ResultKind = "ok"
	ResultQuotaExhausted ResultKind = "quota_exhausted"
	ResultError          ResultKind = "error"
	ResultNoContent      ResultKind = "no_content"
)

// User-facing renderings. Chat clients display these verbatim.
const (
	QuotaExhaustedMessage = "⚠️ Gemini API quota exhausted. Please try again later."
	NoPDFContentMessage   = "⚠️ No PDF content provided."
	ErrorMessagePrefix    = "❌ Error: "
	TruncationMarker      = "\n...(truncated)..."
)

// Result is either model text (Kind == ResultOK) or a failure kind with the
// error that caused it.
type Result struct {
	Text string
	Kind ResultKind
	Err  error
}

func (r Result) OK() bool {
	return r.Kind == ResultOK
}

// Render returns the text shown to a user for this result.
func (r Result) Render() string {
	switch r.Kind {
	case ResultOK:
		return r.Text
	case ResultQuotaExhausted:
		return QuotaExhaustedMessage
	case ResultNoContent:
		return NoPDFContentMessage
	default:
		if r.Err == nil {
			return ErrorMessagePrefix + "unknown error"
		}
		return ErrorMessagePrefix + r.Err.Error()
	}
}
