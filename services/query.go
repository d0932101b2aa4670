package services

import (
	"context"
	"log"
	"time"
	"unicode/utf8"

	"google.golang.org/genai"
)

const (
	DefaultRetries  = 3
	DefaultDelay    = 2 * time.Second
	DefaultMaxChars = 6000

	// MaxBackoff caps a single wait between quota retries.
	MaxBackoff = 5 * time.Minute

	pdfMIMEType = "application/pdf"
)

// QueryOptions controls truncation and quota retries for Query.
type QueryOptions struct {
	Retries  int
	Delay    time.Duration
	MaxChars int
}

func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Retries:  DefaultRetries,
		Delay:    DefaultDelay,
		MaxChars: DefaultMaxChars,
	}
}

func (o QueryOptions) normalized() QueryOptions {
	if o.Retries < 1 {
		o.Retries = 1
	}
	if o.Delay <= 0 {
		o.Delay = DefaultDelay
	}
	if o.MaxChars <= 0 {
		o.MaxChars = DefaultMaxChars
	}
	return o
}

// Backoff returns the wait after a quota failure on the given attempt,
// Delay * 2^attempt, saturating at MaxBackoff.
func (o QueryOptions) Backoff(attempt int) time.Duration {
	if o.Delay <= 0 || attempt < 0 {
		return 0
	}
	if o.Delay >= MaxBackoff || attempt >= 62 {
		return MaxBackoff
	}
	d := o.Delay << uint(attempt)
	if d <= 0 || d>>uint(attempt) != o.Delay || d > MaxBackoff {
		return MaxBackoff
	}
	return d
}

// Query sends question to the model. Quota failures are retried with
// exponential backoff; every other failure is returned immediately.
func (a *Assistant) Query(ctx context.Context, question string, opts QueryOptions) Result {
	opts = opts.normalized()
	contents := genai.Text(truncate(question, opts.MaxChars))

	for attempt := 0; ; attempt++ {
		text, err := a.generate(ctx, "query", attempt, contents)
		if err == nil {
			return Result{Text: text, Kind: ResultOK}
		}
		if !IsQuotaExhausted(err) {
			log.Printf("Gemini query failed: %v", err)
			return Result{Kind: ResultError, Err: err}
		}
		if attempt == opts.Retries-1 {
			log.Printf("Gemini quota exhausted after %d attempts", opts.Retries)
			return Result{Kind: ResultQuotaExhausted, Err: err}
		}

		wait := opts.Backoff(attempt)
		log.Printf("Gemini quota hit. Retrying in %v...", wait)
		if err := a.sleep(ctx, wait); err != nil {
			return Result{Kind: ResultError, Err: err}
		}
	}
}

// QueryWithPDF asks about a document. Only the first element of pdfContent is
// sent, between userInput and prompt. There is no retry.
func (a *Assistant) QueryWithPDF(ctx context.Context, userInput string, pdfContent []*genai.Part, prompt string) Result {
	if len(pdfContent) == 0 {
		return Result{Kind: ResultNoContent}
	}

	parts := []*genai.Part{
		genai.NewPartFromText(userInput),
		pdfContent[0],
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	text, err := a.generate(ctx, "query_with_pdf", 0, contents)
	if err != nil {
		log.Printf("Gemini PDF query failed: %v", err)
		return Result{Kind: ResultError, Err: err}
	}
	return Result{Text: text, Kind: ResultOK}
}

// PDFPart wraps raw PDF bytes as an inline content part.
func PDFPart(data []byte) *genai.Part {
	return genai.NewPartFromBytes(data, pdfMIMEType)
}

func truncate(question string, maxChars int) string {
	if utf8.RuneCountInString(question) <= maxChars {
		return question
	}
	runes := []rune(question)
	return string(runes[:maxChars]) + TruncationMarker
}
