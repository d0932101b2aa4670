package services

import (
	"errors"
	"net/http"

	"google.golang.org/genai"
)

// ErrQuotaExhausted marks a generation failure caused by an exhausted quota.
var ErrQuotaExhausted = errors.New("gemini quota exhausted")

const resourceExhaustedStatus = "RESOURCE_EXHAUSTED"

// IsQuotaExhausted reports whether err is a quota failure, either wrapped
// ErrQuotaExhausted or a Gemini API error with HTTP 429 / RESOURCE_EXHAUSTED.
func IsQuotaExhausted(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrQuotaExhausted) {
		return true
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isQuotaAPIError(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return isQuotaAPIError(*apiErrPtr)
	}
	return false
}

func isQuotaAPIError(apiErr genai.APIError) bool {
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == resourceExhaustedStatus
}
