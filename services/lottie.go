package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// LottieLoader downloads Lottie animation JSON.
type LottieLoader struct {
	httpClient *http.Client
}

func NewLottieLoader(httpClient *http.Client) *LottieLoader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &LottieLoader{httpClient: httpClient}
}

// LoadAnimation returns the animation at url, or nil unless the server
// answers 200 with a JSON object. Lottie documents are always objects, so a
// top-level array, string or number is rejected like malformed JSON.
func (l *LottieLoader) LoadAnimation(ctx context.Context, url string) map[string]any {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("Invalid Lottie URL %q: %v", url, err)
		return nil
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		log.Printf("Lottie request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var animation map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&animation); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			log.Printf("Lottie JSON is a %s, not an object", typeErr.Value)
			return nil
		}
		log.Printf("Failed to decode Lottie JSON: %v", err)
		return nil
	}
	if animation == nil {
		log.Printf("Lottie JSON is null")
		return nil
	}
	return animation
}
