// Package knowledge provides clients for the free external knowledge
// providers the application consults: Wikipedia for factual answers,
// TheMealDB for recipe suggestions, and Advice Slip for wellbeing tips.
//
// Every client degrades to a fixed fallback string on any failure. Provider
// errors are logged but never returned; callers always receive usable text.
package knowledge

import (
	"net/http"
	"time"
)

// defaultTimeout bounds every provider call.
const defaultTimeout = 10 * time.Second

// newHTTPClient returns the client used by the providers when the caller
// does not supply one.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}
