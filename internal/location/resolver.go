// Package location resolves the caller's city and country from an
// IP-geolocation service. Lookup failure is never an error: every failure
// path maps to the fixed fallback location.
package location

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zrashid/salahboard/internal/model"
)

// Fallback is returned whenever the geolocation lookup fails.
var Fallback = model.Location{City: "Pune", Country: "India"}

type Resolver struct {
	url    string
	client *http.Client
}

func NewResolver(url string, timeout time.Duration) *Resolver {
	return &Resolver{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Resolve looks up the caller's location. Transport errors, non-2xx
// responses, malformed JSON, and missing fields all degrade to Fallback.
// Nothing is cached; each call hits the upstream.
func (r *Resolver) Resolve(ctx context.Context) model.Location {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		log.Warn().Err(err).Msg("geolocation request build failed, using fallback")
		return Fallback
	}

	resp, err := r.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("geolocation lookup failed, using fallback")
		return Fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("geolocation lookup returned non-OK, using fallback")
		return Fallback
	}

	var payload struct {
		City    string `json:"city"`
		Country string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Warn().Err(err).Msg("geolocation response malformed, using fallback")
		return Fallback
	}
	if payload.City == "" || payload.Country == "" {
		log.Warn().Msg("geolocation response missing fields, using fallback")
		return Fallback
	}

	return model.Location{City: payload.City, Country: payload.Country}
}
