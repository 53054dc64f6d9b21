// Package prayer is the client for the aladhan prayer-times API. Unlike the
// location lookup there is no sensible default schedule, so every failure is
// surfaced to the caller as ErrUpstream.
package prayer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/zrashid/salahboard/internal/model"
)

// ErrUpstream indicates the prayer-times API call failed or returned a
// payload missing expected fields.
var ErrUpstream = errors.New("prayer times upstream failed")

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetTimings fetches today's prayer timings for a city and country.
func (c *Client) GetTimings(ctx context.Context, city, country string, method int) (model.Timings, error) {
	params := url.Values{
		"city":    {city},
		"country": {country},
		"method":  {strconv.Itoa(method)},
	}

	var payload struct {
		Data struct {
			Timings model.Timings `json:"timings"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v1/timingsByCity", params, &payload); err != nil {
		return nil, err
	}
	if len(payload.Data.Timings) == 0 {
		return nil, fmt.Errorf("timings missing from response: %w", ErrUpstream)
	}
	return payload.Data.Timings, nil
}

// GetMonthCalendar fetches the daily timings for a whole month, in upstream
// order.
func (c *Client) GetMonthCalendar(ctx context.Context, city, country string, method, month, year int) ([]model.CalendarDay, error) {
	params := url.Values{
		"city":    {city},
		"country": {country},
		"method":  {strconv.Itoa(method)},
		"month":   {strconv.Itoa(month)},
		"year":    {strconv.Itoa(year)},
	}

	var payload struct {
		Data []struct {
			Date struct {
				Readable string `json:"readable"`
			} `json:"date"`
			Timings model.Timings `json:"timings"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v1/calendarByCity", params, &payload); err != nil {
		return nil, err
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("calendar missing from response: %w", ErrUpstream)
	}

	days := make([]model.CalendarDay, 0, len(payload.Data))
	for _, d := range payload.Data {
		days = append(days, model.CalendarDay{
			Date:    d.Date.Readable,
			Timings: d.Timings,
		})
	}
	return days, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", ErrUpstream)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("call %s: status %d: %w", path, resp.StatusCode, ErrUpstream)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, ErrUpstream)
	}
	return nil
}
