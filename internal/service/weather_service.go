package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/weathercard/backend/internal/domain"
)

// WeatherLookup resolves a place name into current conditions
type WeatherLookup interface {
	Lookup(ctx context.Context, place string) (domain.WeatherReading, error)
}

// WeatherConfig is the upstream configuration injected into the client
type WeatherConfig struct {
	APIKey  string
	BaseURL string
}

// WeatherClient handles OpenWeatherMap lookups
type WeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// ClientOption is a function that configures a WeatherClient
type ClientOption func(*WeatherClient)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *WeatherClient) {
		c.httpClient = httpClient
	}
}

// NewWeatherClient creates a new weather client.
// No client timeout is set; callers bound lookups through the context.
func NewWeatherClient(cfg WeatherConfig, opts ...ClientOption) *WeatherClient {
	c := &WeatherClient{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{},
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// OpenWeatherResponse represents the OpenWeatherMap current weather response.
// Numeric fields are pointers so that missing values can be told apart from zero.
type OpenWeatherResponse struct {
	Name string `json:"name"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *float64 `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// OpenWeatherError represents an OpenWeatherMap failure body.
// cod is a string for 404s and a number for 401s, so it is not decoded.
type OpenWeatherError struct {
	Message string `json:"message"`
}

// Lookup fetches current weather for a place name. It issues exactly one
// GET per call with metric units; there are no retries and no caching.
func (c *WeatherClient) Lookup(ctx context.Context, place string) (domain.WeatherReading, error) {
	if c.apiKey == "" {
		return domain.WeatherReading{}, domain.NewLookupError(domain.KindMissingCredential, domain.MsgMissingCredential, nil)
	}

	requestID := uuid.NewString()
	logger := log.With().Str("request_id", requestID).Str("place", place).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(place), nil)
	if err != nil {
		return domain.WeatherReading{}, domain.NewLookupError(domain.KindNetworkFailure, domain.MsgFetchFailed,
			fmt.Errorf("weather: failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn().Err(err).Dur("latency", time.Since(start)).Msg("weather lookup transport failure")
		return domain.WeatherReading{}, domain.NewLookupError(domain.KindNetworkFailure, domain.MsgFetchFailed,
			fmt.Errorf("weather: request failed: %w", err))
	}
	defer resp.Body.Close()

	logger.Info().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("weather lookup completed")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.WeatherReading{}, domain.NewLookupError(domain.KindNetworkFailure, domain.MsgFetchFailed,
			fmt.Errorf("weather: failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.WeatherReading{}, upstreamError(resp.StatusCode, body)
	}

	reading, err := c.parseReading(body)
	if err != nil {
		logger.Warn().Err(err).Msg("malformed weather response")
		return domain.WeatherReading{}, err
	}

	return reading, nil
}

// requestURL builds {base}/weather?q=...&appid=...&units=metric.
// The place is query-escaped with spaces as %20. Unlike encodeURIComponent,
// !'()* are escaped too; upstream decodes both forms to the same name.
func (c *WeatherClient) requestURL(place string) string {
	q := strings.ReplaceAll(url.QueryEscape(place), "+", "%20")
	return fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric", c.baseURL, q, url.QueryEscape(c.apiKey))
}

// parseReading maps a success body to a reading. The first entry of the
// condition list is used even when upstream reports several.
func (c *WeatherClient) parseReading(body []byte) (domain.WeatherReading, error) {
	var owResp OpenWeatherResponse
	if err := json.Unmarshal(body, &owResp); err != nil {
		return domain.WeatherReading{}, malformed(fmt.Errorf("weather: failed to decode response: %w", err))
	}

	switch {
	case len(owResp.Weather) == 0:
		return domain.WeatherReading{}, malformed(fmt.Errorf("weather: empty condition list"))
	case owResp.Main == nil:
		return domain.WeatherReading{}, malformed(fmt.Errorf("weather: missing main block"))
	case owResp.Main.Temp == nil, owResp.Main.FeelsLike == nil, owResp.Main.Humidity == nil, owResp.Main.Pressure == nil:
		return domain.WeatherReading{}, malformed(fmt.Errorf("weather: incomplete main block"))
	case owResp.Wind == nil || owResp.Wind.Speed == nil:
		return domain.WeatherReading{}, malformed(fmt.Errorf("weather: missing wind speed"))
	}

	condition := owResp.Weather[0]
	return domain.WeatherReading{
		Place:       owResp.Name,
		Country:     owResp.Sys.Country,
		Temperature: *owResp.Main.Temp,
		FeelsLike:   *owResp.Main.FeelsLike,
		Humidity:    *owResp.Main.Humidity,
		Pressure:    *owResp.Main.Pressure,
		WindSpeed:   *owResp.Wind.Speed,
		Condition:   condition.Main,
		Description: condition.Description,
		Icon:        condition.Icon,
		FetchedAt:   c.now(),
	}, nil
}

func upstreamError(status int, body []byte) *domain.LookupError {
	message := domain.MsgFetchFailed
	var owErr OpenWeatherError
	if err := json.Unmarshal(body, &owErr); err == nil && strings.TrimSpace(owErr.Message) != "" {
		message = owErr.Message
	}
	return domain.NewLookupError(domain.KindUpstreamError, message, fmt.Errorf("weather: upstream returned status %d", status))
}

func malformed(err error) *domain.LookupError {
	return domain.NewLookupError(domain.KindMalformedResponse, domain.MsgMalformedResponse, err)
}
