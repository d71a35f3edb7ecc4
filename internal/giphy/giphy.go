// Package giphy wraps the Giphy search API for fetching a single random
// congratulatory GIF.
package giphy

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"

	"sprint-accomplishments/config"

	"go.uber.org/zap"
)

// Client issues search requests against the configured Giphy endpoint.
type Client struct {
	log      *zap.SugaredLogger
	cfg      config.GiphyConfig
	http     *http.Client
	randIntn func(int) int
}

// New creates a Giphy client.
func New(log *zap.SugaredLogger, cfg config.GiphyConfig) *Client {
	return &Client{
		log:      log.Named("giphy"),
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.Timeout},
		randIntn: rand.Intn,
	}
}

type searchResponse struct {
	Data []struct {
		Images struct {
			Original struct {
				URL string `json:"url"`
			} `json:"original"`
		} `json:"images"`
	} `json:"data"`
}

// RandomCongratulatoryGif returns one GIF URL for the configured search term,
// varying results through a random pagination offset. It returns "" (not an
// error) both when the provider has no results and when the call itself
// fails; callers treat "" as unavailable.
func (c *Client) RandomCongratulatoryGif(ctx context.Context) (string, error) {
	offset := c.randIntn(c.cfg.OffsetRange)

	q := url.Values{}
	q.Set("api_key", c.cfg.APIKey)
	q.Set("q", c.cfg.SearchTerm)
	q.Set("limit", "1")
	q.Set("rating", c.cfg.Rating)
	q.Set("offset", strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		c.log.Warnw("failed to build gif request", "error", err)
		return "", nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("failed to fetch gif", "error", err)
		return "", nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warnw("gif search returned non-2xx", "status", resp.StatusCode)
		return "", nil
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Warnw("failed to decode gif response", "error", err)
		return "", nil
	}

	if len(body.Data) == 0 {
		c.log.Warnw("no gifs found", "q", c.cfg.SearchTerm, "offset", offset)
		return "", nil
	}

	gifURL := body.Data[0].Images.Original.URL
	if gifURL == "" {
		c.log.Warnw("gif result without original url", "q", c.cfg.SearchTerm)
		return "", nil
	}
	return gifURL, nil
}
