package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/flashbots/mev-builders/config"
)

// dailyStats is the relayscan.io response for one day of block production.
type dailyStats struct {
	Builders []relayBuilder `json:"builders"`
}

type relayBuilder struct {
	Info     builderInfo   `json:"info"`
	Children []builderInfo `json:"children"`
}

type builderInfo struct {
	ExtraData string `json:"extra_data"`
	NumBlocks uint64 `json:"num_blocks"`
}

// fetchDay downloads the builder statistics for a single day.
func (a *Aggregator) fetchDay(ctx context.Context, date string) (*dailyStats, error) {
	requestURL := fmt.Sprintf("%s/stats/day/%s/json", a.baseURL, date)

	day := new(dailyStats)
	if _, err := a.sendHTTPRequest(ctx, requestURL, day); err != nil {
		return nil, err
	}

	return day, nil
}

// sendHTTPRequest sends a GET request and decodes the JSON response into dst.
func (a *Aggregator) sendHTTPRequest(ctx context.Context, requestURL string, dst any) (code int, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return 0, fmt.Errorf("could not prepare request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("mev-builders/%s", config.Version))

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, fmt.Errorf("could not read error response body for status code %d: %w", resp.StatusCode, err)
		}
		return resp.StatusCode, fmt.Errorf("HTTP error response: %d / %s", resp.StatusCode, string(bodyBytes))
	}

	if dst != nil {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, fmt.Errorf("could not read response body: %w", err)
		}

		if err := json.Unmarshal(bodyBytes, dst); err != nil {
			return resp.StatusCode, fmt.Errorf("could not unmarshal response %s: %w", string(bodyBytes), err)
		}
	}

	return resp.StatusCode, nil
}
