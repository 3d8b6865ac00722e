package checks

import (
	"context"
	"net/http"
	"time"
)

// Probe describes one upstream endpoint to check.
type Probe struct {
	// Family is the source family the endpoint belongs to.
	Family string
	// URL is the endpoint to probe.
	URL string
}

// ProbeResult is the outcome of a single reachability probe.
type ProbeResult struct {
	Family    string `json:"family"`
	URL       string `json:"url"`
	Reachable bool   `json:"reachable"`
	Code      int    `json:"code,omitempty"`
	Error     string `json:"error,omitempty"`
}

const probeTimeout = 5 * time.Second

// ProbeSources checks each endpoint with a HEAD request. A response of
// any kind counts as reachable; only transport failures do not. Probes
// run sequentially, the list is short.
func ProbeSources(ctx context.Context, client *http.Client, probes []Probe) []ProbeResult {
	if client == nil {
		client = &http.Client{Timeout: probeTimeout}
	}

	results := make([]ProbeResult, 0, len(probes))
	for _, p := range probes {
		res := ProbeResult{Family: p.Family, URL: p.URL}

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.URL, nil)
		if err != nil {
			res.Error = err.Error()
			results = append(results, res)
			continue
		}

		resp, err := client.Do(req)
		if err != nil {
			res.Error = err.Error()
			results = append(results, res)
			continue
		}
		resp.Body.Close()

		res.Reachable = true
		res.Code = resp.StatusCode
		results = append(results, res)
	}

	return results
}
