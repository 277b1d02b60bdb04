//
// Copyright 2016 Rackspace
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package endpoint

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/protocol"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/query"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
)

const defaultClientTimeout = 10 * time.Second

// Client talks to a running query endpoint. The Unavailable state is reported as query.ErrUnavailable.
type Client struct {
	baseUrl    string
	httpClient *http.Client
}

// NewClient accepts either host:port or a full http(s) URL.
func NewClient(address string) *Client {
	baseUrl := address
	if !strings.HasPrefix(baseUrl, "http://") && !strings.HasPrefix(baseUrl, "https://") {
		baseUrl = "http://" + baseUrl
	}
	return &Client{
		baseUrl:    strings.TrimSuffix(baseUrl, "/"),
		httpClient: &http.Client{Timeout: defaultClientTimeout},
	}
}

func (c *Client) CurrentSnapshot(ctx context.Context) (types.Snapshot, error) {
	var result protocol.SnapshotResult
	if err := c.do(ctx, http.MethodGet, protocol.PathSnapshot, nil, &result, http.StatusOK); err != nil {
		return types.Snapshot{}, err
	}
	return result.Snapshot(), nil
}

func (c *Client) TimeSeries(ctx context.Context) ([]types.SeriesPoint, error) {
	var result protocol.SeriesResult
	if err := c.do(ctx, http.MethodGet, protocol.PathSeries, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result.SeriesPoints(), nil
}

// Dashboard fetches the snapshot and the series in one request, so both reflect the same publish.
func (c *Client) Dashboard(ctx context.Context) (types.Snapshot, []types.SeriesPoint, error) {
	var result protocol.DashboardResult
	if err := c.do(ctx, http.MethodGet, protocol.PathDashboard, nil, &result, http.StatusOK); err != nil {
		return types.Snapshot{}, nil, err
	}
	snap, series := result.Parts()
	return snap, series, nil
}

func (c *Client) TopProcesses(ctx context.Context, n int, sortBy query.SortBy) ([]types.ProcessRecord, error) {
	params := url.Values{}
	params.Set(protocol.ParamTopN, strconv.Itoa(n))
	params.Set(protocol.ParamSortBy, string(sortBy))

	var result protocol.TopResult
	if err := c.do(ctx, http.MethodGet, protocol.PathTopProcesses, params, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result.Records(), nil
}

// KillProcess returns the typed outcome for the three defined answers. Anything else is an error.
func (c *Client) KillProcess(ctx context.Context, pid int32) (types.TerminationOutcome, error) {
	path := strings.Replace(protocol.PathProcess, "{"+protocol.ParamPid+"}", strconv.Itoa(int(pid)), 1)

	var result protocol.KillResult
	err := c.do(ctx, http.MethodDelete, path, nil, &result, http.StatusOK, http.StatusNotFound, http.StatusForbidden)
	if err != nil {
		return "", err
	}

	switch outcome := types.TerminationOutcome(result.Outcome); outcome {
	case types.Terminated, types.NotFound, types.AccessDenied:
		return outcome, nil
	default:
		return "", errors.Errorf("unexpected termination outcome '%s'", result.Outcome)
	}
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, into interface{}, validStatuses ...int) error {
	target := c.baseUrl + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return query.ErrUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	validStatus := false
	for _, status := range validStatuses {
		if resp.StatusCode == status {
			validStatus = true
			break
		}
	}
	if !validStatus {
		var remote protocol.Error
		if json.Unmarshal(body, &remote) == nil && remote.Message != "" {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, remote.Message)
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, into)
}
