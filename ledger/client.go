package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client defines the ledger API operations used during a sync run.
type Client interface {
	ResolveStaffID(ctx context.Context, email string) (string, error)
	GetDayEntries(ctx context.Context, staffID, dayKey string) ([]DayRecord, error)
	AddEntry(ctx context.Context, entry AddEntryRequest) error
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientConfig struct {
	BaseURL    string
	Token      string
	UserAgent  string
	HTTPClient httpDoer
}

type HTTPClient struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient httpDoer
}

func NewClient(cfg ClientConfig) (*HTTPClient, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	baseURL = strings.TrimRight(baseURL, "/")

	parsedBase, err := url.Parse(baseURL)
	if err != nil || parsedBase.Scheme == "" || parsedBase.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}

	return &HTTPClient{
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		userAgent:  strings.TrimSpace(cfg.UserAgent),
		httpClient: doer,
	}, nil
}

type Staff struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DayRecord is one time entry already recorded remotely for a day.
type DayRecord struct {
	ID      string `json:"id"`
	JobID   string `json:"job_id"`
	TaskID  string `json:"task_id"`
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
	Note    string `json:"note"`
}

// recordList tolerates the ledger API returning a bare object instead of
// a one-element array when exactly one entry exists for the queried day.
type recordList []DayRecord

func (l *recordList) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	switch text {
	case "", "null", `""`:
		*l = nil
		return nil
	}

	var many []DayRecord
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}

	var one DayRecord
	if err := json.Unmarshal(data, &one); err == nil {
		*l = recordList{one}
		return nil
	}

	return fmt.Errorf("unsupported entries payload: %s", text)
}

type getDayEntriesResponse struct {
	Entries recordList `json:"entries"`
}

type AddEntryRequest struct {
	JobID   string `json:"job_id"`
	TaskID  string `json:"task_id"`
	StaffID string `json:"staff_id"`
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
	Note    string `json:"note"`
}

func (c *HTTPClient) ListStaff(ctx context.Context) ([]Staff, error) {
	var out []Staff
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/staff", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveStaffID matches the configured email against the remote staff
// list. An unknown email is an error since nothing can be uploaded
// without a staff id.
func (c *HTTPClient) ResolveStaffID(ctx context.Context, email string) (string, error) {
	wanted := strings.TrimSpace(email)
	if wanted == "" {
		return "", errors.New("staff email is required")
	}

	staff, err := c.ListStaff(ctx)
	if err != nil {
		return "", err
	}

	for _, member := range staff {
		if strings.EqualFold(strings.TrimSpace(member.Email), wanted) {
			return member.ID, nil
		}
	}
	return "", fmt.Errorf("staff member with email %q not found in ledger", email)
}

// GetDayEntries queries the ledger for one calendar day (dayKey is
// YYYYMMDD, used as both range bounds).
func (c *HTTPClient) GetDayEntries(ctx context.Context, staffID, dayKey string) ([]DayRecord, error) {
	query := url.Values{}
	query.Set("staff_id", staffID)
	query.Set("from", dayKey)
	query.Set("to", dayKey)

	var out getDayEntriesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/entries?"+query.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return []DayRecord(out.Entries), nil
}

func (c *HTTPClient) AddEntry(ctx context.Context, entry AddEntryRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/entries", entry, nil)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, endpointPath string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	requestURL := c.baseURL + endpointPath
	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request %s %s: %w", method, endpointPath, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, endpointPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf(
			"request %s %s failed with status %d: %s",
			method,
			endpointPath,
			resp.StatusCode,
			strings.TrimSpace(string(responseBody)),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response %s %s: %w", method, endpointPath, err)
	}
	return nil
}
