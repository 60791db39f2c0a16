package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Client - pembungkus REST API Broilink. Token diambil dari SessionStore pada setiap panggilan.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   SessionStore
}

type Option func(c *Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, sessions SessionStore, opts ...Option) *Client {
	if sessions == nil {
		sessions = NewMemorySessionStore()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		sessions:   sessions,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Sessions() SessionStore {
	return c.sessions
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// unwrapData - data.data || data, body tanpa envelope dikembalikan apa adanya
func unwrapData(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &outer); err != nil {
		return trimmed
	}
	data, ok := outer["data"]
	if !ok {
		return trimmed
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(data, &inner); err == nil {
			if nested, ok := inner["data"]; ok {
				return nested
			}
		}
	}
	return data
}

func errorMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && strings.TrimSpace(env.Message) != "" {
		return env.Message
	}
	return FallbackErrorMessage
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, contentType string, payload io.Reader) (*response, error) {
	uri := c.baseURL + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}
	logger := log.WithFields(log.Fields{
		"method": method,
		"uri":    uri,
	})
	r, err := http.NewRequestWithContext(ctx, method, uri, payload)
	if err != nil {
		return nil, errors.Wrap(err, "gagal membuat permintaan")
	}
	r.Header.Set("Accept", "application/json")
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	session, err := c.sessions.Get()
	if err != nil {
		return nil, err
	}
	authorized := session != nil && session.Token != ""
	if authorized {
		r.Header.Set("Authorization", fmt.Sprintf("Bearer %v", session.Token))
	}

	resp, err := c.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Warn("server tidak dapat dihubungi")
		return nil, &APIError{Message: FallbackErrorMessage, cause: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: FallbackErrorMessage, cause: err}
	}
	logger = logger.WithField("response_status_code", resp.StatusCode)
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(body)}
		if resp.StatusCode == http.StatusUnauthorized {
			if clearErr := c.sessions.Clear(); clearErr != nil {
				logger.WithError(clearErr).Warn("gagal menghapus sesi")
			}
			if authorized {
				apiErr.cause = ErrSessionExpired
			}
		}
		logger.WithField("message", apiErr.Message).Debug("permintaan ditolak server")
		return nil, apiErr
	}
	return &response{status: resp.StatusCode, header: resp.Header, body: body}, nil
}

// do - JSON masuk, data dari envelope dibongkar ke out
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	var payload io.Reader
	contentType := ""
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "gagal menyusun body")
		}
		payload = bytes.NewReader(body)
		contentType = "application/json"
	}
	resp, err := c.send(ctx, method, path, query, contentType, payload)
	if err != nil {
		return err
	}
	return decode(resp.body, out)
}

func decode(body []byte, out interface{}) error {
	if out == nil {
		return nil
	}
	data := unwrapData(body)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "format respons tidak dikenal")
	}
	return nil
}
