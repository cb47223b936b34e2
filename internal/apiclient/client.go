package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// Client performs the project and task operations. It holds no connection
// state: every call goes through Builder.Build.
type Client struct {
	builder *Builder
	logger  *log.Logger
}

// New creates a Client. A nil logger disables request tracing.
func New(builder *Builder, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New()
		logger.SetOutput(io.Discard)
	}
	return &Client{builder: builder, logger: logger}
}

// send issues one request and classifies the response.
func (c *Client) send(ctx context.Context, method string, req *Request, body any, out any, payload models.ErrorPayload) error {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, rdr)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, req.URL, err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set(RequestIDHeader, requestID)

	entry := c.logger.WithFields(log.Fields{
		"method":     method,
		"url":        req.URL,
		"request_id": requestID,
	})
	entry.Debug("sending request")

	start := time.Now()
	resp, sendErr := req.Client.Do(httpReq)
	if sendErr != nil {
		entry.WithError(sendErr).Debug("request failed")
	} else {
		entry.WithFields(log.Fields{
			"status":   resp.StatusCode,
			"duration": time.Since(start).Round(time.Millisecond),
		}).Debug("response received")
	}

	return Classify(resp, sendErr, out, payload)
}

func (c *Client) build(endpoint, instance string) (*Request, error) {
	return c.builder.Build(endpoint, instance)
}
