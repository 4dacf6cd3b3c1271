package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client pushes short operator notifications to an ntfy topic.
// When disabled it is a no-op, so callers never need to branch.
type Client struct {
	httpClient *http.Client
	baseURL    string
	topic      string
	enabled    bool
}

func NewClient(baseURL, topic string, enabled bool) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		topic:   topic,
		enabled: enabled,
	}
}

// NotifySiteUpdated reports a completed site regeneration. Failures are
// logged and swallowed; a lost notification must not fail the run.
func (c *Client) NotifySiteUpdated(ctx context.Context, outputFile string, sections, images int) {
	if !c.enabled {
		return
	}

	message := fmt.Sprintf("Website regenerated: %s (%d sections, %d images mirrored)", outputFile, sections, images)
	if err := c.publish(ctx, "Website updated", message); err != nil {
		log.Warn().Err(err).Msg("Failed to send update notification")
		return
	}
	log.Debug().Str("topic", c.topic).Msg("Sent update notification")
}

func (c *Client) publish(ctx context.Context, title, message string) error {
	url := fmt.Sprintf("%s/%s", strings.TrimRight(c.baseURL, "/"), c.topic)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Title", title)
	req.Header.Set("Tags", "globe_with_meridians")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notification request failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
