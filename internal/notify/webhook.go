package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Webhook posts messages to the configured channel. Delivery is best effort:
// callers log failures and move on, and a down webhook never blocks the run
// or the snapshot update.
type Webhook struct {
	URL    string
	Client *http.Client
	// Pause spaces consecutive posts so the channel's rate limit stays happy.
	Pause time.Duration
}

func NewWebhook(url string) *Webhook {
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 20 * time.Second},
		Pause:  time.Second,
	}
}

// Post sends one message as a JSON content payload. An unset URL disables
// delivery silently, which is how local runs stay quiet.
func (w *Webhook) Post(msg string) error {
	if w.URL == "" {
		return nil
	}
	body, err := json.Marshal(map[string]string{"content": msg})
	if err != nil {
		return err
	}
	resp, err := w.Client.Post(w.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}
