package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vigil/internal/pipeline"
)

// WebhookNotifier POSTs new incidents to an external endpoint. Each request
// carries a short-lived HS256 token so receivers can verify the origin.
type WebhookNotifier struct {
	url        string
	secret     []byte
	issuer     string
	httpClient *http.Client
}

// WebhookConfig holds webhook notifier configuration
type WebhookConfig struct {
	URL    string
	Secret string
	Issuer string
}

type webhookPayload struct {
	IncidentID string    `json:"incident_id"`
	CameraID   string    `json:"camera_id"`
	CameraName string    `json:"camera_name"`
	Location   string    `json:"location,omitempty"`
	WeaponType string    `json:"weapon_type"`
	Severity   string    `json:"severity"`
	Confidence float64   `json:"confidence"`
	Snapshot   string    `json:"snapshot,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewWebhookNotifier creates a webhook notifier
func NewWebhookNotifier(config WebhookConfig) *WebhookNotifier {
	issuer := config.Issuer
	if issuer == "" {
		issuer = "vigil"
	}
	return &WebhookNotifier{
		url:        config.URL,
		secret:     []byte(config.Secret),
		issuer:     issuer,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name identifies the notifier in logs
func (wn *WebhookNotifier) Name() string {
	return "webhook"
}

// NotifyIncident delivers a newly opened incident to the endpoint
func (wn *WebhookNotifier) NotifyIncident(ctx context.Context, evt *pipeline.NewIncidentEvent) error {
	if wn.url == "" {
		return nil
	}

	payload := webhookPayload{
		IncidentID: evt.IncidentID,
		CameraID:   evt.CameraID,
		CameraName: evt.CameraName,
		Location:   evt.Location,
		WeaponType: evt.WeaponType,
		Severity:   string(evt.Severity),
		Confidence: float64(evt.Confidence),
		Snapshot:   evt.SnapshotRef,
		Timestamp:  evt.Timestamp,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", wn.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if len(wn.secret) > 0 {
		token, err := wn.signToken(evt.IncidentID)
		if err != nil {
			return fmt.Errorf("failed to sign webhook token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := wn.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

func (wn *WebhookNotifier) signToken(incidentID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": wn.issuer,
		"sub": incidentID,
		"iat": now.Unix(),
		"exp": now.Add(5 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(wn.secret)
}
