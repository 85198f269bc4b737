package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"vigil/internal/pipeline"
)

// TelegramNotifier delivers incident alerts to a Telegram chat
type TelegramNotifier struct {
	botToken   string
	chatID     string
	httpClient *http.Client
	mu         sync.RWMutex
	enabled    bool
}

// TelegramConfig holds Telegram notifier configuration
type TelegramConfig struct {
	BotToken string
	ChatID   string
	Enabled  bool
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// NewTelegramNotifier creates a Telegram notifier
func NewTelegramNotifier(config TelegramConfig) *TelegramNotifier {
	return &TelegramNotifier{
		botToken:   config.BotToken,
		chatID:     config.ChatID,
		enabled:    config.Enabled,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Name identifies the notifier in logs
func (tn *TelegramNotifier) Name() string {
	return "telegram"
}

// IsEnabled returns whether the notifier is enabled
func (tn *TelegramNotifier) IsEnabled() bool {
	tn.mu.RLock()
	defer tn.mu.RUnlock()
	return tn.enabled
}

// SetEnabled enables or disables the notifier
func (tn *TelegramNotifier) SetEnabled(enabled bool) {
	tn.mu.Lock()
	defer tn.mu.Unlock()
	tn.enabled = enabled
}

// NotifyIncident sends a formatted alert for a newly opened incident
func (tn *TelegramNotifier) NotifyIncident(ctx context.Context, evt *pipeline.NewIncidentEvent) error {
	tn.mu.RLock()
	defer tn.mu.RUnlock()

	if !tn.enabled {
		return nil
	}
	if tn.botToken == "" || tn.chatID == "" {
		return fmt.Errorf("telegram bot token or chat ID not configured")
	}

	zoneName, _ := evt.Timestamp.Zone()
	timestamp := fmt.Sprintf("%s %s", evt.Timestamp.Format("2 Jan 2006, 15:04:05"), zoneName)

	var severityEmoji string
	switch evt.Severity {
	case pipeline.SeverityCritical:
		severityEmoji = "🔴"
	case pipeline.SeverityHigh:
		severityEmoji = "🟠"
	case pipeline.SeverityMedium:
		severityEmoji = "🟡"
	default:
		severityEmoji = "⚪"
	}

	location := evt.Location
	if location == "" {
		location = "unknown"
	}

	message := fmt.Sprintf(
		"🚨 <b>Weapon Detected!</b>\n\n"+
			"📹 Camera: %s\n"+
			"📍 Location: %s\n"+
			"🔫 Weapon: %s\n"+
			"%s Severity: %s\n"+
			"🎯 Confidence: %.0f%%\n"+
			"🕐 Time: %s",
		evt.CameraName,
		location,
		strings.ReplaceAll(evt.WeaponType, "_", " "),
		severityEmoji,
		evt.Severity,
		evt.Confidence*100,
		timestamp,
	)

	return tn.sendMessage(ctx, message)
}

// SendPhoto sends a snapshot with a caption
func (tn *TelegramNotifier) SendPhoto(ctx context.Context, photoData []byte, caption string) error {
	tn.mu.RLock()
	defer tn.mu.RUnlock()

	if !tn.enabled {
		return nil
	}
	if tn.botToken == "" || tn.chatID == "" {
		return fmt.Errorf("telegram bot token or chat ID not configured")
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendPhoto", tn.botToken)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("chat_id", tn.chatID); err != nil {
		return fmt.Errorf("failed to write chat_id field: %w", err)
	}
	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return fmt.Errorf("failed to write caption field: %w", err)
		}
		if err := writer.WriteField("parse_mode", "HTML"); err != nil {
			return fmt.Errorf("failed to write parse_mode field: %w", err)
		}
	}

	part, err := writer.CreateFormFile("photo", "incident_frame.jpg")
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(photoData); err != nil {
		return fmt.Errorf("failed to write photo data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := tn.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send photo: %w", err)
	}
	defer resp.Body.Close()

	return handleTelegramResponse(resp)
}

// SendTestMessage verifies the notifier configuration
func (tn *TelegramNotifier) SendTestMessage(ctx context.Context) error {
	now := time.Now()
	zoneName, _ := now.Zone()
	message := fmt.Sprintf(
		"🤖 <b>Vigil Test Message</b>\n\n"+
			"✅ Telegram notifications are working!\n"+
			"🕐 Sent at: %s %s",
		now.Format("2 Jan 2006, 15:04:05"), zoneName)
	return tn.sendMessage(ctx, message)
}

func (tn *TelegramNotifier) sendMessage(ctx context.Context, message string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", tn.botToken)

	payload := map[string]interface{}{
		"chat_id":    tn.chatID,
		"text":       message,
		"parse_mode": "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := tn.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	return handleTelegramResponse(resp)
}

func handleTelegramResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var tgResp telegramResponse
	if err := json.Unmarshal(body, &tgResp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if !tgResp.OK {
		return fmt.Errorf("telegram API error %d: %s", tgResp.ErrorCode, tgResp.Description)
	}
	return nil
}
