package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/internal/domain/repository"
	"skyhunt-service/pkg/logger"
)

// WhatsappRepository handles sending payloads to the WhatsApp gateway
type WhatsappRepository struct {
	logger      logger.Logger
	baseURL     string
	bearerToken string
	client      *http.Client
}

// NewWhatsappRepository creates a new WhatsApp repository
func NewWhatsappRepository(baseURL, bearerToken string, logger logger.Logger) repository.WhatsappRepository {
	return &WhatsappRepository{
		logger:      logger,
		baseURL:     baseURL,
		bearerToken: bearerToken,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// SendPayload sends a payload to the WhatsApp gateway and returns the task ID
func (r *WhatsappRepository) SendPayload(ctx context.Context, payload *entity.Payload) (string, error) {
	scheduleAt := ""
	if !payload.ScheduleAt.IsZero() {
		scheduleAt = payload.ScheduleAt.UTC().Format(time.RFC3339)
	}

	msg := entity.SendAlertRequest{
		PhoneNumber: payload.Phone,
		Message: entity.AlertMessage{
			Text: payload.Text,
		},
		ScheduleAt: scheduleAt,
		Type:       "text",
	}

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/alerts/send-message", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+r.bearerToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return "", fmt.Errorf("WhatsApp gateway returned status %d: %v", resp.StatusCode, errorBody)
	}

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			TaskID string `json:"taskId"`
			Status string `json:"status"`
		} `json:"data"`
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if !response.Success {
		return "", fmt.Errorf("failed to send alert: %s (code: %s)", response.Error.Message, response.Error.Code)
	}

	r.logger.Info("Alert task created",
		"taskId", response.Data.TaskID,
		"phone", payload.Phone)

	return response.Data.TaskID, nil
}
