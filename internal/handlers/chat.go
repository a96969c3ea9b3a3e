package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"exam-tutor-backend/internal/middleware"
	"exam-tutor-backend/internal/models"
)

type tutorService interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type ChatHandler struct {
	tutor tutorService
}

func NewChatHandler(tutor tutorService) *ChatHandler {
	return &ChatHandler{tutor: tutor}
}

// chatFields lists the required body keys. Keys match exactly, unlike
// encoding/json's case-insensitive struct decoding.
var chatFields = []string{"session_id", "question", "answer"}

// decodeChatRequest reads a single JSON object and returns the required
// string fields. Missing or null keys are reported in fields; anything else
// that is not a lone object of strings is a malformed body.
func decodeChatRequest(body io.Reader) (values map[string]string, fields map[string]string, err error) {
	dec := json.NewDecoder(body)

	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, nil, errors.New("unexpected data after JSON object")
	}

	values = make(map[string]string, len(chatFields))
	fields = map[string]string{}
	for _, key := range chatFields {
		v, ok := raw[key]
		if !ok || string(v) == "null" {
			fields[key] = "Field required"
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			fields[key] = "Input should be a valid string"
			continue
		}
		values[key] = s
	}
	return values, fields, nil
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	values, fields, err := decodeChatRequest(r.Body)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	resp, err := h.tutor.Chat(r.Context(), models.ChatRequest{
		SessionID: values["session_id"],
		Question:  values["question"],
		Answer:    values["answer"],
	})
	if err != nil {
		log.Printf("Chat error [%s]: %v", middleware.GetRequestID(r.Context()), err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
