package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/mindhaven/mindhaven-backend/internal/chatbot"
	"github.com/mindhaven/mindhaven-backend/internal/services"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}

// Chat answers a support message from the fixed phrase table. The endpoint
// is public; exchanges are persisted asynchronously and never block the reply.
func Chat(w http.ResponseWriter, r *http.Request) {
	var in ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	reply := chatbot.Respond(in.Message)

	services.SaveChatExchangeAsync(services.ChatExchange{
		Message:   in.Message,
		Reply:     reply,
		Matched:   reply != chatbot.UnknownReply && reply != chatbot.EmptyReply,
		Transport: "http",
		Timestamp: time.Now().UTC(),
	})

	writeJSON(w, http.StatusOK, ChatResponse{
		Success: true,
		Reply:   reply,
	})
}

type ChatHistoryResponse struct {
	Success   bool                    `json:"success"`
	Exchanges []services.ChatExchange `json:"exchanges"`
	HasMore   bool                    `json:"has_more"`
}

// ChatHistory returns recent chat exchanges for product review, newest
// first. Cursor by ?before=<RFC3339 timestamp>, page size by ?limit=.
func ChatHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseHistoryLimit(r.URL.Query().Get("limit"))

	before, err := parseHistoryBefore(r.URL.Query().Get("before"))
	if err != nil {
		writeBadRequest(w, "before must be an RFC 3339 timestamp")
		return
	}

	exchanges, hasMore, err := services.LoadChatExchanges(r.Context(), before, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "Failed to load chat history",
		})
		return
	}
	if exchanges == nil {
		exchanges = []services.ChatExchange{}
	}

	writeJSON(w, http.StatusOK, ChatHistoryResponse{
		Success:   true,
		Exchanges: exchanges,
		HasMore:   hasMore,
	})
}

// parseHistoryLimit clamps to LoadChatExchanges' accepted range; anything
// unparseable falls back to 0, which the loader replaces with its default.
func parseHistoryLimit(raw string) int64 {
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseHistoryBefore(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
