package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mindhaven/mindhaven-backend/internal/chatbot"
	"github.com/mindhaven/mindhaven-backend/internal/services"
)

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS for WebSocket is handled at the HTTP layer already.
		return true
	},
}

// ChatWSMessage is a message coming from the frontend over WebSocket.
type ChatWSMessage struct {
	Message string `json:"message"`
}

// ChatWSReply mirrors the HTTP chat response shape.
type ChatWSReply struct {
	Reply string `json:"reply"`
}

// ChatWebSocket serves the phrase-table responder over a WebSocket so the
// frontend can keep one connection open for a whole support conversation.
func ChatWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := chatUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conn.SetReadLimit(64 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))

		var msg ChatWSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		reply := chatbot.Respond(msg.Message)

		services.SaveChatExchangeAsync(services.ChatExchange{
			Message:   msg.Message,
			Reply:     reply,
			Matched:   reply != chatbot.UnknownReply && reply != chatbot.EmptyReply,
			Transport: "ws",
			Timestamp: time.Now().UTC(),
		})

		if err := conn.WriteJSON(ChatWSReply{Reply: reply}); err != nil {
			return
		}
	}
}
