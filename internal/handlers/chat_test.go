package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindhaven/mindhaven-backend/internal/chatbot"
)

func postChat(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	Chat(rec, req)
	return rec
}

func decodeChat(t *testing.T, rec *httptest.ResponseRecorder) ChatResponse {
	t.Helper()
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestChatKnownPhrase(t *testing.T) {
	rec := postChat(t, `{"message":"i feel so alone"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeChat(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "You’re not alone in this moment. I’m here for you.", resp.Reply)
}

func TestChatUnknownMessage(t *testing.T) {
	rec := postChat(t, `{"message":"what is the weather"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, chatbot.UnknownReply, decodeChat(t, rec).Reply)
}

func TestChatEmptyMessage(t *testing.T) {
	rec := postChat(t, `{"message":"   "}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, chatbot.EmptyReply, decodeChat(t, rec).Reply)
}

func TestChatMalformedBody(t *testing.T) {
	rec := postChat(t, `{"message":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseHistoryLimit(t *testing.T) {
	assert.Equal(t, int64(0), parseHistoryLimit(""))
	assert.Equal(t, int64(0), parseHistoryLimit("abc"))
	assert.Equal(t, int64(25), parseHistoryLimit("25"))
	assert.Equal(t, int64(-1), parseHistoryLimit("-1"))
}

func TestParseHistoryBefore(t *testing.T) {
	before, err := parseHistoryBefore("")
	require.NoError(t, err)
	assert.Nil(t, before)

	before, err = parseHistoryBefore("2026-08-30T12:00:00Z")
	require.NoError(t, err)
	require.NotNil(t, before)
	assert.Equal(t, 2026, before.Year())

	_, err = parseHistoryBefore("yesterday")
	assert.Error(t, err)
}

func TestChatHistoryRejectsBadCursor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/chat/history?before=yesterday", nil)
	rec := httptest.NewRecorder()
	ChatHistory(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
