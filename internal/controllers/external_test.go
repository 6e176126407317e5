package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wurt83ow/maintracker/internal/models"
	"go.uber.org/zap"
)

var alert = models.PreventiveAlert{EventID: "a", Machine: "Torno", NextDue: "2024-06-03", DaysRemaining: 2, Status: "Upcoming"}

func TestNotifyPostsToWebhook(t *testing.T) {
	var got models.PreventiveAlert

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewExtController(func() string { return srv.URL }, zap.NewNop())
	require.NoError(t, c.Notify(context.Background(), alert))
	assert.Equal(t, alert, got)
}

func TestNotifyWebhookError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewExtController(func() string { return srv.URL }, zap.NewNop())
	assert.ErrorContains(t, c.Notify(context.Background(), alert), "502")
}

func TestNotifyWithoutWebhookOnlyLogs(t *testing.T) {
	c := NewExtController(func() string { return "" }, zap.NewNop())
	assert.NoError(t, c.Notify(context.Background(), alert))
}
