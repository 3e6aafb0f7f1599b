package utils_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/naira_billpay/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestPosthogClientWrapper_DisabledIsNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	w := utils.InitializePosthogClient("", "", logger)

	assert.False(t, w.IsInitialized())
	assert.NotPanics(t, func() {
		w.Enqueue("user-1", "api_banks", map[string]any{"status_code": 200})
		w.Close()
	})

	var nilWrapper *utils.PosthogClientWrapper
	assert.False(t, nilWrapper.IsInitialized())
}
