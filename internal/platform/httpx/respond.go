package httpx

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/fastbite/api/internal/platform/requestctx"
)

// WriteJSON serialises payload with the given status code. Encoding failures
// are logged; headers are already flushed at that point so the body is left
// truncated.
func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		requestctx.Logger(ctx).Warn("response encode failed", zap.Error(err))
	}
}
