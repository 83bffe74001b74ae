package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Totarae/ShortLinks/internal/handlers"
	"github.com/Totarae/ShortLinks/internal/service"
	"github.com/Totarae/ShortLinks/internal/storage"
	"go.uber.org/zap"
)

func setupBenchHandler() *handlers.Handler {
	store := storage.NewMemoryStore()
	logger := zap.NewNop()
	svc := service.NewLinkService(store, nil, logger, 6)
	return handlers.NewHandler(svc, logger, "http://localhost:8080")
}

func BenchmarkReceiveShorten(b *testing.B) {
	handler := setupBenchHandler()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		body := fmt.Sprintf(`{"original_url": "https://yandex.ru/benchmark/%d"}`, i)
		req := httptest.NewRequest(http.MethodPost, "/links/shorten", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ReceiveShorten(rec, req)
		if rec.Code != http.StatusCreated {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}

func BenchmarkValidateAlias(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = handlers.ValidateAlias("benchAlias42")
	}
}
