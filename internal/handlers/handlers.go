package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/Totarae/ShortLinks/internal/model"
	"github.com/Totarae/ShortLinks/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// Handler переводит HTTP-запросы в вызовы сервиса ссылок и результаты —
// в HTTP-ответы. Решений он не принимает: вся логика в сервисе.
type Handler struct {
	Service *service.LinkService
	Logger  *zap.Logger
	BaseURL string
}

// NewHandler создаёт Handler с базовым URL для построения коротких ссылок.
func NewHandler(svc *service.LinkService, logger *zap.Logger, baseURL string) *Handler {
	return &Handler{
		Service: svc,
		Logger:  logger,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// ReceiveShorten обрабатывает POST /links/shorten.
func (h *Handler) ReceiveShorten(res http.ResponseWriter, req *http.Request) {
	var body model.ShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.writeError(res, model.NewValidationError("invalid JSON body"))
		return
	}

	if err := ValidateOriginalURL(body.OriginalURL); err != nil {
		h.writeError(res, err)
		return
	}
	if err := ValidateAlias(body.CustomAlias); err != nil {
		h.writeError(res, err)
		return
	}

	link, err := h.Service.CreateLink(req.Context(), body.OriginalURL, body.CustomAlias, body.ExpiresAt)
	if err != nil {
		h.writeError(res, err)
		return
	}

	h.writeJSON(res, http.StatusCreated, link)
}

// ResponseURL обрабатывает GET /links/{shortCode}: редирект 307 на оригинальный URL.
func (h *Handler) ResponseURL(res http.ResponseWriter, req *http.Request) {
	shortCode := chi.URLParam(req, "shortCode")
	if shortCode == "" {
		h.writeError(res, model.NewValidationError("missing short code"))
		return
	}

	info := &model.VisitInfo{
		UserAgent: req.UserAgent(),
		IPAddress: clientIP(req),
		Referrer:  req.Referer(),
	}

	originalURL, err := h.Service.ResolveLink(req.Context(), shortCode, info)
	if err != nil {
		h.writeError(res, err)
		return
	}

	res.Header().Set("Location", originalURL)
	res.WriteHeader(http.StatusTemporaryRedirect)
}

// DeleteLink обрабатывает DELETE /links/{shortCode}.
func (h *Handler) DeleteLink(res http.ResponseWriter, req *http.Request) {
	shortCode := chi.URLParam(req, "shortCode")

	if err := h.Service.DeleteLink(req.Context(), shortCode); err != nil {
		h.writeError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}

// UpdateLink обрабатывает PUT /links/{shortCode}.
func (h *Handler) UpdateLink(res http.ResponseWriter, req *http.Request) {
	shortCode := chi.URLParam(req, "shortCode")

	var body model.UpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.writeError(res, model.NewValidationError("invalid JSON body"))
		return
	}
	if err := ValidateOriginalURL(body.OriginalURL); err != nil {
		h.writeError(res, err)
		return
	}

	link, err := h.Service.UpdateLink(req.Context(), shortCode, body.OriginalURL, body.ExpiresAt)
	if err != nil {
		h.writeError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, link)
}

// LinkStats обрабатывает GET /links/{shortCode}/stats.
func (h *Handler) LinkStats(res http.ResponseWriter, req *http.Request) {
	shortCode := chi.URLParam(req, "shortCode")

	stats, err := h.Service.GetStats(req.Context(), shortCode)
	if err != nil {
		h.writeError(res, err)
		return
	}

	h.writeJSON(res, http.StatusOK, model.StatsResponse{
		ShortCode:     stats.ShortCode,
		OriginalURL:   stats.OriginalURL,
		CreatedAt:     stats.CreatedAt,
		VisitCount:    stats.VisitCount,
		LastVisitedAt: stats.LastVisitedAt,
	})
}

// SearchLinks обрабатывает GET /links/search?original_url=...
func (h *Handler) SearchLinks(res http.ResponseWriter, req *http.Request) {
	originalURL := req.URL.Query().Get("original_url")
	if originalURL == "" {
		h.writeError(res, model.NewValidationError("original_url query parameter is required"))
		return
	}

	links, err := h.Service.SearchByOriginalURL(req.Context(), originalURL)
	if err != nil {
		h.writeError(res, err)
		return
	}

	result := model.SearchResponse{
		OriginalURL: originalURL,
		Links:       make([]model.Link, 0, len(links)),
	}
	for _, link := range links {
		result.Links = append(result.Links, *link)
	}
	h.writeJSON(res, http.StatusOK, result)
}

// LinkQR обрабатывает GET /links/{shortCode}/qr: PNG с QR-кодом короткой ссылки.
func (h *Handler) LinkQR(res http.ResponseWriter, req *http.Request) {
	shortCode := chi.URLParam(req, "shortCode")

	if _, err := h.Service.GetLink(req.Context(), shortCode); err != nil {
		h.writeError(res, err)
		return
	}

	shortURL := fmt.Sprintf("%s/links/%s", h.BaseURL, shortCode)
	png, err := qrcode.Encode(shortURL, qrcode.Medium, 256)
	if err != nil {
		h.writeError(res, err)
		return
	}

	res.Header().Set("Content-Type", "image/png")
	res.WriteHeader(http.StatusOK)
	if _, err := res.Write(png); err != nil {
		h.Logger.Warn("Не удалось записать QR-код в ответ", zap.Error(err))
	}
}

// Ping обрабатывает GET /ping: проверка доступности хранилища.
func (h *Handler) Ping(res http.ResponseWriter, req *http.Request) {
	if err := h.Service.Ping(req.Context()); err != nil {
		h.Logger.Error("Хранилище недоступно", zap.Error(err))
		http.Error(res, "storage unavailable", http.StatusInternalServerError)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// writeJSON сериализует ответ.
func (h *Handler) writeJSON(res http.ResponseWriter, status int, payload any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(payload); err != nil {
		h.Logger.Error("Не удалось сериализовать ответ", zap.Error(err))
	}
}

// writeError переводит ошибки сервиса в HTTP-статусы:
// валидация — 422, не найдено — 404, конфликт алиаса — 409, прочее — 500.
func (h *Handler) writeError(res http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case model.IsValidation(err):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrLinkNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrDuplicateAlias):
		status = http.StatusConflict
	default:
		h.Logger.Error("Внутренняя ошибка", zap.Error(err))
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_ = json.NewEncoder(res).Encode(map[string]string{"detail": err.Error()})
}

// clientIP извлекает адрес клиента без порта.
func clientIP(req *http.Request) string {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
