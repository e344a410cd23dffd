package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/opentender/radar/internal/models"
	"github.com/opentender/radar/internal/services"
	"github.com/opentender/radar/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var validate = validator.New()

// TenderHandler - структура для обработки HTTP-запросов.
type TenderHandler struct {
	Service *services.TenderService
	Logger  zerolog.Logger
	Timeout time.Duration
}

// NewTenderHandler создаёт новый экземпляр TenderHandler.
func NewTenderHandler(service *services.TenderService, logger zerolog.Logger, timeout time.Duration) *TenderHandler {
	return &TenderHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
	}
}

// GetTenders обрабатывает запросы для получения страницы тендеров.
func (h *TenderHandler) GetTenders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	q, err := utils.ParseTenderQuery(r.URL.Query())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page, err := h.Service.ListTenders(ctx, q)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, page)
}

// GetTender обрабатывает запросы для получения одного тендера.
func (h *TenderHandler) GetTender(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	tender, err := h.Service.GetTender(ctx, chi.URLParam(r, "tenderId"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, tender)
}

// GetTenderScore обрабатывает запросы для получения разложения скора тендера.
func (h *TenderHandler) GetTenderScore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	breakdown, err := h.Service.ExplainScore(ctx, chi.URLParam(r, "tenderId"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, breakdown)
}

// CreateTender обрабатывает запросы для создания тендера.
func (h *TenderHandler) CreateTender(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var tenderReq models.TenderRequest
	if err := json.NewDecoder(r.Body).Decode(&tenderReq); err != nil {
		h.renderError(w, r, models.NewErrorResponse(http.StatusBadRequest, "invalid request body"))
		return
	}

	if err := validate.Struct(tenderReq); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			field := validationErrs[0]
			h.renderError(w, r, models.NewValidationError(field.Field(), fmt.Sprintf("failed %q constraint", field.Tag())))
			return
		}
		h.renderError(w, r, models.NewErrorResponse(http.StatusBadRequest, "invalid request body"))
		return
	}

	tender, err := h.Service.CreateTender(ctx, tenderReq)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, tender)
}

// GetCountries обрабатывает запросы для получения списка стран.
func (h *TenderHandler) GetCountries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	countries, err := h.Service.GetCountries(ctx)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string][]string{"countries": countries})
}

// GetSectors обрабатывает запросы для получения списка секторов.
func (h *TenderHandler) GetSectors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	sectors, err := h.Service.GetSectors(ctx)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string][]string{"sectors": sectors})
}

// renderError переводит доменные ошибки в HTTP-ответ: ошибки валидации
// отклоняют запрос со статусом 400 и именем поля, остальные несут свой
// статус в ErrorResponse.
func (h *TenderHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		h.Logger.Warn().Str("field", validationErr.Field).Msg(validationErr.Message)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErr)
		return
	}

	var errorResponse *models.ErrorResponse
	if errors.As(err, &errorResponse) {
		h.Logger.Error().Int("status", errorResponse.StatusCode).Msg(errorResponse.Message)
		render.Status(r, errorResponse.StatusCode)
		render.JSON(w, r, errorResponse)
		return
	}

	h.Logger.Error().Err(err).Msg("unexpected error")
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, models.NewErrorResponse(http.StatusInternalServerError, "internal server error"))
}
