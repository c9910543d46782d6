package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/turfspot/TurfBookingService/internal/api/handlers"
	getAvailableSlots "github.com/turfspot/TurfBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTurfID      = "некорректный ID площадки"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidGranularity = "некорректный шаг сетки слотов"
	msgTurfNotFound       = "площадка не найдена"
	msgDateInPast         = "дата в прошлом"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/available-slots
// Query params: date (required, YYYY-MM-DD), granularity (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем turfId из URL
	turfIDStr := vars["turfId"]
	turfID, err := strconv.ParseInt(turfIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/available-slots - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /turfs/{id}/available-slots - Missing date: turf_id=%d", turfID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем granularity из query параметров (опционально)
	granularity := 0
	if granularityStr := r.URL.Query().Get("granularity"); granularityStr != "" {
		granularity, err = strconv.Atoi(granularityStr)
		if err != nil {
			h.logger.Warn("GET /turfs/{id}/available-slots - Invalid granularity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGranularity)
			return
		}
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(turfID, dateStr, granularity)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id}/available-slots - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("GET /turfs/{id}/available-slots - Date in past: turf_id=%d, date=%s", turfID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /turfs/{id}/available-slots - Invalid input: turf_id=%d, granularity=%d",
				turfID, granularity)
			handlers.RespondBadRequest(w, msgInvalidGranularity)

		case errors.Is(err, getAvailableSlots.ErrUnavailable):
			h.logger.Error("GET /turfs/{id}/available-slots - Dependency unavailable: turf_id=%d, error=%v",
				turfID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /turfs/{id}/available-slots - Failed to get slots: turf_id=%d, error=%v",
				turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /turfs/{id}/available-slots - Slots retrieved successfully: turf_id=%d, date=%s, slots_count=%d",
		turfID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
