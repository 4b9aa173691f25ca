package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/mapper"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/response"
)

type EventService interface {
	ListEvents(ctx context.Context, limit int, filter domain.EventFilter) ([]domain.Event, error)
}

type EventHandler struct {
	service EventService
}

func NewEventHandler(service EventService) *EventHandler {
	return &EventHandler{service: service}
}

// ListEvents godoc
// @Summary Audit trail
// @Description Latest events, newest first. Optional filters by type, team and date.
// @Tags Events
// @Produce json
// @Param limit query int false "Maximum rows (default 30)"
// @Param type query string false "Event type, e.g. SCORE_UPDATE"
// @Param teamId query int false "Team id"
// @Param since query string false "RFC 3339 lower bound"
// @Success 200 {object} response.EventsResponse
// @Router /events [get]
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	teamID, _ := strconv.ParseInt(q.Get("teamId"), 10, 64)

	filter := domain.EventFilter{
		Type:   q.Get("type"),
		TeamID: teamID,
	}
	if raw := q.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err == nil {
			filter.Since = since
		}
	}

	events, err := h.service.ListEvents(r.Context(), limit, filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	eventDTOs := mapper.MapDomainEventsToDTO(events)
	respondJSON(w, http.StatusOK, response.EventsResponse{
		Events: eventDTOs,
		Count:  len(eventDTOs),
	})
}
