package handler

import (
	"context"
	"net/http"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/mapper"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/response"
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type LeaderboardHandler struct {
	service LeaderboardService
}

func NewLeaderboardHandler(service LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

// GetLeaderboard godoc
// @Summary Current ranking
// @Description All teams by aggregate score descending; ties ordered by earliest creation
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} response.LeaderboardResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.GetLeaderboard(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	entryDTOs := mapper.MapLeaderboardToDTO(entries)
	respondJSON(w, http.StatusOK, response.LeaderboardResponse{
		Leaderboard: entryDTOs,
		Count:       len(entryDTOs),
	})
}
