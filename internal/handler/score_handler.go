package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/dto"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/mapper"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/middleware"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/request"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/response"
)

type ScoreService interface {
	AwardPoints(ctx context.Context, req domain.AwardRequest) (*domain.AwardResult, error)
	RecentAwards(ctx context.Context, limit int) ([]domain.ScoreAward, error)
}

type ScoreHandler struct {
	service   ScoreService
	validator *validator.Validate
}

func NewScoreHandler(service ScoreService, validator *validator.Validate) *ScoreHandler {
	return &ScoreHandler{
		service:   service,
		validator: validator,
	}
}

// AwardPoints godoc
// @Summary Award points to a team
// @Description Atomically records a score, updates the team's total and appends an audit event
// @Tags Scores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.AwardPointsRequest true "Award request"
// @Success 201 {object} dto.ScoreAwardDTO "Award recorded"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /scores [post]
func (h *ScoreHandler) AwardPoints(w http.ResponseWriter, r *http.Request) {
	var req request.AwardPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	result, err := h.service.AwardPoints(r.Context(), mapper.MapAwardRequestToDomain(actor, &req))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		// A repeated dedup token returns the original award.
		status = http.StatusOK
	}
	respondJSON(w, status, mapper.MapDomainAwardToDTO(&result.Award))
}

// RecentAwards godoc
// @Summary Recent score history
// @Description Latest awards in commit order, newest first
// @Tags Scores
// @Produce json
// @Param limit query int false "Maximum rows (default 50)"
// @Success 200 {object} response.RecentAwardsResponse
// @Router /scores/recent [get]
func (h *ScoreHandler) RecentAwards(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	awards, err := h.service.RecentAwards(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	awardDTOs := mapper.MapDomainAwardsToDTO(awards)
	respondJSON(w, http.StatusOK, response.RecentAwardsResponse{
		Awards: awardDTOs,
		Count:  len(awardDTOs),
	})
}
