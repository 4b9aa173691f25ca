package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/dto"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/mapper"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/middleware"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/request"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/response"
)

type TeamService interface {
	CreateTeam(ctx context.Context, name, logoURL string, members int, actor string) (*domain.Team, error)
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
	UpdateTeam(ctx context.Context, upd domain.TeamUpdate) (*domain.Team, error)
	DeleteTeam(ctx context.Context, id int64, actor string) error
}

type TeamHandler struct {
	service   TeamService
	validator *validator.Validate
}

func NewTeamHandler(service TeamService, validator *validator.Validate) *TeamHandler {
	return &TeamHandler{
		service:   service,
		validator: validator,
	}
}

// CreateTeam godoc
// @Summary Register a team
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateTeamRequest true "Team creation request"
// @Success 201 {object} dto.TeamDTO "Team created"
// @Failure 409 {object} dto.ErrorResponse "Team name already exists"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	team, err := h.service.CreateTeam(r.Context(), req.Name, req.LogoURL, req.Members, actor)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapper.MapDomainTeamToDTO(team))
}

// GetTeam godoc
// @Summary Get one team
// @Tags Teams
// @Produce json
// @Param id path int true "Team id"
// @Success 200 {object} dto.TeamDTO
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := teamID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid team id")
		return
	}

	team, err := h.service.GetTeam(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapper.MapDomainTeamToDTO(team))
}

// ListTeams godoc
// @Summary List registered teams
// @Tags Teams
// @Produce json
// @Success 200 {object} response.TeamsResponse
// @Router /teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.ListTeams(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	teamDTOs := mapper.MapDomainTeamsToDTO(teams)
	respondJSON(w, http.StatusOK, response.TeamsResponse{
		Teams: teamDTOs,
		Count: len(teamDTOs),
	})
}

// UpdateTeam godoc
// @Summary Update team name, logo or member count
// @Description Aggregate score is owned by the award pipeline and cannot be set here
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team id"
// @Param request body request.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} dto.TeamDTO
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := teamID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid team id")
		return
	}

	var req request.UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	team, err := h.service.UpdateTeam(r.Context(), mapper.MapUpdateTeamRequestToDomain(id, actor, &req))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapper.MapDomainTeamToDTO(team))
}

// DeleteTeam godoc
// @Summary Delete a team without awards
// @Tags Teams
// @Security BearerAuth
// @Param id path int true "Team id"
// @Success 204 "Team deleted"
// @Failure 409 {object} dto.ErrorResponse "Team has recorded awards"
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := teamID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid team id")
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	if err := h.service.DeleteTeam(r.Context(), id, actor); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func teamID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
