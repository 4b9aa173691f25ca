package mapper

import (
	"strings"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/dto"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/request"
)

// Team mappers
func MapDomainTeamToDTO(team *domain.Team) dto.TeamDTO {
	return dto.TeamDTO{
		ID:        team.ID,
		Name:      team.Name,
		LogoURL:   team.LogoURL,
		Members:   team.Members,
		Score:     team.Score,
		CreatedAt: team.CreatedAt,
	}
}

func MapDomainTeamsToDTO(teams []domain.Team) []dto.TeamDTO {
	result := make([]dto.TeamDTO, len(teams))
	for i, t := range teams {
		result[i] = MapDomainTeamToDTO(&t)
	}
	return result
}

func MapLeaderboardToDTO(entries []domain.LeaderboardEntry) []dto.LeaderboardEntryDTO {
	result := make([]dto.LeaderboardEntryDTO, len(entries))
	for i, e := range entries {
		result[i] = dto.LeaderboardEntryDTO{
			Rank:      e.Rank,
			ID:        e.ID,
			Name:      e.Name,
			LogoURL:   e.LogoURL,
			Members:   e.Members,
			Score:     e.Score,
			CreatedAt: e.CreatedAt,
		}
	}
	return result
}

func MapUpdateTeamRequestToDomain(id int64, actor string, req *request.UpdateTeamRequest) domain.TeamUpdate {
	upd := domain.TeamUpdate{ID: id, Actor: actor, LogoURL: req.LogoURL, Members: req.Members}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		upd.Name = &trimmed
	}
	return upd
}

// Score mappers
func MapDomainAwardToDTO(award *domain.ScoreAward) dto.ScoreAwardDTO {
	return dto.ScoreAwardDTO{
		ID:        award.ID,
		TeamID:    award.TeamID,
		TeamName:  award.TeamName,
		Points:    award.Points,
		Challenge: award.Challenge,
		Comment:   award.Comment,
		User:      award.Actor,
		Time:      award.CreatedAt,
	}
}

func MapDomainAwardsToDTO(awards []domain.ScoreAward) []dto.ScoreAwardDTO {
	result := make([]dto.ScoreAwardDTO, len(awards))
	for i, a := range awards {
		result[i] = MapDomainAwardToDTO(&a)
	}
	return result
}

func MapAwardRequestToDomain(actor string, req *request.AwardPointsRequest) domain.AwardRequest {
	return domain.AwardRequest{
		TeamID:     req.TeamID,
		Points:     req.Points,
		Challenge:  req.Challenge,
		Comment:    req.Comment,
		Actor:      actor,
		DedupToken: req.DedupToken,
	}
}

// Event mappers
func MapDomainEventToDTO(event *domain.Event) dto.EventDTO {
	return dto.EventDTO{
		ID:        event.ID,
		Type:      event.Type,
		Payload:   event.Payload,
		CreatedAt: event.CreatedAt,
	}
}

func MapDomainEventsToDTO(events []domain.Event) []dto.EventDTO {
	result := make([]dto.EventDTO, len(events))
	for i, e := range events {
		result[i] = MapDomainEventToDTO(&e)
	}
	return result
}
