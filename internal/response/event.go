package response

import "github.com/sarrasouelmia/ArenaNuitDeL-info/internal/dto"

type EventsResponse struct {
	Events []dto.EventDTO `json:"events"`
	Count  int            `json:"count"`
}
