package response

import "github.com/sarrasouelmia/ArenaNuitDeL-info/internal/dto"

type RecentAwardsResponse struct {
	Awards []dto.ScoreAwardDTO `json:"awards"`
	Count  int                 `json:"count"`
}
