package request

type AwardPointsRequest struct {
	TeamID    int64  `json:"teamId" validate:"required,gt=0"`
	Points    int    `json:"points" validate:"required,gt=0"`
	Challenge string `json:"challenge" validate:"max=255"`
	Comment   string `json:"comment" validate:"max=1024"`
	// DedupToken lets a retrying client collapse duplicate submissions of the
	// same award. Optional.
	DedupToken string `json:"dedupToken" validate:"omitempty,uuid4"`
}
