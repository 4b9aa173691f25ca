package request

type CreateTeamRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	LogoURL string `json:"logoUrl" validate:"omitempty,max=1024"`
	Members int    `json:"members" validate:"omitempty,gte=1,lte=100"`
}

type UpdateTeamRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	LogoURL *string `json:"logoUrl" validate:"omitempty,max=1024"`
	Members *int    `json:"members" validate:"omitempty,gte=1,lte=100"`
}
