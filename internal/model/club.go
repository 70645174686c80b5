package model

type Club struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
