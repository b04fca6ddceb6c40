package dto

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}
