package dto

import "warbler/models"

// UserDTO is a Data Transfer Object for user responses
type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url,omitempty"`
}

func NewUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		ImageURL: u.ImageURL,
	}
}

func NewUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = NewUserDTO(u)
	}
	return out
}
