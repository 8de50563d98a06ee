package dto

import "warbler/models"

// MessageDTO is a Data Transfer Object for message responses
type MessageDTO struct {
	ID       uint   `json:"id"`
	Text     string `json:"content"`
	PubDate  int64  `json:"pub_date"`
	Username string `json:"user"`
}

func NewMessageDTO(m models.Message) MessageDTO {
	return MessageDTO{
		ID:       m.ID,
		Text:     m.Text,
		PubDate:  m.PubDate,
		Username: m.Author.Username,
	}
}

func NewMessageDTOs(messages []models.Message) []MessageDTO {
	out := make([]MessageDTO, len(messages))
	for i, m := range messages {
		out[i] = NewMessageDTO(m)
	}
	return out
}
