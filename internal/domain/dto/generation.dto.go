package dto

import "sales-assistant/internal/domain/entities"

type GenerateAgendaRequest struct {
	Transcript *entities.Transcript `json:"transcript"`
	Account    *entities.Account    `json:"account"`
}

type GenerateFollowUpRequest struct {
	Transcript *entities.Transcript `json:"transcript"`
	Account    *entities.Account    `json:"account,omitempty"`
}

type GenerateResponse struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
