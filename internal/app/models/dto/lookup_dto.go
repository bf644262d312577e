package dto

import "github.com/yigit/transferdesk/internal/app/models"

// FormOptionsResponse holds the choices of every select field
type FormOptionsResponse struct {
	Colleges []models.College `json:"colleges"`
	Programs []models.Program `json:"programs"`
}
