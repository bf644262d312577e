package models

// Approval is a transfer awaiting a decision at one stage.
type Approval struct {
	ID                 string        `json:"id"`
	StudentName        string        `json:"studentName" example:"Sita Gurung"`
	RegistrationNumber string        `json:"registrationNumber" example:"2019-1-22-0101"`
	SourceCollege      string        `json:"sourceCollege" example:"Pokhara Engineering College"`
	DestinationCollege string        `json:"destinationCollege" example:"Gandaki College of Engineering and Science"`
	Program            string        `json:"program" example:"Computer Engineering"`
	Stage              ApprovalStage `json:"stage" example:"dean"`
	Status             string        `json:"status" example:"pending"`
}
