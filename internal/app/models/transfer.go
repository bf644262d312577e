package models

import "time"

// TransferRequest is a submitted transfer application. It is immutable once
// accepted.
type TransferRequest struct {
	ID                     string    `json:"id"`
	FullName               string    `json:"fullName" example:"Sita Gurung"`
	RegistrationNumber     string    `json:"registrationNumber" example:"2019-1-22-0101"`
	ExamRollNumber         string    `json:"examRollNumber" example:"19070101"`
	SourceCollegeName      string    `json:"sourceCollegeName" example:"Pokhara Engineering College"`
	DestinationCollegeName string    `json:"destinationCollegeName" example:"Gandaki College of Engineering and Science"`
	Email                  string    `json:"email" example:"sita@example.com"`
	ContactNumber          string    `json:"contactNumber" example:"9800000000"`
	ProgramEnrolled        string    `json:"programEnrolled" example:"Computer Engineering"`
	CurrentSemester        string    `json:"currentSemester" example:"5"`
	Remarks                string    `json:"remarks"`
	ApplicationLetterName  string    `json:"applicationLetterName" example:"letter.pdf"`
	ApplicationLetterPath  string    `json:"applicationLetterPath" example:"edited-pdfs/letter.pdf"` // Blob path of the uploaded letter
	SubmittedAt            time.Time `json:"submittedAt"`
}
