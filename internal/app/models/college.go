package models

// College is a selectable college of the transfer and director forms.
type College struct {
	ID             string `json:"id"`
	CollegeName    string `json:"collegeName" example:"Pokhara Engineering College"`
	CollegeAddress string `json:"collegeAddress" example:"Phirke, Pokhara"`
}

// Program is a selectable program of study.
type Program struct {
	ID   string `json:"id"`
	Name string `json:"name" example:"Computer Engineering"`
}
