package models

// Student is a row of the student table, a users document with role student.
type Student struct {
	ID          string   `json:"id" example:"b1d2c3e4-0000-4000-8000-000000000001"`
	Name        string   `json:"name" example:"Sita Gurung"`
	PuRegNumber string   `json:"puRegNumber" example:"2019-1-22-0101"` // Pokhara University registration number
	College     string   `json:"college" example:"Pokhara Engineering College"`
	Program     string   `json:"program" example:"Computer Engineering"`
	Semester    string   `json:"semester" example:"5"`
	Role        RoleType `json:"role" example:"student"`
}
