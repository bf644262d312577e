package dto

// CreateDirectorRequest is the director form payload. College is the id of
// a college record; Address defaults to that college's address.
type CreateDirectorRequest struct {
	Name     string `json:"name" example:"Dr. Ramesh Sharma"`
	Email    string `json:"email" example:"director@college.edu.np"`
	College  string `json:"college" example:"3d6f0a52-8f1c-4a8e-9b0e-1f2a3b4c5d6e"`
	Address  string `json:"address,omitempty" example:"Phirke, Pokhara"`
	Password string `json:"password" example:"secret123"`
}
