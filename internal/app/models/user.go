package models

// Director is a college head account record, stored in the users
// collection under the id of its credential.
type Director struct {
	ID      string   `json:"id" example:"7f8c9f1e-2c1b-4d7a-9f0e-6c1f2b3a4d5e"` // Credential id
	Name    string   `json:"name" example:"Dr. Ramesh Sharma"`
	Email   string   `json:"email" example:"director@college.edu.np"`
	College string   `json:"college" example:"Pokhara Engineering College"` // College name, not id
	Address string   `json:"address" example:"Phirke, Pokhara"`
	Role    RoleType `json:"role" example:"college_head"`
}
