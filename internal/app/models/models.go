package models

// RoleType is the discriminant stored on every users document.
type RoleType string

const (
	RoleStudent     RoleType = "student"
	RoleCollegeHead RoleType = "college_head"
)

// ApprovalStage is the discriminant stored on every approvals document.
type ApprovalStage string

const (
	StageDean ApprovalStage = "dean"
)

// Collection names in the document store
const (
	CollectionUsers       = "users"
	CollectionApprovals   = "approvals"
	CollectionColleges    = "colleges"
	CollectionPrograms    = "programs"
	CollectionCredentials = "credentials"
)
