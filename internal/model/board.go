package model

// Board name length limits enforced on create and rename.
const (
	BoardNameMinLen = 1
	BoardNameMaxLen = 50
)

// Board is a named collection of tasks owned by exactly one user. Ownership
// of every task is derived through its board; the board's UserID is the
// single source of truth for authorization decisions.
type Board struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"userId"`
}
