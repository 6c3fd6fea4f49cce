package puzzleapi

import (
	"github.com/google/uuid"
)

// PuzzleResponse describes one solvable puzzle part.
type PuzzleResponse struct {
	Day   int    `json:"day"`
	Part  int    `json:"part"`
	Title string `json:"title"`
}

// SolveRequest carries the puzzle input to solve.
type SolveRequest struct {
	Input string `json:"input" binding:"required"`
}

// SolveResponse is the answer to a solve request.
type SolveResponse struct {
	RunID     uuid.UUID `json:"run_id"`
	Day       int       `json:"day"`
	Part      int       `json:"part"`
	Answer    int       `json:"answer"`
	ElapsedMS int64     `json:"elapsed_ms"`
}
