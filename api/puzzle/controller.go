// Package puzzleapi exposes the puzzle solvers over HTTP.
package puzzleapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/advent2024/api/identity"
	"github.com/beka-birhanu/advent2024/service"
	"github.com/beka-birhanu/advent2024/service/i"
	"github.com/gin-gonic/gin"
)

// PuzzleController lists puzzles and solves posted inputs.
type PuzzleController struct {
	runner i.Runner
	logger i.Logger
}

// NewPuzzleController initializes a PuzzleController.
func NewPuzzleController(r i.Runner, l i.Logger) (*PuzzleController, error) {
	if r == nil || l == nil {
		return nil, errors.New("puzzle controller needs a runner and a logger")
	}

	return &PuzzleController{
		runner: r,
		logger: l,
	}, nil
}

// RegisterPublic registers public routes.
func (pc *PuzzleController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/puzzles", pc.list)
}

// RegisterProtected registers protected routes.
func (pc *PuzzleController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/puzzles/:day/:part", pc.solve)
}

// list returns every solvable puzzle part.
func (pc *PuzzleController) list(ctx *gin.Context) {
	solvers := pc.runner.Solvers()
	response := make([]PuzzleResponse, 0, len(solvers))
	for _, s := range solvers {
		response = append(response, PuzzleResponse{
			Day:   s.Day(),
			Part:  s.Part(),
			Title: s.Title(),
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// solve runs the requested solver on the posted input.
func (pc *PuzzleController) solve(ctx *gin.Context) {
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "day must be a number"})
		return
	}

	part, err := strconv.Atoi(ctx.Param("part"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "part must be a number"})
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solution, err := pc.runner.RunInput(ctx.Request.Context(), day, part, request.Input)
	switch {
	case errors.Is(err, service.ErrSolverNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, context.DeadlineExceeded):
		ctx.JSON(http.StatusGatewayTimeout, gin.H{"error": "solve timed out"})
		return
	case err != nil:
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if subject := ctx.GetString(identity.ContextSubject); subject != "" {
		pc.logger.Info(fmt.Sprintf("Run %s requested by %s", solution.RunID, subject))
	}

	ctx.JSON(http.StatusOK, &SolveResponse{
		RunID:     solution.RunID,
		Day:       solution.Day,
		Part:      solution.Part,
		Answer:    solution.Answer,
		ElapsedMS: solution.Elapsed.Milliseconds(),
	})
}
