package ports

import "go.pakt.dev/pakt/internal/core/domain"

// SolutionLoader locates and loads the solution configuration.
//
//go:generate mockgen -source=solution_loader.go -destination=mocks/mock_solution_loader.go -package=mocks
type SolutionLoader interface {
	// Load walks up from cwd to the solution root and returns the solution
	// description.
	Load(cwd string) (*domain.Solution, error)
}
