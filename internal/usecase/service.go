package usecase

import (
	"context"
	"errors"

	"svw.info/nqueens/internal/domain"
	"svw.info/nqueens/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, p *domain.Problem, mode domain.Mode) ([]domain.Placement, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, p, mode)
}

func (u *Service) Generate(ctx context.Context, seed int64, size, clues int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, size, clues)
}

func (u *Service) Validate(ctx context.Context, n int, queens []domain.CellCoord) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, n, queens)
}

func (u *Service) Hint(ctx context.Context, p *domain.Problem) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, p)
}
