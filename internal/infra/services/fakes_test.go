package services

import (
	"context"
	"errors"

	"sales-assistant/internal/domain/dto"
	"sales-assistant/internal/domain/entities"
)

type fakeLLM struct {
	calls    []dto.CompletionRequest
	response string
	err      error
}

func (f *fakeLLM) Complete(ctx context.Context, req dto.CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	return f.response, f.err
}

type fakeLearning struct {
	guide string
}

func (f *fakeLearning) SaveEdit(ctx context.Context, input dto.SaveEmailEditRequest) (dto.SaveEmailEditResponse, error) {
	return dto.SaveEmailEditResponse{Success: true}, nil
}

func (f *fakeLearning) GetPatterns(ctx context.Context) (dto.EmailPatternsResponse, error) {
	return dto.EmailPatternsResponse{Success: true, StyleGuide: f.guide}, nil
}

func (f *fakeLearning) StyleGuide(ctx context.Context) string {
	return f.guide
}

var errDiskFull = errors.New("disk full")

// brokenRepo fails every write and read.
type brokenRepo struct{}

func (brokenRepo) Append(ctx context.Context, record entities.EditRecord) error {
	return errDiskFull
}

func (brokenRepo) FindRecent(ctx context.Context, limit int) ([]entities.EditRecord, error) {
	return nil, errDiskFull
}

func (brokenRepo) Count(ctx context.Context) (int, error) {
	return 0, errDiskFull
}
