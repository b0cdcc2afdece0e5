package mocks

import (
	"context"

	"caseapi/internal/model"
	"caseapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Submit(ctx context.Context, fields map[string]string, files []model.CaseFile) (*service.Receipt, error) {
	args := m.Called(ctx, fields, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Receipt), args.Error(1)
}
