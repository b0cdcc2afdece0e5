package mocks

import (
	"context"

	"caseapi/internal/audit"

	"github.com/stretchr/testify/mock"
)

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, e audit.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
