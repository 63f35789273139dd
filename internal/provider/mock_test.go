package provider

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetRate(ctx context.Context, base, quote string) (float64, error) {
	args := m.Called(ctx, base, quote)
	return args.Get(0).(float64), args.Error(1)
}
