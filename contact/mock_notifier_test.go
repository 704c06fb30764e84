package contact

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, sub Submission, ip string) error {
	args := m.Called(ctx, sub, ip)
	return args.Error(0)
}
