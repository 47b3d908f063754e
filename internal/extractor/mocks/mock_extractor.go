package mocks

import (
	"docqa/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(data []byte, mt model.MediaType) (string, error) {
	args := m.Called(data, mt)
	return args.String(0), args.Error(1)
}
