package mocks

import (
	"context"
	"io"

	"docqa/internal/model"
	"docqa/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.ExtractedContent, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExtractedContent), args.Error(1)
}

func (m *MockDocumentService) Ask(ctx context.Context, req model.QARequest) (*model.QAResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QAResponse), args.Error(1)
}

func (m *MockDocumentService) ListActivity(ctx context.Context, limit, offset int) (*service.ActivityListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ActivityListResult), args.Error(1)
}

func (m *MockDocumentService) ActivitySummary(ctx context.Context) (*model.ActivitySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActivitySummary), args.Error(1)
}
