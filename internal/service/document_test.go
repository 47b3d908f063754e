package service

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"docqa/internal/extractor"
	exMocks "docqa/internal/extractor/mocks"
	"docqa/internal/gemini"
	gemMocks "docqa/internal/gemini/mocks"
	"docqa/internal/model"
	"docqa/internal/prompt"
	"docqa/internal/repository"
	repoMocks "docqa/internal/repository/mocks"
	"docqa/internal/storage"
	storeMocks "docqa/internal/storage/mocks"
	"docqa/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiskStore(t *testing.T) (storage.Storage, string) {
	t.Helper()
	root := t.TempDir()
	st, err := storage.NewDisk(root)
	require.NoError(t, err)
	return st, root
}

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(_ string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !e.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()
	body := "fake-pdf-bytes"

	tests := []struct {
		name        string
		contentType string
		extractText string
		extractErr  error
		wantErr     error
		wantOutcome string
	}{
		{
			name:        "happy path",
			contentType: string(model.MediaTypePDF),
			extractText: "Hello world",
			wantOutcome: OutcomeOK,
		},
		{
			name:        "parse failure",
			contentType: string(model.MediaTypePDF),
			extractErr:  &extractor.ParseError{Format: model.MediaTypePDF, Cause: errors.New("bad xref")},
			wantOutcome: OutcomeParseFailure,
		},
		{
			name:        "no text content",
			contentType: string(model.MediaTypePDF),
			extractErr:  extractor.ErrNoTextContent,
			wantErr:     extractor.ErrNoTextContent,
			wantOutcome: OutcomeNoTextContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, root := newDiskStore(t)
			mEx := new(exMocks.MockExtractor)
			mEx.On("Extract", []byte(body), model.MediaTypePDF).Return(tt.extractText, tt.extractErr)

			reg := prometheus.NewRegistry()
			metrics, err := NewMetrics(reg)
			require.NoError(t, err)

			svc := NewDocumentService(store, mEx, new(gemMocks.MockAnswerer), Options{Metrics: metrics})
			out, err := svc.Upload(ctx, strings.NewReader(body), "report.PDF", tt.contentType, int64(len(body)))

			if tt.extractErr != nil {
				assert.Error(t, err)
				assert.Nil(t, out)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Hello world", out.Text)
				assert.Equal(t, "report.PDF", out.SourceName)
				assert.Equal(t, model.MediaTypePDF, out.MediaType)
				assert.Equal(t, int64(len(body)), out.Size)
			}

			assert.Equal(t, 0, countFiles(t, root), "scratch object must be removed")
			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.extractions.WithLabelValues("pdf", tt.wantOutcome)))
			mEx.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Upload_RejectsBeforeStaging(t *testing.T) {
	ctx := context.Background()

	t.Run("nil reader", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewDocumentService(mStore, new(exMocks.MockExtractor), nil, Options{})
		_, err := svc.Upload(ctx, nil, "a.pdf", string(model.MediaTypePDF), 1)
		assert.ErrorIs(t, err, ErrReaderNil)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unsupported type", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mEx := new(exMocks.MockExtractor)
		svc := NewDocumentService(mStore, mEx, nil, Options{})
		_, err := svc.Upload(ctx, strings.NewReader("x"), "a.txt", "text/plain", 1)
		assert.ErrorIs(t, err, extractor.ErrUnsupportedType)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mEx.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
	})

	t.Run("declared size over limit", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewDocumentService(mStore, new(exMocks.MockExtractor), nil, Options{MaxUploadBytes: 4})
		_, err := svc.Upload(ctx, strings.NewReader("12345"), "a.pdf", string(model.MediaTypePDF), 5)
		var ve *validation.Error
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, validation.CodeFileTooLarge, ve.Code)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDocumentService_Upload_ActualBytesOverLimit(t *testing.T) {
	store, root := newDiskStore(t)
	mEx := new(exMocks.MockExtractor)
	svc := NewDocumentService(store, mEx, nil, Options{MaxUploadBytes: 4})

	// declared size lies; the staged bytes are what count
	_, err := svc.Upload(context.Background(), strings.NewReader("1234567890"), "a.xlsx", string(model.MediaTypeXLSX), 2)

	var ve *validation.Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, validation.CodeFileTooLarge, ve.Code)
	assert.Equal(t, 0, countFiles(t, root))
	mEx.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestDocumentService_Upload_StorageFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("put fails", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, ".pdf")
		}), mock.Anything, storage.PutObjectOptions{
			Size:        3,
			ContentType: string(model.MediaTypePDF),
			Metadata:    map[string]string{"original-filename": "a.pdf"},
		}).Return(storage.ObjectInfo{}, errors.New("disk full"))
		mStore.On("Delete", mock.Anything, mock.Anything).Return(nil)

		svc := NewDocumentService(mStore, new(exMocks.MockExtractor), nil, Options{})
		_, err := svc.Upload(ctx, strings.NewReader("abc"), "a.pdf", string(model.MediaTypePDF), 3)

		assert.EqualError(t, err, "stage upload: disk full")
		mStore.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("get fails", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(func(_ context.Context, key string, r io.Reader, _ storage.PutObjectOptions) storage.ObjectInfo {
				return storage.ObjectInfo{Key: key}
			}, nil)
		mStore.On("Get", ctx, mock.Anything).Return(nil, storage.ObjectInfo{}, errors.New("gone"))
		mStore.On("Delete", mock.Anything, mock.Anything).Return(nil)

		svc := NewDocumentService(mStore, new(exMocks.MockExtractor), nil, Options{})
		_, err := svc.Upload(ctx, strings.NewReader("abc"), "a.pdf", string(model.MediaTypePDF), 3)

		assert.EqualError(t, err, "read staged upload: gone")
		mStore.AssertNumberOfCalls(t, "Delete", 1)
	})

	t.Run("cleanup failure does not change the result", func(t *testing.T) {
		store, _ := newDiskStore(t)
		mStore := new(storeMocks.MockStorage)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(func(c context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
				info, _ := store.Put(c, key, r, opt)
				return info
			}, nil)
		mStore.On("Get", ctx, mock.Anything).Return(func() io.ReadCloser {
			return io.NopCloser(strings.NewReader("abc"))
		}(), storage.ObjectInfo{}, nil)
		mStore.On("Delete", mock.Anything, mock.Anything).Return(errors.New("busy"))

		mEx := new(exMocks.MockExtractor)
		mEx.On("Extract", []byte("abc"), model.MediaTypeXLS).Return("Sheet: A", nil)

		svc := NewDocumentService(mStore, mEx, nil, Options{})
		out, err := svc.Upload(ctx, strings.NewReader("abc"), "a.xls", string(model.MediaTypeXLS), 3)

		require.NoError(t, err)
		assert.Equal(t, "Sheet: A", out.Text)
	})
}

func TestDocumentService_Upload_CleanupSurvivesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mStore := new(storeMocks.MockStorage)
	mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{}, context.Canceled)
	mStore.On("Delete", mock.MatchedBy(func(c context.Context) bool {
		return c.Err() == nil
	}), mock.Anything).Return(nil)

	svc := NewDocumentService(mStore, new(exMocks.MockExtractor), nil, Options{})
	_, err := svc.Upload(ctx, strings.NewReader("abc"), "a.pdf", string(model.MediaTypePDF), 3)

	assert.ErrorIs(t, err, context.Canceled)
	mStore.AssertExpectations(t)
}

func TestDocumentService_Upload_RecordsActivity(t *testing.T) {
	store, _ := newDiskStore(t)
	mEx := new(exMocks.MockExtractor)
	mEx.On("Extract", mock.Anything, model.MediaTypeXLSX).Return("Sheet: Sheet1\nNäme", nil)
	mRepo := new(repoMocks.MockActivityRepository)
	mRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
		return a.ID != "" &&
			a.Kind == model.ActivityUpload &&
			a.MediaType == "xlsx" &&
			a.SizeBytes == 4 &&
			a.ContentLength == 18 &&
			a.Outcome == OutcomeOK &&
			!a.CreatedAt.IsZero()
	})).Return(errors.New("db down"))

	svc := NewDocumentService(store, mEx, nil, Options{Activity: mRepo})
	out, err := svc.Upload(context.Background(), strings.NewReader("abcd"), "b.xlsx", string(model.MediaTypeXLSX), 4)

	require.NoError(t, err, "ledger failures never fail the request")
	assert.NotNil(t, out)
	mRepo.AssertExpectations(t)
}

func TestDocumentService_Ask(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))

	t.Run("happy path", func(t *testing.T) {
		req := model.QARequest{Content: "Revenue: 100", Question: "What is revenue?"}
		mAns := new(gemMocks.MockAnswerer)
		mAns.On("Ask", mock.Anything, prompt.Build(req.Content, req.Question)).Return("Revenue is 100.", nil)

		svc := NewDocumentService(nil, nil, mAns, Options{}).(*documentService)
		svc.now = func() time.Time { return now }

		resp, err := svc.Ask(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Revenue is 100.", resp.Answer)
		assert.Equal(t, 16, resp.QuestionLength)
		assert.Equal(t, 15, resp.ResponseLength)
		assert.Equal(t, now.UTC(), resp.Timestamp)
		mAns.AssertExpectations(t)
	})

	t.Run("validation stops before the provider", func(t *testing.T) {
		mAns := new(gemMocks.MockAnswerer)
		svc := NewDocumentService(nil, nil, mAns, Options{})

		_, err := svc.Ask(ctx, model.QARequest{Content: "x", Question: strings.Repeat("q", 501)})

		var ve *validation.Error
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, validation.CodeQuestionTooLong, ve.Code)
		mAns.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
	})

	t.Run("provider call is detached from caller cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		mAns := new(gemMocks.MockAnswerer)
		mAns.On("Ask", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), mock.Anything).
			Return("ok", nil)

		svc := NewDocumentService(nil, nil, mAns, Options{})
		_, err := svc.Ask(cctx, model.QARequest{Content: "c", Question: "q"})
		require.NoError(t, err)
		mAns.AssertExpectations(t)
	})

	t.Run("provider error propagates and is recorded", func(t *testing.T) {
		mAns := new(gemMocks.MockAnswerer)
		mAns.On("Ask", mock.Anything, mock.Anything).Return("", gemini.ErrRateLimited)
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
			return a.Kind == model.ActivityAsk && a.Outcome == OutcomeRateLimited && a.AnswerLength == 0
		})).Return(nil)

		reg := prometheus.NewRegistry()
		metrics, err := NewMetrics(reg)
		require.NoError(t, err)

		svc := NewDocumentService(nil, nil, mAns, Options{Activity: mRepo, Metrics: metrics})
		_, err = svc.Ask(ctx, model.QARequest{Content: "c", Question: "q"})

		assert.ErrorIs(t, err, gemini.ErrRateLimited)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.asks.WithLabelValues(OutcomeRateLimited)))
		mRepo.AssertExpectations(t)
	})
}

func TestDocumentService_ListActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without repository", func(t *testing.T) {
		svc := NewDocumentService(nil, nil, nil, Options{})
		_, err := svc.ListActivity(ctx, 10, 0)
		assert.ErrorIs(t, err, ErrActivityDisabled)
		_, err = svc.ActivitySummary(ctx)
		assert.ErrorIs(t, err, ErrActivityDisabled)
	})

	t.Run("clamps paging", func(t *testing.T) {
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("List", ctx, repository.PageQuery{Limit: 100, Offset: 0}).
			Return(&repository.PageResult[model.Activity]{Items: []model.Activity{{ID: "a"}}, Total: 1}, nil)

		svc := NewDocumentService(nil, nil, nil, Options{Activity: mRepo})
		res, err := svc.ListActivity(ctx, 1000, -5)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("defaults limit", func(t *testing.T) {
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 20}).
			Return(nil, errors.New("db fail"))

		svc := NewDocumentService(nil, nil, nil, Options{Activity: mRepo})
		_, err := svc.ListActivity(ctx, 0, 20)
		assert.EqualError(t, err, "db fail")
	})

	t.Run("summary", func(t *testing.T) {
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("Summary", ctx).Return(&model.ActivitySummary{Uploads: 3, AsksFailed: 1}, nil)

		svc := NewDocumentService(nil, nil, nil, Options{Activity: mRepo})
		sum, err := svc.ActivitySummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, sum.Uploads)
	})
}
