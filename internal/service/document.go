package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docqa/internal/extractor"
	"docqa/internal/model"
	"docqa/internal/prompt"
	"docqa/internal/repository"
	"docqa/internal/storage"
	"docqa/internal/validation"
)

var (
	ErrReaderNil        = errors.New("reader is nil")
	ErrActivityDisabled = errors.New("activity log is not configured")
)

// Answerer sends a prompt to the question-answering provider.
type Answerer interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// ActivityListResult is the service-level DTO for paginated ledger entries.
type ActivityListResult struct {
	Items []model.Activity `json:"data"`
	Total int              `json:"total"`
}

// DocumentService defines the upload and question-answering use cases.
type DocumentService interface {
	// Upload stages the file in scratch storage, extracts its text and
	// removes the staged copy on every exit path.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.ExtractedContent, error)

	// Ask validates req, builds the prompt and forwards it to the provider.
	Ask(ctx context.Context, req model.QARequest) (*model.QAResponse, error)

	// ListActivity returns ledger entries; ErrActivityDisabled without a database.
	ListActivity(ctx context.Context, limit, offset int) (*ActivityListResult, error)

	// ActivitySummary aggregates the ledger; ErrActivityDisabled without a database.
	ActivitySummary(ctx context.Context) (*model.ActivitySummary, error)
}

// Options carries optional collaborators. Zero values are valid.
type Options struct {
	MaxUploadBytes int64
	Activity       repository.ActivityRepository
	Metrics        *Metrics
	Logger         *zap.Logger
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store     storage.Storage
	extractor extractor.Extractor
	answerer  Answerer
	activity  repository.ActivityRepository
	metrics   *Metrics
	log       *zap.Logger
	maxBytes  int64
	now       func() time.Time
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, ex extractor.Extractor, answerer Answerer, opts Options) DocumentService {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	maxBytes := opts.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = validation.MaxUploadBytes
	}
	return &documentService{
		store:     store,
		extractor: ex,
		answerer:  answerer,
		activity:  opts.Activity,
		metrics:   opts.Metrics,
		log:       log.Named("service"),
		maxBytes:  maxBytes,
		now:       time.Now,
	}
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (out *model.ExtractedContent, err error) {
	start := s.now()
	mt := model.ParseMediaType(contentType)
	defer func() {
		contentLength := 0
		if out != nil {
			contentLength = utf8.RuneCountInString(out.Text)
		}
		s.finishUpload(ctx, mt, size, contentLength, err, start)
	}()

	if r == nil {
		return nil, ErrReaderNil
	}
	if mt == model.MediaTypeUnknown {
		return nil, extractor.ErrUnsupportedType
	}
	if size > s.maxBytes {
		return nil, validation.TooLarge(s.maxBytes)
	}

	key := path.Join("uploads", uuid.NewString()+strings.ToLower(filepath.Ext(originalFilename)))
	defer s.discard(ctx, key)

	if _, err := s.store.Put(ctx, key, io.LimitReader(r, s.maxBytes+1), storage.PutObjectOptions{
		Size:        size,
		ContentType: string(mt),
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	}); err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}

	data, err := s.readStaged(ctx, key)
	if err != nil {
		return nil, err
	}

	doc := model.UploadedDocument{
		Data:         data,
		MediaType:    mt,
		OriginalName: originalFilename,
		Size:         int64(len(data)),
	}
	text, err := s.extractor.Extract(doc.Data, doc.MediaType)
	if err != nil {
		return nil, err
	}

	return &model.ExtractedContent{
		Text:       text,
		SourceName: doc.OriginalName,
		MediaType:  doc.MediaType,
		Size:       doc.Size,
	}, nil
}

// readStaged loads a staged object, enforcing the size ceiling on the bytes
// actually received rather than the declared size.
func (s *documentService) readStaged(ctx context.Context, key string) ([]byte, error) {
	rc, _, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read staged upload: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read staged upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, validation.TooLarge(s.maxBytes)
	}
	return data, nil
}

// discard removes the staged object even when the request context is done.
func (s *documentService) discard(ctx context.Context, key string) {
	if err := s.store.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.log.Error("scratch cleanup failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *documentService) finishUpload(ctx context.Context, mt model.MediaType, size int64, contentLength int, err error, start time.Time) {
	elapsed := s.now().Sub(start)
	outcome := Outcome(err)
	s.metrics.observeExtraction(mt.MetricLabel(), outcome, elapsed)

	if err != nil {
		s.log.Warn("upload failed",
			zap.String("media_type", mt.MetricLabel()),
			zap.String("outcome", outcome),
			zap.Error(err),
		)
	} else {
		s.log.Info("upload processed",
			zap.String("media_type", mt.MetricLabel()),
			zap.Int64("size", size),
			zap.Int("content_length", contentLength),
			zap.Duration("elapsed", elapsed),
		)
	}

	s.record(ctx, &model.Activity{
		Kind:          model.ActivityUpload,
		MediaType:     mt.MetricLabel(),
		SizeBytes:     size,
		ContentLength: contentLength,
		Outcome:       outcome,
		DurationMS:    elapsed.Milliseconds(),
	})
}

func (s *documentService) Ask(ctx context.Context, req model.QARequest) (*model.QAResponse, error) {
	if err := validation.ValidateQuestion(req); err != nil {
		return nil, err
	}

	start := s.now()
	p := prompt.Build(req.Content, req.Question)

	// A dropped client must not abort the provider call; the client timeout bounds it.
	answer, err := s.answerer.Ask(context.WithoutCancel(ctx), p)
	elapsed := s.now().Sub(start)
	outcome := Outcome(err)
	s.metrics.observeAsk(outcome, elapsed)

	questionLength := utf8.RuneCountInString(req.Question)
	a := &model.Activity{
		Kind:           model.ActivityAsk,
		ContentLength:  utf8.RuneCountInString(req.Content),
		QuestionLength: questionLength,
		Outcome:        outcome,
		DurationMS:     elapsed.Milliseconds(),
	}
	if err != nil {
		s.log.Warn("question failed", zap.String("outcome", outcome), zap.Error(err))
		s.record(ctx, a)
		return nil, err
	}

	resp := &model.QAResponse{
		Answer:         answer,
		QuestionLength: questionLength,
		ResponseLength: utf8.RuneCountInString(answer),
		Timestamp:      s.now().UTC(),
	}
	a.AnswerLength = resp.ResponseLength
	s.log.Info("question answered",
		zap.Int("question_length", resp.QuestionLength),
		zap.Int("response_length", resp.ResponseLength),
		zap.Duration("elapsed", elapsed),
	)
	s.record(ctx, a)
	return resp, nil
}

// record writes a ledger entry. Ledger failures never fail the request.
func (s *documentService) record(ctx context.Context, a *model.Activity) {
	if s.activity == nil {
		return
	}
	a.ID = uuid.NewString()
	a.CreatedAt = s.now().UTC()
	if err := s.activity.Create(context.WithoutCancel(ctx), a); err != nil {
		s.log.Warn("activity record failed", zap.String("kind", string(a.Kind)), zap.Error(err))
	}
}

// ListActivity returns paginated ledger entries without exposing repository types.
func (s *documentService) ListActivity(ctx context.Context, limit, offset int) (*ActivityListResult, error) {
	if s.activity == nil {
		return nil, ErrActivityDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.activity.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ActivityListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) ActivitySummary(ctx context.Context) (*model.ActivitySummary, error) {
	if s.activity == nil {
		return nil, ErrActivityDisabled
	}
	return s.activity.Summary(ctx)
}
