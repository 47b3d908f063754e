package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"docqa/internal/config"
	"docqa/internal/extractor"
	"docqa/internal/gemini"
	"docqa/internal/logger"
	"docqa/internal/model"
	"docqa/internal/service"
	"docqa/internal/storage"
	"docqa/internal/validation"
)

// runner wires the same service the API uses around a throwaway scratch dir.
type runner struct {
	cfg     *config.AppConfig
	log     *zap.Logger
	svc     service.DocumentService
	scratch string
}

func newRunner(cfg *config.AppConfig, stderr io.Writer) (*runner, error) {
	scratch, err := os.MkdirTemp("", "docqa-cli-")
	if err != nil {
		return nil, err
	}
	store, err := storage.NewDisk(scratch)
	if err != nil {
		_ = os.RemoveAll(scratch)
		return nil, err
	}

	log := logger.NewWithWriter(stderr, cfg.Env).Named("cli")
	svc := service.NewDocumentService(
		store,
		extractor.New(),
		gemini.NewClient(cfg.Gemini, log),
		service.Options{MaxUploadBytes: cfg.Upload.MaxBytes, Logger: log},
	)
	return &runner{cfg: cfg, log: log, svc: svc, scratch: scratch}, nil
}

func (r *runner) close() {
	_ = r.log.Sync()
	_ = os.RemoveAll(r.scratch)
}

// extract runs one file through the upload path. The media type comes from
// the file extension.
func (r *runner) extract(ctx context.Context, path string) (*model.ExtractedContent, error) {
	mt := model.MediaTypeForExtension(filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if _, err := validation.ValidateUpload(string(mt), st.Size(), r.cfg.Upload.MaxBytes); err != nil {
		return nil, err
	}

	out, err := r.svc.Upload(ctx, f, filepath.Base(path), string(mt), st.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return out, nil
}
