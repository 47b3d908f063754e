package handler

import (
	"github.com/gofiber/fiber/v2"

	"docqa/internal/model"
	"docqa/internal/service"
	"docqa/internal/validation"
)

// Upload godoc
// @Summary Upload a document and extract its text
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF, XLSX or XLS file (max 10MB)"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /upload [post]
func Upload(svc service.DocumentService, env Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return env.writeError(c, fiber.StatusBadRequest, validation.CodeFileRequired,
				"No file uploaded", "Please select a file to upload", nil)
		}

		ct := fh.Header.Get("Content-Type")
		if _, err := validation.ValidateUpload(ct, fh.Size, env.MaxUploadBytes); err != nil {
			return env.writeServiceError(c, "Invalid file", err)
		}

		f, err := fh.Open()
		if err != nil {
			return env.writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR",
				"Failed to process file", "cannot open uploaded file", err)
		}
		defer f.Close()

		out, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return env.writeServiceError(c, "Failed to process file", err)
		}

		return c.JSON(UploadResponse{
			Success: true,
			Content: out.Text,
			Metadata: UploadMetadata{
				OriginalName:  out.SourceName,
				MimeType:      string(out.MediaType),
				Size:          out.Size,
				ContentLength: len([]rune(out.Text)),
			},
		})
	}
}

// Ask godoc
// @Summary Ask a question about extracted document content
// @Tags documents
// @Accept json
// @Produce json
// @Param request body model.QARequest true "content and question"
// @Success 200 {object} AskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ask [post]
func Ask(svc service.DocumentService, env Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.QARequest
		if err := c.BodyParser(&req); err != nil {
			return env.writeError(c, fiber.StatusBadRequest, validation.CodeInvalidJSONBody,
				"Invalid request body", "Request body must be JSON with content and question", err)
		}

		if err := validation.ValidateQuestion(req); err != nil {
			return env.writeServiceError(c, "Invalid question", err)
		}

		resp, err := svc.Ask(c.UserContext(), req)
		if err != nil {
			return env.writeServiceError(c, "Failed to generate response", err)
		}

		return c.JSON(AskResponse{
			Success: true,
			Answer:  resp.Answer,
			Metadata: AskMetadata{
				QuestionLength: resp.QuestionLength,
				ResponseLength: resp.ResponseLength,
				Timestamp:      timestamp(resp.Timestamp),
			},
		})
	}
}
