package handler

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"caseapi/internal/config"
	"caseapi/internal/mailer"
	"caseapi/internal/model"
	"caseapi/internal/service"
	"caseapi/internal/validation"
)

// filesField is the multipart field name carrying the attachments.
const filesField = "files"

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin; everything case-specific lives in the service.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.SubmissionService, upload config.UploadConfig) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Post("/cases", SubmitCase(svc, upload.MaxFiles))
}

// HealthCheck reports readiness. The audit database is optional; without it
// only the process itself is checked.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// SubmitCase accepts a multipart case submission: text fields become the
// field map (first value wins), files are read from the "files" field in
// order. The handler enforces the upload count ceiling and maps pipeline
// outcomes to response codes; it holds no case logic of its own.
func SubmitCase(svc service.SubmissionService, maxFiles int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mf, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FORM", "multipart form data is required")
		}

		fields := make(map[string]string, len(mf.Value))
		for k, vs := range mf.Value {
			if len(vs) > 0 {
				fields[k] = vs[0]
			}
		}

		headers := mf.File[filesField]
		if maxFiles > 0 && len(headers) > maxFiles {
			return writeError(c, fiber.StatusBadRequest, "TOO_MANY_FILES", "too many files uploaded")
		}

		files := make([]model.CaseFile, 0, len(headers))
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			content, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read uploaded file")
			}

			ct := fh.Header.Get("Content-Type")
			if ct == "" {
				ct = "application/octet-stream"
			}
			files = append(files, model.CaseFile{
				Name:        fh.Filename,
				ContentType: ct,
				Content:     content,
			})
		}

		receipt, err := svc.Submit(c.UserContext(), fields, files)
		if err != nil {
			var vf *validation.Failure
			if errors.As(err, &vf) {
				return writeFailure(c, fiber.StatusBadRequest, string(vf.Reason), vf.Detail())
			}
			var de *mailer.DeliveryError
			if errors.As(err, &de) {
				if de.Kind == mailer.KindAuth {
					// Misconfigured credentials, not the caller's fault.
					return writeFailure(c, fiber.StatusInternalServerError, "DELIVERY_FAILED", "mail transport rejected authentication")
				}
				return writeFailure(c, fiber.StatusBadGateway, "DELIVERY_FAILED", "delivery failed, please try again later")
			}
			if errors.Is(err, service.ErrRenderFailed) {
				return writeFailure(c, fiber.StatusInternalServerError, "RENDERING_FAILED", "could not generate the case document")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":          true,
			"sent_at":          receipt.SentAt,
			"attachment_count": receipt.AttachmentCount,
			"request_id":       requestIDFromCtx(c),
		})
	}
}
