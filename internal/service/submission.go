package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"caseapi/internal/audit"
	"caseapi/internal/clock"
	"caseapi/internal/config"
	"caseapi/internal/mailer"
	"caseapi/internal/model"
	"caseapi/internal/render"
	"caseapi/internal/validation"
)

// DocumentFilename is the name of the rendered case document inside the
// delivered bundle. It is always the first attachment.
const DocumentFilename = "case-summary.pdf"

// ErrRenderFailed wraps document renderer errors that are not recoverable by
// the font fallback.
var ErrRenderFailed = errors.New("case document rendering failed")

// OutcomeAccepted is the audit/metric tag for a delivered submission.
const OutcomeAccepted = "accepted"

// Receipt confirms a delivered submission.
type Receipt struct {
	SentAt          time.Time `json:"sent_at"`
	AttachmentCount int       `json:"attachment_count"`
}

// SubmissionService runs the case pipeline for one request:
// validate -> render document -> render summary -> deliver.
type SubmissionService interface {
	// Submit processes one submission end to end. Validation failures come
	// back as *validation.Failure, delivery failures as
	// *mailer.DeliveryError; both are recoverable with errors.As.
	Submit(ctx context.Context, fields map[string]string, files []model.CaseFile) (*Receipt, error)
}

// submissionService is the concrete pipeline. Stateless across requests.
type submissionService struct {
	mail     mailer.Mailer
	pdf      *render.PDF
	summary  render.Summary
	audits   audit.Recorder
	clock    clock.Clock
	mailCfg  config.MailConfig
	outcomes *prometheus.CounterVec
}

// NewSubmissionService constructs the pipeline and registers its outcome
// counter with the given registerer.
func NewSubmissionService(
	mailCfg config.MailConfig,
	mail mailer.Mailer,
	pdf *render.PDF,
	audits audit.Recorder,
	clk clock.Clock,
	reg prometheus.Registerer,
) (SubmissionService, error) {
	outcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "case_submissions_total",
			Help: "Total number of case submissions by outcome.",
		},
		[]string{"outcome"},
	)
	if err := reg.Register(outcomes); err != nil {
		return nil, err
	}
	return &submissionService{
		mail:     mail,
		pdf:      pdf,
		audits:   audits,
		clock:    clk,
		mailCfg:  mailCfg,
		outcomes: outcomes,
	}, nil
}

func (s *submissionService) Submit(ctx context.Context, fields map[string]string, files []model.CaseFile) (*Receipt, error) {
	rec, fail := validation.Validate(fields, files, s.clock.Now())
	if fail != nil {
		s.record(ctx, string(fail.Reason), fail.Detail(), len(files))
		return nil, fail
	}

	doc, err := s.pdf.Render(ctx, rec)
	if err != nil {
		s.record(ctx, "RENDERING_FAILED", err.Error(), len(files))
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	body := s.summary.Render(rec)

	// Bundle order is part of the contract: document first, then uploads
	// under their original names.
	atts := make([]mailer.Attachment, 0, len(rec.Files)+1)
	atts = append(atts, mailer.Attachment{
		Filename:    DocumentFilename,
		ContentType: "application/pdf",
		Content:     doc,
	})
	for _, f := range rec.Files {
		atts = append(atts, mailer.Attachment{
			Filename:    f.Name,
			ContentType: f.ContentType,
			Content:     f.Content,
		})
	}

	msg := mailer.Message{
		To:          s.mailCfg.Recipient,
		Subject:     s.mailCfg.Subject,
		HTMLBody:    body,
		Attachments: atts,
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		s.record(ctx, "DELIVERY_FAILED", err.Error(), len(files))
		return nil, err
	}

	s.record(ctx, OutcomeAccepted, "", len(files))
	return &Receipt{SentAt: s.clock.Now(), AttachmentCount: len(atts)}, nil
}

// record updates the outcome counter and the audit log. Audit trouble is
// logged and swallowed; it must never fail a submission.
func (s *submissionService) record(ctx context.Context, outcome, detail string, fileCount int) {
	s.outcomes.WithLabelValues(outcome).Inc()
	e := audit.Entry{
		RequestID: audit.RequestIDFrom(ctx),
		Outcome:   outcome,
		Detail:    detail,
		FileCount: fileCount,
		CreatedAt: s.clock.Now(),
	}
	if err := s.audits.Record(ctx, e); err != nil {
		log.Printf("audit record failed: %v", err)
	}
}
