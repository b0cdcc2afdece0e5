package validation

import (
	"fmt"
	"strings"
	"time"

	"caseapi/internal/form"
	"caseapi/internal/model"
)

// Reason tags a validation failure so callers can branch on it without ever
// matching message strings.
type Reason string

const (
	ReasonMissingFields     Reason = "MISSING_FIELDS"
	ReasonInvalidDate       Reason = "INVALID_DATE"
	ReasonMissingAttachment Reason = "MISSING_ATTACHMENT"
	ReasonInvalidFileType   Reason = "INVALID_FILE_TYPE"
)

// DateLayout is the wire format for calendar dates (HTML date input).
const DateLayout = "2006-01-02"

// allowedTypes is the attachment MIME allow-list.
var allowedTypes = map[string]bool{
	"application/octet-stream": true,
	"application/dicom":        true,
	"application/pdf":          true,
	"image/jpeg":               true,
	"image/png":                true,
}

// Failure describes why a submission was rejected. Exactly one of Labels,
// Field or Files is populated depending on Reason. Failure implements error
// so it can flow through the service layer and be recovered with errors.As.
type Failure struct {
	Reason Reason
	// Labels holds the display labels of every missing required field.
	Labels []string
	// Field names the offending date field.
	Field string
	// Files lists the original names of files outside the allow-list.
	Files []string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", f.Reason, f.Detail())
}

// Detail renders the caller-facing explanation for the failure.
func (f *Failure) Detail() string {
	switch f.Reason {
	case ReasonMissingFields:
		return "missing required fields: " + strings.Join(f.Labels, ", ")
	case ReasonInvalidDate:
		if f.Field == form.FieldBirthDate {
			return form.Label(f.Field) + " must be a valid date in the past"
		}
		return form.Label(f.Field) + " must be a valid date in the future"
	case ReasonMissingAttachment:
		return "at least one file or a file link is required"
	case ReasonInvalidFileType:
		return "unsupported file type: " + strings.Join(f.Files, ", ")
	default:
		return string(f.Reason)
	}
}

// Validate checks a raw field map and attachment list against the case
// submission rules. Checks run in a fixed order and the first failing check
// is returned; there is no partial record. The function is pure: today is
// supplied by the caller and the input map is copied (trimmed) before use.
func Validate(fields map[string]string, files []model.CaseFile, today time.Time) (*model.Record, *Failure) {
	trimmed := make(map[string]string, len(fields))
	for k, v := range fields {
		trimmed[k] = strings.TrimSpace(v)
	}

	var missing []string
	for _, key := range form.Required {
		if trimmed[key] == "" {
			missing = append(missing, form.Label(key))
		}
	}
	if len(missing) > 0 {
		return nil, &Failure{Reason: ReasonMissingFields, Labels: missing}
	}

	day := truncateToDay(today)
	if birth, err := time.Parse(DateLayout, trimmed[form.FieldBirthDate]); err != nil || !birth.Before(day) {
		return nil, &Failure{Reason: ReasonInvalidDate, Field: form.FieldBirthDate}
	}
	if surgery, err := time.Parse(DateLayout, trimmed[form.FieldSurgeryDate]); err != nil || !surgery.After(day) {
		return nil, &Failure{Reason: ReasonInvalidDate, Field: form.FieldSurgeryDate}
	}

	link := trimmed[form.FieldFileLink]
	if len(files) == 0 && link == "" {
		return nil, &Failure{Reason: ReasonMissingAttachment}
	}

	var rejected []string
	for _, f := range files {
		if !allowedTypes[f.ContentType] {
			rejected = append(rejected, f.Name)
		}
	}
	if len(rejected) > 0 {
		return nil, &Failure{Reason: ReasonInvalidFileType, Files: rejected}
	}

	return &model.Record{Fields: trimmed, Files: files, FileLink: link}, nil
}

// truncateToDay zeroes the time-of-day so date comparisons are by calendar
// day in UTC, matching the parsed form dates.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
