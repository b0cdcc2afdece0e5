package model

// CaseFile is a single uploaded attachment as handed over by the upload
// boundary. Content is fully buffered; size/count ceilings are enforced
// before a CaseFile is ever constructed.
type CaseFile struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
}

// Record is a case submission that passed validation. Fields holds the
// trimmed form values; Files is the attachment list (may be empty when
// FileLink is set instead). A Record lives for one request only and is
// never persisted.
type Record struct {
	Fields   map[string]string
	Files    []CaseFile
	FileLink string
}

// Value returns the trimmed value for a field key and whether it is present
// and non-empty.
func (r *Record) Value(key string) (string, bool) {
	v, ok := r.Fields[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Empty reports whether the record carries no field values at all.
func (r *Record) Empty() bool {
	return len(r.Fields) == 0
}
