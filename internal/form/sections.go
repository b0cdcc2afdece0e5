package form

import "caseapi/internal/model"

// Section groups field keys under a display title. The slice below is the
// single source of truth for what the case document and the notification
// email show; both renderers must traverse it through SectionContent so
// their output can never diverge.
type Section struct {
	Title  string
	Fields []string
}

// Sections is the fixed document layout, in render order.
var Sections = []Section{
	{Title: "Patient Information", Fields: []string{FieldPatientName, FieldBirthDate, FieldPatientGender}},
	{Title: "Doctor Information", Fields: []string{FieldDoctorName, FieldDoctorLicense, FieldDoctorPhone, FieldDoctorEmail}},
	{Title: "Clinic", Fields: []string{FieldClinicName, FieldClinicAddress}},
	{Title: "Implant & Surgery", Fields: []string{FieldImplantType, FieldImplantSite, FieldSurgeryDate}},
	{Title: "Additional Information", Fields: []string{FieldNotes, FieldFileLink}},
}

// Line is one rendered field: key, display label and the submitted value.
type Line struct {
	Key   string
	Label string
	Value string
}

// RenderedSection is a section title plus the lines actually present in a
// record. Sections with no present fields are dropped entirely.
type RenderedSection struct {
	Title string
	Lines []Line
}

// SectionContent resolves the section layout against a validated record:
// schema order is preserved, absent or blank fields are skipped, labels are
// derived with Label. This is the shared traversal both renderers consume.
func SectionContent(rec *model.Record) []RenderedSection {
	out := make([]RenderedSection, 0, len(Sections))
	for _, sec := range Sections {
		var lines []Line
		for _, key := range sec.Fields {
			v, ok := rec.Value(key)
			if !ok {
				continue
			}
			lines = append(lines, Line{Key: key, Label: Label(key), Value: v})
		}
		if len(lines) == 0 {
			continue
		}
		out = append(out, RenderedSection{Title: sec.Title, Lines: lines})
	}
	return out
}
