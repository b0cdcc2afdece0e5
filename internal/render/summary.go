package render

import (
	"bytes"
	"html/template"

	"caseapi/internal/form"
	"caseapi/internal/model"
)

// summaryTmpl is the email body markup. It walks the same SectionContent
// rows as the PDF renderer, so both outputs always show the same fields in
// the same order.
var summaryTmpl = template.Must(template.New("summary").Parse(`<div style="font-family:Arial,sans-serif;max-width:640px">
<h2 style="margin-bottom:4px">New Medical Case Submission</h2>
{{- range .}}
<h3 style="margin:14px 0 4px;border-bottom:1px solid #ddd">{{.Title}}</h3>
{{- range .Lines}}
<p style="margin:2px 0"><strong>{{.Label}}:</strong> {{.Value}}</p>
{{- end}}
{{- end}}
<p style="margin-top:16px;color:#777">The full case summary is attached as a PDF document.</p>
</div>`))

// Summary renders the notification email body for a validated record. It
// never fails for a valid record and touches neither disk nor network.
type Summary struct{}

func (Summary) Render(rec *model.Record) string {
	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, form.SectionContent(rec)); err != nil {
		// Executing a parsed template over plain structs cannot realistically
		// fail; keep the contract anyway.
		return "<p>New medical case submission received.</p>"
	}
	return buf.String()
}
