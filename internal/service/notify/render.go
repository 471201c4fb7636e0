package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"slices"
	"strings"

	"github.com/golang-sql/civil"

	"github.com/safetyplan/actionplan/internal/domain"
)

const (
	noOperatingUnit = "(no operating unit)"
	notApplicable   = "N/A"
)

// RenderContext carries the caller-supplied values embedded in a message.
type RenderContext struct {
	Today  civil.Date
	AppURL string
}

// Renderer turns a batch into an HTML message. It holds no mutable state.
type Renderer struct {
	subjectPrefix string
	tmpl          *template.Template
}

// NewRenderer creates a Renderer whose subjects start with subjectPrefix.
func NewRenderer(subjectPrefix string) *Renderer {
	return &Renderer{
		subjectPrefix: strings.TrimSpace(subjectPrefix),
		tmpl:          bodyTemplate,
	}
}

// Subject returns the subject line for batch.
func (r *Renderer) Subject(batch Batch, today civil.Date) string {
	noun := "items"
	if len(batch.Items) == 1 {
		noun = "item"
	}
	subject := fmt.Sprintf("%d overdue %s as of %s", len(batch.Items), noun, domain.FormatDeadline(today))
	if r.subjectPrefix == "" {
		return subject
	}
	return r.subjectPrefix + ": " + subject
}

// Render produces the HTML body for batch. The output depends only on its
// arguments.
func (r *Renderer) Render(batch Batch, rc RenderContext) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, buildView(batch, rc)); err != nil {
		return "", fmt.Errorf("render batch for %q: %w", batch.Key.Responsible, err)
	}
	return buf.String(), nil
}

type bodyView struct {
	Today    string
	AppURL   string
	Total    int
	Sections []sectionView
}

type sectionView struct {
	Unit  string
	Count int
	Rows  []rowView
}

type rowView struct {
	Description   string
	Responsible   string
	CoResponsible string
	Deadline      string
	DaysOverdue   int
	Status        string
}

// buildView partitions the batch by operating unit, sorted by unit name,
// with items lacking a unit in a trailing section.
func buildView(batch Batch, rc RenderContext) bodyView {
	index := make(map[string]int)
	var sections []sectionView

	for _, it := range batch.Items {
		unit := strings.TrimSpace(it.OperatingUnit)
		i, ok := index[unit]
		if !ok {
			i = len(sections)
			index[unit] = i
			sections = append(sections, sectionView{Unit: unit})
		}

		row := rowView{
			Description:   it.Description,
			Responsible:   strings.TrimSpace(it.ResponsibleEmail),
			CoResponsible: strings.TrimSpace(it.CoResponsibleEmail),
			Status:        it.Status.Label(),
		}
		if row.CoResponsible == "" {
			row.CoResponsible = notApplicable
		}
		if it.InitialDeadline != nil {
			row.Deadline = domain.FormatDeadline(*it.InitialDeadline)
			row.DaysOverdue = rc.Today.DaysSince(*it.InitialDeadline)
		}

		sections[i].Rows = append(sections[i].Rows, row)
		sections[i].Count++
	}

	slices.SortStableFunc(sections, func(a, b sectionView) int {
		switch {
		case a.Unit == b.Unit:
			return 0
		case a.Unit == "":
			return 1
		case b.Unit == "":
			return -1
		}
		return strings.Compare(domain.FoldText(a.Unit), domain.FoldText(b.Unit))
	})
	for i := range sections {
		if sections[i].Unit == "" {
			sections[i].Unit = noOperatingUnit
		}
	}

	return bodyView{
		Today:    domain.FormatDeadline(rc.Today),
		AppURL:   strings.TrimSpace(rc.AppURL),
		Total:    len(batch.Items),
		Sections: sections,
	}
}

var bodyTemplate = template.Must(template.New("overdue").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
<p>Hello,</p>
<p>As of {{.Today}} there {{if eq .Total 1}}is 1 overdue blocking action{{else}}are {{.Total}} overdue blocking actions{{end}} assigned to you.</p>
{{range .Sections}}
<h3>{{.Unit}} ({{.Count}} overdue)</h3>
<table cellpadding="6" cellspacing="0" border="1" style="border-collapse: collapse;">
<tr><th>Action</th><th>Responsible</th><th>Co-responsible</th><th>Deadline</th><th>Days overdue</th><th>Status</th></tr>
{{range .Rows}}<tr><td>{{.Description}}</td><td>{{.Responsible}}</td><td>{{.CoResponsible}}</td><td>{{.Deadline}}</td><td>{{.DaysOverdue}}</td><td>{{.Status}}</td></tr>
{{end}}</table>
{{end}}
{{if .AppURL}}<p>Update the action plan at <a href="{{.AppURL}}">{{.AppURL}}</a>.</p>{{end}}
<p>This is an automated reminder.</p>
</body>
</html>
`))
