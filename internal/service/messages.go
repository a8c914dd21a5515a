package service

import (
	"bytes"
	"text/template"

	"github.com/dev1-one/svitloe/internal/schedule"
)

//nolint:gochecknoglobals // it's template
var changesTemplate = template.Must(template.New("changes").Parse(`Оновлення графіка відключень:
{{range .}}
Група {{.ID}}{{if .Removed}} — відключення скасовано (було: {{.Old}}){{else if .Added}} — заплановано відключення: {{.New}} ({{.Date}}){{else}} — графік змінено: {{.New}} ({{.Date}}){{if .Old}}, було: {{.Old}}{{end}}{{end}}
{{end}}`))

type changeView struct {
	ID      string
	Old     string
	New     string
	Date    string
	Added   bool
	Removed bool
}

// renderChanges builds a human-readable summary of a schedule diff. Empty
// future-only schedules render as "—" so a cleared schedule is still visible.
func renderChanges(changes []schedule.Change) (string, error) {
	views := make([]changeView, 0, len(changes))
	for _, c := range changes {
		v := changeView{
			ID:      c.ID,
			Added:   c.OldSchedule == nil,
			Removed: c.NewSchedule == nil,
			Date:    c.NewDate,
		}
		if c.OldSchedule != nil {
			v.Old = emptyDash(*c.OldSchedule)
		}
		if c.NewSchedule != nil {
			v.New = emptyDash(*c.NewSchedule)
		}
		if v.Removed {
			v.Date = c.OldDate
		}
		views = append(views, v)
	}

	var buf bytes.Buffer
	if err := changesTemplate.Execute(&buf, views); err != nil {
		return "", err //nolint:wrapcheck // template errors are self-descriptive
	}

	return buf.String(), nil
}

func emptyDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
