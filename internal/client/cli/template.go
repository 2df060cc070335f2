package cli

import (
	"strings"
	"text/template"
	"time"

	"github.com/iudanet/trackkeeper/internal/models"
)

const statusTemplate = `=== Status ===

{{- if .Session }}
Status:   Authenticated
Username: {{.Session.Username}}
User ID:  {{.Session.UserID}}
Expires:  {{.Session.ExpiresAt.Format "2006-01-02 15:04:05"}}
{{- else }}
Status:   Not authenticated
{{- end }}
{{- if .Sync }}

Pending:  {{.Sync.PendingCount}} operation(s)
Syncing:  {{if .Sync.IsSyncing}}yes{{else}}no{{end}}
Failed:   {{.Failed}} operation(s)
{{- end }}
`

const failedTemplate = `{{range $i, $f := .}}
{{inc $i}}. {{$f.Kind}} {{$f.Collection}}/{{$f.RecordID}}
   ID:       {{$f.ID}}
   Failed:   {{$f.FailedAt.Format "2006-01-02 15:04:05"}}
   Attempts: {{$f.Attempts}}
   Error:    {{$f.Error}}
{{- end}}
`

// failedView строка вывода команды failed
type failedView struct {
	FailedAt   time.Time
	ID         string
	Kind       string
	Collection string
	RecordID   string
	Error      string
	Attempts   int
}

func newFailedViews(items []models.FailedOperation) []failedView {
	views := make([]failedView, 0, len(items))
	for _, f := range items {
		recordID, _ := f.Operation.RecordID()
		views = append(views, failedView{
			FailedAt:   f.FailedAt,
			ID:         f.ID,
			Kind:       string(f.Kind),
			Collection: f.Collection,
			RecordID:   recordID,
			Error:      f.ErrorMessage,
			Attempts:   f.RetryCount + 1,
		})
	}
	return views
}

var templates = template.Must(template.New("cli").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	Parse(`{{define "status"}}` + statusTemplate + `{{end}}{{define "failed"}}` + failedTemplate + `{{end}}`))

// render заполняет именованный шаблон
func render(name string, data any) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
