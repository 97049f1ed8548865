package cli

const bookTemplate = `
=== Book Details ===

ID:          {{.ID}}
Title:       {{.Title}}
Price:       {{printf "%.2f" .Price}}
{{- if .Image }}
Image:       {{.Image}}
{{- end}}
{{- if .Description }}

{{.Description}}
{{- end}}
`

const booksListTemplate = `
=== Books ===

{{- if eq (len .) 0 }}
No books found.

Use 'bookkeeper add' to add the first book.

{{ else }}
Found {{len .}} book(s):

{{- range . }}
- {{ .Title }}
   ID:    {{ .ID }}
   Price: {{ printf "%.2f" .Price }}
   {{- if .Description }}
   About: {{ if gt (len .Description) 50 }}{{ printf "%.50s..." .Description }}{{ else }}{{ .Description }}{{ end }}
   {{- end }}

{{- end }}
Use 'bookkeeper get <id>' to view full details.
{{- end }}
`

const syncResultTemplate = `
=== Synchronization ===

Pass:               {{.PassID}}
Pushed to server:   {{.Pushed}}
Pulled from server: {{.Pulled}}
Updated on server:  {{.Updated}}
{{- if .Failed }}
Failed:             {{.Failed}}
{{- end}}
{{- if .Skipped }}
Skipped (dup title): {{.Skipped}}
{{- end}}
Books after sync:   {{len .Books}}
`
