package cli

const usageTemplate = `
QRBox Client

Usage:
  qrbox [OPTIONS] COMMAND

Options:
  --version          Show version information
  --db PATH          Path to local database (default: qrbox-client.db)
  --decode-url URL   QR decode API endpoint
  --encode-url URL   QR encode API endpoint

Commands:
  decode <file>              Decode a QR code from an image file
  scan <dir>                 Watch a directory for frames and scan continuously
  generate <link|text|email|wifi|data>
                             Generate a QR code image
  history scans              List scanned QR codes
  history generations        List generated QR codes
  history delete <id>        Delete a history entry
  history clear <scans|generations>
                             Clear a history list
  version                    Show version information

Examples:
  qrbox decode photo.png
  qrbox scan ./frames
  qrbox generate link
  qrbox generate wifi --size 500 --out wifi.png
  qrbox history scans
  qrbox history clear generations
`

const scanListTemplate = `
=== Scan History ===

{{- if eq (len .) 0 }}
No scans yet.

Use 'qrbox decode <file>' or 'qrbox scan <dir>' to capture your first code.

{{ else }}
Found {{len .}} scan(s):

{{- range . }}
- {{ .Data }}
   ID:   {{ .ID }}
   Type: {{ .Type }}
   Time: {{ .Timestamp.Format "2006-01-02 15:04:05" }}

{{- end }}
{{- end }}
`

const genListTemplate = `
=== Generator History ===

{{- if eq (len .) 0 }}
No generated codes yet.

Use 'qrbox generate <kind>' to create your first code.

{{ else }}
Found {{len .}} generated code(s):

{{- range . }}
- {{ .Data }}
   ID:   {{ .ID }}
   Kind: {{ .Type }}
   Size: {{ .Size }}px
   URL:  {{ .QRURL }}
   Time: {{ .Timestamp.Format "2006-01-02 15:04:05" }}

{{- end }}
{{- end }}
`

const decodeResultTemplate = `
=== Decoded QR Code ===

Type: {{ .Type }}
Data:
---
{{ .Data }}
---
`
