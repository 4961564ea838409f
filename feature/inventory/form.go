package inventory

import (
	"bytes"
	"html/template"
)

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Stock Sync</title>
</head>
<body>
<h1>Inventory reconciliation</h1>
<form method="post" action="/{{if .APIKey}}?api_key={{.APIKey}}{{end}}" enctype="multipart/form-data">
  <p><label>Official store spreadsheet <input type="file" name="file1" accept=".xlsx" required></label></p>
  <p><label>Vendor spreadsheet <input type="file" name="file2" accept=".xlsx" required></label></p>
  <p><label>Vendor
    <select name="vendor_selection">
    {{range .Vendors}}<option value="{{.Vendor}}">{{.Vendor}}</option>
    {{end}}</select>
  </label></p>
  <p><button type="submit">Reconcile</button></p>
</form>
</body>
</html>
`))

type formData struct {
	Vendors []Vendor
	APIKey  string
}

// renderForm renders the upload form. apiKey is echoed into the form
// action so a browser that authenticated through the query string can post.
func renderForm(apiKey string) ([]byte, error) {
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, formData{Vendors: Vendors, APIKey: apiKey}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
