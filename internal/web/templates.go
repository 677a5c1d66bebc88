package web

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/aouyang1/go-exportcast/ingest"
	"github.com/aouyang1/go-exportcast/timedataset"
	"github.com/gofiber/fiber/v2"
)

// previewRows is the number of leading months shown after an upload
const previewRows = 5

type previewRow struct {
	Month string
	Value string
}

type indexData struct {
	Date    string
	Message string
	Failed  bool

	// set once a file has been read
	Filename     string
	Preview      []previewRow
	Observations int
	LastMonth    string
	MinDate      string
	Data         string // normalized csv resubmitted with the forecast step
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Coffee Export Forecast</title>
</head>
<body>
<h1>Coffee Export Forecast</h1>
{{if .Preview}}<h2>Historical Data</h2>
<table id="preview">
<tr><th>Month</th><th>Total</th></tr>
{{range .Preview}}<tr class="observation"><td>{{.Month}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
<p>Showing the first {{len .Preview}} of {{.Observations}} months from {{.Filename}}. The last month is {{.LastMonth}}, choose a date after it.</p>
{{else}}<p>Upload a spreadsheet with a month column and a monthly total column, then choose the month to forecast.</p>
{{end}}<form action="/forecast" method="post" enctype="multipart/form-data">
<p><label>Data file <input type="file" name="file" accept=".xlsx,.xlsm,.csv"></label></p>
{{if .Data}}<input type="hidden" name="filename" value="{{.Filename}}">
<textarea name="data" hidden>{{.Data}}</textarea>
{{end}}<p><label>Date <input type="date" name="date" value="{{.Date}}"{{if .MinDate}} min="{{.MinDate}}"{{end}}></label></p>
<p><button type="submit" formaction="/upload">Upload</button> <button type="submit">Forecast</button></p>
</form>
{{if .Message}}<p id="message"{{if .Failed}} class="error"{{end}}>{{.Message}}</p>{{end}}
</body>
</html>
`))

// previewData describes an uploaded dataset for the form. The date picker is bounded below
// by the last observed month.
func previewData(td *timedataset.TimeDataset, filename string, opt *ingest.Options) (indexData, error) {
	var buf strings.Builder
	if err := ingest.WriteCSV(&buf, td, opt); err != nil {
		return indexData{}, err
	}

	n := min(previewRows, td.Len())
	rows := make([]previewRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, previewRow{
			Month: td.T[i].Format(timedataset.MonthLayout),
			Value: fmt.Sprintf("%.2f", td.Y[i]),
		})
	}

	last := td.LastMonth()
	return indexData{
		Filename:     filename,
		Preview:      rows,
		Observations: td.Len(),
		LastMonth:    last.Format(timedataset.MonthLayout),
		MinDate:      last.Format(time.DateOnly),
		Data:         buf.String(),
	}, nil
}

func renderIndex(c *fiber.Ctx, status int, data indexData) error {
	c.Status(status)
	c.Type("html", "utf-8")
	return indexTemplate.Execute(c, data)
}
