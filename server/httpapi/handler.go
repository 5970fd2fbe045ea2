package httpapi

import (
	"encoding/base64"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/kasuganosora/covidsample/pkg/api"
	"github.com/kasuganosora/covidsample/pkg/chart"
	"github.com/kasuganosora/covidsample/pkg/dataset"
	"github.com/kasuganosora/covidsample/pkg/export"
	"github.com/kasuganosora/covidsample/pkg/stats"
)

// pageData feeds the single UI template.
type pageData struct {
	DefaultPercent int
	Percent        int
	Error          string

	HasTable   bool
	SourceName string
	Builtin    bool

	Header      []string
	HeadRecords [][]string
	RowCount    int
	ColumnCount int

	TopAvailable bool
	Top          []stats.CountryTotal
	BarChart     template.URL

	Countries       []string
	SelectedCountry string
	TrendChart      template.URL
	TrendMessage    string
}

// handleIndex renders the page: the upload form alone, or the preview
// of the current table when one is loaded. The country selector
// re-renders via ?country= without reloading data.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.renderPage(w, http.StatusOK, r.URL.Query().Get("country"), "")
}

// handleLoad runs one load interaction: multipart file (optional) plus
// percentage. Failures render the single user-facing message and leave
// the previous table untouched.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Error: "method not allowed",
			Code:  http.StatusMethodNotAllowed,
		})
		return
	}

	if err := r.ParseMultipartForm(s.cfg.Sample.MaxUploadBytes); err != nil {
		s.renderPage(w, http.StatusBadRequest, "", "upload too large or malformed")
		return
	}

	percent := s.cfg.Sample.DefaultPercent
	if raw := r.FormValue("percent"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			percent = p
		}
	}

	var source *api.Source
	file, header, err := r.FormFile("datafile")
	switch {
	case err == nil:
		data, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			s.renderPage(w, http.StatusBadRequest, "", "failed to read upload")
			return
		}
		source = &api.Source{Name: header.Filename, Data: data}
	case errors.Is(err, http.ErrMissingFile):
		// No upload: the builtin sample is used whole.
		source = nil
	default:
		s.renderPage(w, http.StatusBadRequest, "", "failed to read upload")
		return
	}

	table, err := s.svc.Load(source, percent)
	if err != nil {
		s.renderPage(w, http.StatusOK, "", err.Error())
		return
	}

	name := ""
	if source != nil {
		name = source.Name
	}
	s.setCurrent(table, percent, name, source == nil)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDownload streams one of the three payloads for the current
// table.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	format := strings.TrimPrefix(r.URL.Path, "/download/")
	switch format {
	case "csv", "tsv", "xlsx":
	default:
		http.NotFound(w, r)
		return
	}

	table, percent, _, _ := s.getCurrent()
	if table == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: "no table loaded",
			Code:  http.StatusNotFound,
		})
		return
	}

	bundle, err := s.svc.Export(table, percent)
	if err != nil {
		s.logger.Error("export failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "export failed",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	var payload []byte
	switch format {
	case "csv":
		payload = bundle.CSV
	case "tsv":
		payload = bundle.TSV
	case "xlsx":
		payload = bundle.XLSX
	}

	w.Header().Set("Content-Type", export.MIMEType(format))
	w.Header().Set("Content-Disposition", `attachment; filename="`+bundle.FileName(format)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (s *Server) renderPage(w http.ResponseWriter, status int, country, errMessage string) {
	table, percent, sourceName, builtin := s.getCurrent()

	data := &pageData{
		DefaultPercent: s.cfg.Sample.DefaultPercent,
		Percent:        percent,
		Error:          errMessage,
	}

	if table != nil {
		data.HasTable = true
		data.SourceName = sourceName
		data.Builtin = builtin

		preview := s.svc.Preview(table)
		records := export.Records(dataset.NewTable(preview.Head))
		data.Header = records[0]
		data.HeadRecords = records[1:]
		data.RowCount = preview.RowCount
		data.ColumnCount = preview.ColumnCount
		data.Countries = preview.Countries

		if preview.TopAvailable && len(preview.Top) > 0 {
			data.TopAvailable = true
			data.Top = preview.Top
			if png, err := chart.TopCountriesBar(preview.Top); err == nil {
				data.BarChart = pngDataURL(png)
			} else {
				s.logger.Warn("bar chart unavailable: %v", err)
			}
		}

		if country == "" && len(preview.Countries) > 0 {
			country = preview.Countries[0]
		}
		data.SelectedCountry = country
		rows, err := stats.CountrySeries(table, country)
		if err != nil {
			data.TrendMessage = err.Error()
		} else if png, chartErr := chart.CountryTrend(rows, country); chartErr == nil {
			data.TrendChart = pngDataURL(png)
		} else {
			s.logger.Warn("trend chart unavailable: %v", chartErr)
			data.TrendMessage = "not enough data to plot this country"
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("template render failed: %v", err)
	}
}

func pngDataURL(png []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>COVID Data — Sample Only</title>
<style>
body { font-family: sans-serif; margin: 2em; max-width: 70em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
.error { color: #b00020; }
.muted { color: #666; }
img { max-width: 100%; }
</style>
</head>
<body>
<h1>COVID Data — Sample Only</h1>
<p>Upload CSV / TSV / XLS / XLSX or use a small built-in sample. Choose sample % and download CSV / TSV / Excel.</p>

{{if .Error}}<p class="error">{{.Error}}</p>{{end}}

<form method="post" action="/load" enctype="multipart/form-data">
<p><input type="file" name="datafile" accept=".csv,.tsv,.txt,.xls,.xlsx"></p>
<p>Sample percentage (%):
<input type="number" name="percent" min="1" max="50" value="{{if .HasTable}}{{.Percent}}{{else}}{{.DefaultPercent}}{{end}}"></p>
<p class="muted">Leave the file empty to use the tiny built-in sample.</p>
<p><button type="submit">Load sample</button></p>
</form>

{{if .HasTable}}
<h2>Sample preview (only the sampled rows)</h2>
{{if .Builtin}}<p class="muted">Built-in sample (sampling bypassed).</p>{{else}}<p class="muted">Uploaded: {{.SourceName}}</p>{{end}}
<p>Rows: {{.RowCount}} — Columns: {{.ColumnCount}}</p>
<table>
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
{{range .HeadRecords}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
</table>

<h2>Top countries in this sample (by cumulative cases)</h2>
{{if .TopAvailable}}
<table>
<tr><th>Country</th><th>Cumulative cases</th></tr>
{{range .Top}}<tr><td>{{.Country}}</td><td>{{.CumulativeCases}}</td></tr>{{end}}
</table>
{{if .BarChart}}<p><img src="{{.BarChart}}" alt="Top countries bar chart"></p>{{end}}
{{else}}
<p class="muted">Cumulative_cases column not found in sample.</p>
{{end}}

<h2>Time series for one country (sample)</h2>
{{if .Countries}}
<form method="get" action="/">
<select name="country" onchange="this.form.submit()">
{{$sel := .SelectedCountry}}{{range .Countries}}<option value="{{.}}"{{if eq . $sel}} selected{{end}}>{{.}}</option>{{end}}
</select>
<noscript><button type="submit">Show</button></noscript>
</form>
{{end}}
{{if .TrendChart}}<p><img src="{{.TrendChart}}" alt="Country trend chart"></p>{{end}}
{{if .TrendMessage}}<p class="muted">{{.TrendMessage}}</p>{{end}}

<h2>Download the sampled data</h2>
<p>
<a href="/download/csv">Download as CSV</a> ·
<a href="/download/tsv">Download as TSV</a> ·
<a href="/download/xlsx">Download as Excel (.xlsx)</a>
</p>
{{end}}
</body>
</html>
`))
