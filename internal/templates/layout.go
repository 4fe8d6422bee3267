package templates

import "html/template"

var funcs = template.FuncMap{
	"pageSizes":   pageSizes,
	"sortOptions": func() []sortOption { return sortOptions },
	"filterBar":   newFilterBar,
}

// root holds every named template; components look up the one they render.
var root = template.Must(template.New("root").Funcs(funcs).Parse(`
{{define "index"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Employee Roster</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link href="https://fonts.googleapis.com/css2?family=IBM+Plex+Mono:wght@400;500;600&family=IBM+Plex+Sans:wght@300;400;500;600&display=swap" rel="stylesheet">
<style>
  :root{--ink:#0d1117;--paper:#f5f0e8;--ledger:#e8e0cc;--accent:#c0392b;--accent2:#2c6e49;--muted:#6b5e4e;--rule:#b8a898;}
  *{box-sizing:border-box;}
  body{background:var(--paper);color:var(--ink);font-family:'IBM Plex Sans',sans-serif;min-height:100vh;margin:0;}
  .mono{font-family:'IBM Plex Mono',monospace;}
  .card{background:rgba(255,255,255,0.7);border:1px solid var(--ledger);border-left:4px solid var(--ink);}
  .field-label{font-family:'IBM Plex Mono',monospace;font-size:0.6rem;font-weight:600;letter-spacing:0.1em;text-transform:uppercase;color:var(--muted);display:block;margin-bottom:2px;}
  input,select{background:white;border:1px solid var(--rule);border-bottom:2px solid var(--ink);padding:6px 8px;font-family:'IBM Plex Mono',monospace;font-size:0.85rem;width:100%;outline:none;transition:border-color 0.15s;}
  input:focus,select:focus{border-bottom-color:var(--accent);}
  .btn{font-family:'IBM Plex Mono',monospace;font-weight:600;font-size:0.75rem;letter-spacing:0.08em;padding:7px 14px;border:2px solid var(--ink);cursor:pointer;transition:all 0.15s;text-transform:uppercase;background:white;}
  .btn:disabled{opacity:0.45;cursor:default;}
  .btn-primary{background:var(--ink);color:white;}
  .btn-primary:hover{background:var(--accent);border-color:var(--accent);}
  .btn-danger{color:var(--accent);border-color:var(--accent);}
  .btn-danger:hover{background:var(--accent);color:white;}
  .btn-success{background:var(--accent2);color:white;border-color:var(--accent2);}
  .section-header{font-family:'IBM Plex Mono',monospace;font-size:0.7rem;font-weight:600;letter-spacing:0.18em;text-transform:uppercase;color:var(--muted);border-bottom:1px solid var(--rule);padding-bottom:4px;margin-bottom:14px;}
  .toolbar{display:grid;grid-template-columns:2fr 1fr 1fr auto;gap:12px;align-items:end;margin-bottom:16px;}
  .filter-grid{display:grid;grid-template-columns:1fr 1fr 1fr auto auto;gap:10px;align-items:end;}
  .employee-card{padding:14px 18px;margin-bottom:8px;display:flex;justify-content:space-between;align-items:center;}
  .employee-card h3{font-family:'IBM Plex Mono',monospace;font-size:0.95rem;margin:0 0 4px;}
  .employee-card p{font-size:0.78rem;color:var(--muted);margin:1px 0;}
  .form-error{border:2px solid var(--accent);color:var(--accent);padding:8px 10px;font-size:0.8rem;margin-bottom:12px;}
  #pagination-controls{display:flex;gap:6px;flex-wrap:wrap;margin-top:12px;}
</style>
</head>
<body>
<div style="max-width:1000px;margin:0 auto;padding:32px 24px;">

<div style="display:flex;align-items:flex-start;justify-content:space-between;margin-bottom:24px;">
  <div>
    <h1 class="mono" style="font-size:1.6rem;font-weight:600;letter-spacing:-0.02em;margin:0;">Employee Roster</h1>
    <div style="font-size:0.85rem;color:var(--muted);margin-top:4px;">Search, filter, sort and edit the employee list.</div>
  </div>
  <div style="display:flex;gap:8px;">
    <a href="/employees/report.pdf" class="btn" style="text-decoration:none;color:var(--ink);">PDF REPORT</a>
    <button class="btn btn-primary" hx-get="/employees/new" hx-target="#workspace">+ ADD EMPLOYEE</button>
  </div>
</div>

<div class="card" style="padding:18px;margin-bottom:20px;">
  <div class="toolbar">
    <div>
      <label class="field-label" for="search-input">Search</label>
      <input id="search-input" type="search" name="search" value="{{.View.Search}}" placeholder="Name or email"
             hx-post="/view/search" hx-trigger="input changed, search" hx-target="#workspace">
    </div>
    <div>
      <label class="field-label" for="sort-select">Sort by</label>
      <select id="sort-select" name="sort" hx-post="/view/sort" hx-target="#workspace">
        {{range sortOptions}}<option value="{{.Value}}"{{if eq .Value $.View.Sort}} selected{{end}}>{{.Label}}</option>{{end}}
      </select>
    </div>
    <div>
      <label class="field-label" for="items-per-page">Per page</label>
      <select id="items-per-page" name="page_size" hx-post="/view/page-size" hx-target="#workspace">
        {{range pageSizes .View.PageSize}}<option value="{{.}}"{{if eq . $.View.PageSize}} selected{{end}}>{{.}}</option>{{end}}
      </select>
    </div>
    <div></div>
  </div>
  {{template "filter-bar" filterBar .View.Filters false}}
</div>

<div id="workspace">
{{template "workspace-body" .}}
</div>

</div>
<script>
  document.body.addEventListener("validationFailed", function (evt) { alert(evt.detail.value); });
</script>
</body>
</html>{{end}}

{{define "filter-bar"}}
<form id="filter-bar" class="filter-grid"{{if .OOB}} hx-swap-oob="true"{{end}} hx-post="/view/filters" hx-target="#workspace">
  <div>
    <label class="field-label" for="filter-name">First name contains</label>
    <input id="filter-name" name="filter_name" value="{{.Filters.Name}}">
  </div>
  <div>
    <label class="field-label" for="filter-department">Department contains</label>
    <input id="filter-department" name="filter_department" value="{{.Filters.Department}}">
  </div>
  <div>
    <label class="field-label" for="filter-role">Role contains</label>
    <input id="filter-role" name="filter_role" value="{{.Filters.Role}}">
  </div>
  <button id="apply-filter-btn" type="submit" class="btn btn-primary">APPLY</button>
  <button id="clear-filter-btn" type="button" class="btn" hx-delete="/view/filters" hx-target="#workspace">CLEAR</button>
</form>
{{end}}

{{define "workspace"}}{{template "workspace-body" .}}{{if .FiltersCleared}}{{template "filter-bar" filterBar .View.Filters true}}{{end}}{{end}}

{{define "workspace-body"}}
{{template "form-region" .Form}}
<div class="section-header">{{.Page.TotalItems}} employee(s)</div>
{{template "list-region" .Page.Items}}
{{template "pagination-region" .Page}}
{{end}}

{{define "list-region"}}
<div id="employee-list-container">
{{if not .}}
  <div class="mono" style="font-size:0.8rem;color:var(--muted);padding:16px;text-align:center;">No employees match.</div>
{{else}}{{range .}}
  <div class="card employee-card" data-id="{{.ID}}">
    <div>
      <h3>{{.FirstName}} {{.LastName}}</h3>
      <p><strong>Email:</strong> {{.Email}}</p>
      <p><strong>Department:</strong> {{.Department}}</p>
      <p><strong>Role:</strong> {{.Role}}</p>
    </div>
    <div style="display:flex;gap:6px;">
      <button class="btn edit-btn" data-id="{{.ID}}" hx-get="/employees/{{.ID}}/edit" hx-target="#workspace">EDIT</button>
      <button class="btn btn-danger delete-btn" data-id="{{.ID}}" hx-delete="/employees/{{.ID}}" hx-target="#workspace">DELETE</button>
    </div>
  </div>
{{end}}{{end}}
</div>
{{end}}

{{define "pagination-region"}}
<div id="pagination-controls">
{{$current := .Page}}{{range .PageNumbers}}
  <button class="btn"{{if eq . $current}} disabled{{else}} hx-post="/view/page/{{.}}" hx-target="#workspace"{{end}}>{{.}}</button>
{{end}}
</div>
{{end}}

{{define "form-region"}}
<div id="form-container" class="card" style="padding:20px;margin-bottom:20px;{{if not .Open}}display:none;{{end}}">
  <div id="form-title" class="section-header">{{.Title}}</div>
  {{if .Error}}<div class="form-error" role="alert">{{.Error}}</div>{{end}}
  <form id="employee-form" hx-post="/employees" hx-target="#workspace">
    <input type="hidden" id="employee-id" name="id" value="{{.Fields.ID}}">
    <div style="display:grid;grid-template-columns:1fr 1fr;gap:12px;">
      <div>
        <label class="field-label" for="first-name">First Name *</label>
        <input id="first-name" name="first_name" value="{{.Fields.FirstName}}" required>
      </div>
      <div>
        <label class="field-label" for="last-name">Last Name *</label>
        <input id="last-name" name="last_name" value="{{.Fields.LastName}}" required>
      </div>
      <div style="grid-column:1/-1;">
        <label class="field-label" for="email">Email *</label>
        <input id="email" type="email" name="email" value="{{.Fields.Email}}" required>
      </div>
      <div>
        <label class="field-label" for="department">Department *</label>
        <input id="department" name="department" value="{{.Fields.Department}}" required>
      </div>
      <div>
        <label class="field-label" for="role">Role *</label>
        <input id="role" name="role" value="{{.Fields.Role}}" required>
      </div>
    </div>
    <div style="margin-top:16px;display:flex;justify-content:flex-end;gap:8px;">
      <button id="cancel-btn" type="button" class="btn" hx-post="/employees/form/cancel" hx-target="#workspace">CANCEL</button>
      <button type="submit" class="btn btn-success">SAVE</button>
    </div>
  </form>
</div>
{{end}}
`))
