package handler

import "html/template"

// Page bodies mirror the original "Test sessions" demo pages.
const pageTemplates = `
{{define "login"}}<html><body>
<h1>Test sessions</h1><h2>Login</h2><form method='POST' action='/'><label for='username'>Username: </label><input type='text' id='username' name='username'><br><br><label for='password'>Password: </label><input type='password' id='password' name='password'><br><br><input type='submit' value='Submit'></form></body></html>{{end}}

{{define "welcome"}}<html><body>
<h1>Test sessions</h1><h2>Hi, {{.Username}}!</h2><p>Successful login</p></body></html>{{end}}

{{define "account"}}<html><body>
<h1>Test sessions</h1><h2>Hi, {{.Username}}!</h2><p>This is your personal account</p></body></html>{{end}}

{{define "failed"}}<html><body>
<h1>Test sessions</h1><h2>Login failed</h2></body></html>{{end}}
`

func Templates() *template.Template {
	return template.Must(template.New("pages").Parse(pageTemplates))
}
