package dashboard

import (
	"html/template"
	"net/http"

	"github.com/rpribau/cm-admin-sub000/internal/common"
)

var loginViewTemplate = template.Must(template.New("login").Parse(`<!doctype html>
<html>
<head><title>Iniciar sesión</title></head>
<body>
<form method="post" action="/api/v1/session">
<label>Correo <input type="email" name="email" required></label>
<label>Contraseña <input type="password" name="password" required></label>
<button type="submit">Entrar</button>
</form>
</body>
</html>
`))

var landingViewTemplate = template.Must(template.New("landing").Parse(`<!doctype html>
<html>
<head><title>Panel</title></head>
<body>
<h1>Hola, {{.Name}}</h1>
<p>Rol: {{.Role}}</p>
<p>Departamentos: {{range .Types}}{{.}} {{end}}</p>
</body>
</html>
`))

// handleLoginView serves the sign-in form. The route guard redirects
// authenticated visitors away before this handler runs.
func (a *httpApplication) handleLoginView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := loginViewTemplate.Execute(w, nil); err != nil {
		log := common.GetRequestLogger(r)
		log(common.LogLevelError, "failed to render login view: "+err.Error())
	}
}

func (a *httpApplication) handleLandingView(w http.ResponseWriter, r *http.Request) {
	session, ok := GetRequestSession(r)
	if !ok {
		http.Redirect(w, r, a.policy.LoginPath, http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := landingViewTemplate.Execute(w, session); err != nil {
		log := common.GetRequestLogger(r)
		log(common.LogLevelError, "failed to render landing view: "+err.Error())
	}
}
