package mailer

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
)

const welcomeText = `Hi {{.UserName}},

Your account has been created. You can sign in with your email address
whenever you are ready.

If you did not create this account, please contact support.
`

const welcomeHTML = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome, {{.UserName}}!</h2>
  <p>Your account has been created. You can sign in with your email address whenever you are ready.</p>
  <p style="color:#777;font-size:12px;">If you did not create this account, please contact support.</p>
</body>
</html>
`

var (
	welcomeTextTpl = texttpl.Must(texttpl.New("welcome_text").Parse(welcomeText))
	welcomeHTMLTpl = htmpl.Must(htmpl.New("welcome_html").Parse(welcomeHTML))
)

// Render produces subject, text and HTML bodies for a named template.
// Unknown template names are an error so the worker can dead-letter the job.
func Render(template string, data map[string]any) (subject, text, html string, err error) {
	switch template {
	case TemplateWelcome:
		var tb, hb bytes.Buffer
		if err = welcomeTextTpl.Execute(&tb, data); err != nil {
			return "", "", "", err
		}
		if err = welcomeHTMLTpl.Execute(&hb, data); err != nil {
			return "", "", "", err
		}
		return "Welcome aboard", tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("mailer: unknown template %q", template)
	}
}
