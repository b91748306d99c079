package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const TemplateWelcome = "welcome"

const welcomeHTML = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{.Heading}}</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background-color: #f8f9fa; border-radius: 8px; padding: 30px; margin-bottom: 20px;">
		<h1 style="color: #2c3e50; margin-top: 0;">{{.Heading}}</h1>
		<p style="font-size: 16px;">{{.Greeting}} <strong>{{.Name}}</strong>,</p>
		<p style="font-size: 16px;">{{.WelcomeMessage}}</p>
		<p style="font-size: 16px;">{{.Description}}</p>
	</div>
	<div style="background-color: #ffffff; padding: 20px; border-radius: 8px; border: 1px solid #e9ecef;">
		<h2 style="color: #2c3e50; font-size: 18px;">{{.GettingStarted}}</h2>
		<ul style="font-size: 15px;">
		{{- range .Steps}}
			<li>{{.}}</li>
		{{- end}}
		</ul>
	</div>
	<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e9ecef; font-size: 14px; color: #6c757d;">
		<p>{{.Help}}</p>
		<p style="margin-top: 20px;">{{.Closing}}<br><strong>{{.Signature}}</strong></p>
	</div>
</body>
</html>`

// WelcomeData feeds the welcome template. Values are escaped on render.
type WelcomeData struct {
	Heading        string
	Greeting       string
	Name           string
	WelcomeMessage string
	Description    string
	GettingStarted string
	Steps          []string
	Help           string
	Closing        string
	Signature      string
}

// TemplateManager keeps parsed HTML templates by name.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager with the built-in templates loaded.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	if err := tm.AddTemplate(TemplateWelcome, welcomeHTML); err != nil {
		panic(err)
	}
	return tm
}

func (tm *TemplateManager) Render(name string, data any) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[name]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name, text string) error {
	tpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
