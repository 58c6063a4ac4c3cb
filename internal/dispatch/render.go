package dispatch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/givecircle/dispatch-api/internal/models"
)

// RenderedEmail is the final content of one email after substitution.
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// FallbackTemplate builds an email straight from the notification when no
// template row exists for its category.
func FallbackTemplate(notif models.Notification) models.EmailTemplate {
	return models.EmailTemplate{
		Category: notif.Category,
		Subject:  notif.Title,
		HTMLBody: "<p>" + notif.Message + "</p>",
		TextBody: notif.Message,
	}
}

// BuildVars assembles the substitution variables for one notification. The
// notification's metadata is applied first; donorName and appName are filled
// in only when the metadata did not already set them.
func BuildVars(notif models.Notification, profile models.Profile, appName string) map[string]string {
	vars := make(map[string]string)
	for key, value := range notif.MetadataMap() {
		vars[key] = formatValue(value)
	}

	if _, ok := vars["donorName"]; !ok {
		name := strings.TrimSpace(profile.DisplayName)
		if name == "" {
			name = "Donor"
		}
		vars["donorName"] = name
	}
	if _, ok := vars["appName"]; !ok {
		vars["appName"] = appName
	}

	return vars
}

// RenderTemplate replaces {{key}} placeholders in the subject and both
// bodies. Each field is scanned exactly once, so replacement values are
// never re-expanded. Placeholders without a matching variable stay as
// written.
func RenderTemplate(tmpl models.EmailTemplate, vars map[string]string) RenderedEmail {
	return RenderedEmail{
		Subject: substitute(tmpl.Subject, vars),
		HTML:    substitute(tmpl.HTMLBody, vars),
		Text:    substitute(tmpl.TextBody, vars),
	}
}

func substitute(s string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		key := match[2 : len(match)-2]
		if value, ok := vars[key]; ok {
			return value
		}
		return match
	})
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
