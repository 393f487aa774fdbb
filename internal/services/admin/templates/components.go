package templates

import (
	"net/url"
	"strings"
)

// PageHeading holds header metadata for pages.
type PageHeading struct {
	// Title is the page heading.
	Title string
	// Subtitle renders below the heading when set.
	Subtitle string
	// Breadcrumbs renders a path trail for the page.
	Breadcrumbs []Breadcrumb
	// ActionURL renders a CTA button when set.
	ActionURL string
	// ActionLabel is the CTA button label.
	ActionLabel string
	// Badges render next to the title.
	Badges []BadgeView
}

// Breadcrumb represents a single breadcrumb item.
type Breadcrumb struct {
	// Label is the visible label.
	Label string
	// URL is the optional navigation target.
	URL string
}

// BadgeView is a colored label for statuses and categories.
type BadgeView struct {
	Label   string
	Variant string
	Icon    string
}

// Badge variants.
const (
	VariantDefault     = "default"
	VariantSecondary   = "secondary"
	VariantDestructive = "destructive"
	VariantSuccess     = "success"
	VariantWarning     = "warning"
	VariantOutline     = "outline"
)

// AlertView is a dismissible notice shown above page content.
type AlertView struct {
	// Kind is one of info, success, error.
	Kind    string
	Message string
	// Detail is secondary text such as the API's own message.
	Detail string
}

// Alert kinds.
const (
	AlertInfo    = "info"
	AlertSuccess = "success"
	AlertError   = "error"
)

// AppendQueryParam appends a single query parameter to a URL.
func AppendQueryParam(baseURL string, key string, value string) string {
	encodedKey := url.QueryEscape(key)
	encodedValue := url.QueryEscape(value)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + encodedKey + "=" + encodedValue
	}
	return baseURL + "?" + encodedKey + "=" + encodedValue
}

// BadgeClass maps a badge variant to its CSS classes.
func BadgeClass(variant string) string {
	switch variant {
	case VariantSecondary:
		return "badge badge-neutral"
	case VariantDestructive:
		return "badge badge-error"
	case VariantSuccess:
		return "badge badge-success"
	case VariantWarning:
		return "badge badge-warning"
	case VariantOutline:
		return "badge badge-outline"
	default:
		return "badge badge-primary"
	}
}

// alertClass maps an alert kind to its CSS classes.
func alertClass(kind string) string {
	switch kind {
	case AlertSuccess:
		return "alert alert-success"
	case AlertError:
		return "alert alert-error"
	default:
		return "alert alert-info"
	}
}

// alertDetail returns the detail line, or empty when it repeats the message.
func alertDetail(view AlertView) string {
	detail := strings.TrimSpace(view.Detail)
	if detail == view.Message {
		return ""
	}
	return detail
}

func hasAlert(view AlertView) bool {
	return strings.TrimSpace(view.Message) != ""
}
