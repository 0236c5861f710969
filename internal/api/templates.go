package api

// Template is the closed set of exhibit layouts. The zero value is the
// minimalist layout, which is also the fallback for unknown or absent
// template names.
type Template int

const (
	TemplateMinimalist Template = iota
	TemplateTimeline
	TemplateGallery
)

func TemplateFromString(name string) Template {
	switch name {
	case "timeline":
		return TemplateTimeline
	case "gallery":
		return TemplateGallery
	default:
		return TemplateMinimalist
	}
}

// TemplateFromDocument reads the "template" field of a label document.
func TemplateFromDocument(doc map[string]any) Template {
	name, _ := doc["template"].(string)
	return TemplateFromString(name)
}

// File names the HTML layout rendered for this template.
func (t Template) File() string {
	switch t {
	case TemplateTimeline:
		return "timeline.html"
	case TemplateGallery:
		return "gallery.html"
	default:
		return "minimalist.html"
	}
}

func (t Template) String() string {
	switch t {
	case TemplateTimeline:
		return "timeline"
	case TemplateGallery:
		return "gallery"
	default:
		return "minimalist"
	}
}
