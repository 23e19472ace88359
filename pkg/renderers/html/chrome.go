package html

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassSlot ChromeClass = "projection-slot"
)

// DefaultSlotClass is applied to slot chrome wrappers when enabled.
const DefaultSlotClass = string(ClassSlot)

func wrapSlotChrome(selector, body string) string {
	label := selector
	if label == "" {
		label = "default"
	}
	return `<div class="` + DefaultSlotClass + `" data-slot="` + label + `">` + body + `</div>`
}
