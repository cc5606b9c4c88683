// Package events holds the Bubble Tea messages the playground exchanges.
package events

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/uikit/pkg/page"
	"tableflip.dev/uikit/pkg/widget/button"
	"tableflip.dev/uikit/pkg/widget/checkbox"
	"tableflip.dev/uikit/pkg/widget/dropdown"
	"tableflip.dev/uikit/pkg/widget/label"
	"tableflip.dev/uikit/pkg/widget/spinner"
	"tableflip.dev/uikit/pkg/widget/textbox"
	"tableflip.dev/uikit/pkg/widget/tree"
)

// WidgetID identifies a mounted widget.
type WidgetID string

// WidgetEventMsg carries a public widget event into the program.
type WidgetEventMsg struct {
	Event page.Event
}

// Describe renders the event payload for logs.
func (m WidgetEventMsg) Describe() string {
	switch p := m.Event.Payload.(type) {
	case nil:
		return ""
	case button.Event:
		return fmt.Sprintf("state=%t", p.Button.State())
	case checkbox.Event:
		return fmt.Sprintf("checked=%t", p.Checked)
	case dropdown.Event:
		return fmt.Sprintf("value=%q opened=%t", p.Value, p.Opened)
	case label.Event:
		return fmt.Sprintf("caption=%q previous=%q", p.Caption, p.Previous)
	case spinner.Event:
		return "value=" + formatFloat(p.Value) + " previous=" + formatFloat(p.Previous)
	case textbox.Event:
		if p.Error != nil {
			return fmt.Sprintf("code=%d %s", p.Error.Code, p.Error.Msg)
		}
		return fmt.Sprintf("value=%q previous=%q", p.Value, p.Previous)
	case tree.Event:
		return fmt.Sprintf("value=%q", p.Value)
	case error:
		return p.Error()
	default:
		return fmt.Sprint(p)
	}
}

// Failed reports whether the event announces a validation error.
func (m WidgetEventMsg) Failed() bool {
	return m.Event.Name == string(textbox.EventError)
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// LoopMsg carries a deferred widget callback. It must run on the program
// goroutine.
type LoopMsg struct {
	Run func()
}

// SkinsChangedMsg reports edited skin files.
type SkinsChangedMsg struct {
	Files []string
}

// Describe lists the changed files.
func (m SkinsChangedMsg) Describe() string {
	return strings.Join(m.Files, ", ")
}

// FocusMsg is emitted when a widget gains playground focus.
type FocusMsg struct {
	Widget WidgetID
}

// BlurMsg is emitted when a widget loses playground focus.
type BlurMsg struct {
	Widget WidgetID
}
