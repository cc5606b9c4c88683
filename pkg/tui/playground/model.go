// Package playground drives a mounted page from the keyboard. Key presses
// become DOM events on the focused widget and every public widget event is
// logged below the page.
package playground

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/config"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/page"
	"tableflip.dev/uikit/pkg/schedule"
	"tableflip.dev/uikit/pkg/skin"
	"tableflip.dev/uikit/pkg/tui/eventviewer"
	"tableflip.dev/uikit/pkg/tui/events"
	"tableflip.dev/uikit/pkg/tui/theme"
	"tableflip.dev/uikit/pkg/widget/dropdown"
	"tableflip.dev/uikit/pkg/widget/tree"
)

const (
	minEventHeight = 5
	maxEventHeight = 14
	helpText       = "tab focus · enter activate · ↑/↓ move · ←/→ expand · ctrl+h hover · ctrl+d disable · ctrl+r reload · esc quit"
)

// Options configure New.
type Options struct {
	Document *page.Document
	Skins    *skin.Registry
	// SkinsDir is reread when Watch reports a change.
	SkinsDir string
	Watch    <-chan config.SkinsChanged
	// Delay is the live typing delay handed to every widget.
	Delay    time.Duration
	Logger   *zap.Logger
}

// Model is the Bubble Tea model of the playground.
type Model struct {
	doc      *page.Document
	skins    *skin.Registry
	skinsDir string
	watch    <-chan config.SkinsChanged
	delay    time.Duration
	log      *zap.Logger
	theme    theme.Theme

	loop *schedule.Loop
	page *page.Page

	focus   int
	cursor  int
	hovered bool

	events *eventviewer.Model
	status string
	failed bool

	width  int
	height int
}

// New mounts the document. Deferred widget work, such as live typing
// delays, is queued on a loop the program drains.
func New(o Options) (*Model, error) {
	if o.Document == nil {
		return nil, fmt.Errorf("playground: no document")
	}
	if o.Skins == nil {
		o.Skins = skin.Default()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	m := &Model{
		doc:      o.Document,
		skins:    o.Skins,
		skinsDir: o.SkinsDir,
		watch:    o.Watch,
		delay:    o.Delay,
		log:      o.Logger.Named("playground"),
		theme:    theme.Default(),
		loop:     schedule.NewLoop(0),
		events:   eventviewer.NewModel(400),
	}
	if err := m.mount(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) mount() error {
	p, err := page.Mount(m.doc,
		page.WithSkins(m.skins),
		page.WithLogger(m.log),
		page.WithListener(m.record),
		page.WithComponentOptions(
			component.WithScheduler(m.loop),
			component.WithDelay(m.delay),
		),
	)
	if err != nil {
		return err
	}
	if m.page != nil {
		m.page.Destroy()
	}
	m.page = p
	m.events.SetTitle(fmt.Sprintf("Events: %s", p.Title))
	if m.focus >= len(p.Entries()) {
		m.focus = 0
	}
	m.cursor = 0
	m.hovered = false
	m.focusInput(dom.Focus)
	return nil
}

// Page returns the mounted page.
func (m *Model) Page() *page.Page { return m.page }

// Focused returns the entry that receives key presses.
func (m *Model) Focused() *page.Entry {
	entries := m.page.Entries()
	if len(entries) == 0 {
		return nil
	}
	return entries[m.focus]
}

// Events returns the event log.
func (m *Model) Events() *eventviewer.Model { return m.events }

// Status returns the last status line.
func (m *Model) Status() string { return m.status }

// Init starts listening for deferred callbacks and skin changes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForLoop(m.loop), waitForSkins(m.watch))
}

func waitForLoop(l *schedule.Loop) tea.Cmd {
	return func() tea.Msg {
		return events.LoopMsg{Run: <-l.Queue()}
	}
}

func waitForSkins(ch <-chan config.SkinsChanged) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		changed, ok := <-ch
		if !ok {
			return nil
		}
		return events.SkinsChangedMsg{Files: changed.Files}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.events.SetSize(m.width, m.eventHeight())
	case events.LoopMsg:
		if msg.Run != nil {
			msg.Run()
		}
		return m, waitForLoop(m.loop)
	case events.SkinsChangedMsg:
		m.reload(msg.Describe())
		return m, waitForSkins(m.watch)
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	e := m.Focused()
	switch key := msg.String(); key {
	case "ctrl+c", "esc":
		return tea.Quit
	case "tab":
		m.moveFocus(1)
	case "shift+tab":
		m.moveFocus(-1)
	case "enter", "space":
		if key == "space" && input(e) != nil {
			m.typeText(e, " ")
			break
		}
		m.activate(e)
	case "up", "down", "ctrl+up", "ctrl+down", "shift+up", "shift+down":
		m.arrow(e, key)
	case "left", "right":
		m.expand(e)
	case "ctrl+h":
		m.hover(e)
	case "ctrl+d":
		if e != nil && !e.Widget.IsDestroyed() {
			e.Widget.SetEnabled(!e.Widget.IsEnabled())
			m.setStatus(fmt.Sprintf("%s enabled=%t", e.ID, e.Widget.IsEnabled()), false)
		}
	case "ctrl+r":
		m.reload("manual")
	case "pgup", "pgdown":
		return m.events.Update(msg)
	case "backspace":
		if in := input(e); in != nil {
			value := []rune(dom.Value(in))
			if len(value) > 0 {
				dom.SetValue(in, string(value[:len(value)-1]))
			}
			m.dispatch(e, &dom.Event{Type: dom.KeyUp, Target: in})
		}
	default:
		if msg.Text != "" && input(e) != nil {
			m.typeText(e, msg.Text)
		} else if key == "q" {
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) record(ev page.Event) {
	msg := events.WidgetEventMsg{Event: ev}
	level := eventviewer.LevelInfo
	if msg.Failed() {
		level = eventviewer.LevelWarn
	}
	m.events.Append(eventviewer.Entry{
		Source:  ev.WidgetID,
		Summary: ev.Name,
		Detail:  msg.Describe(),
		Level:   level,
	})
}

func (m *Model) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

func (m *Model) dispatch(e *page.Entry, ev *dom.Event) {
	if e == nil {
		return
	}
	if err := m.page.Dispatch(e.ID, ev); err != nil {
		m.setStatus(err.Error(), true)
		m.events.Append(eventviewer.Entry{
			Source:  e.ID,
			Summary: ev.Type,
			Detail:  err.Error(),
			Level:   eventviewer.LevelError,
		})
	}
}

func (m *Model) reload(reason string) {
	if m.skinsDir != "" {
		r := skin.Default()
		if err := r.LoadDir(m.skinsDir); err != nil {
			m.setStatus(fmt.Sprintf("reload skins: %v", err), true)
			return
		}
		m.skins = r
	}
	if err := m.mount(); err != nil {
		m.setStatus(fmt.Sprintf("remount: %v", err), true)
		return
	}
	m.log.Debug("page reloaded", zap.String("reason", reason))
	m.setStatus("reloaded ("+reason+")", false)
}

func (m *Model) moveFocus(delta int) {
	n := len(m.page.Entries())
	if n == 0 {
		return
	}
	m.focusInput(dom.Blur)
	if m.hovered {
		m.hover(m.Focused())
	}
	m.focus = (m.focus + delta + n) % n
	m.cursor = 0
	m.focusInput(dom.Focus)
	m.setStatus("focus "+m.Focused().ID, false)
}

// focusInput sends typ to the focused widget's input, if it has one.
func (m *Model) focusInput(typ string) {
	e := m.Focused()
	if in := input(e); in != nil {
		m.dispatch(e, &dom.Event{Type: typ, Target: in})
	}
}

func (m *Model) typeText(e *page.Entry, text string) {
	in := input(e)
	dom.SetValue(in, dom.Value(in)+text)
	m.dispatch(e, &dom.Event{Type: dom.KeyUp, Target: in})
}

func (m *Model) activate(e *page.Entry) {
	if e == nil {
		return
	}
	switch w := e.Widget.(type) {
	case *dropdown.Dropdown:
		if options := dropdownOptions(w); len(options) > 0 && w.IsOpened() && m.cursor < len(options) {
			m.dispatch(e, &dom.Event{Type: dom.Click, Target: options[m.cursor]})
			return
		}
	case *tree.Tree:
		if items := treeItems(e.Anchor); m.cursor < len(items) {
			target := items[m.cursor]
			if caption := captionOf(target); caption != nil {
				target = caption
			}
			m.dispatch(e, &dom.Event{Type: dom.Click, Target: target})
			return
		}
	}
	if in := input(e); in != nil {
		m.dispatch(e, &dom.Event{Type: dom.KeyPress, Target: in, Key: dom.KeyEnter})
		return
	}
	m.dispatch(e, &dom.Event{Type: dom.Click})
}

func (m *Model) arrow(e *page.Entry, key string) {
	if e == nil {
		return
	}
	up := strings.HasSuffix(key, "up")
	delta := 1
	if up {
		delta = -1
	}
	switch w := e.Widget.(type) {
	case *dropdown.Dropdown:
		if !w.IsDestroyed() && w.IsOpened() {
			m.cursor = moveCursor(m.cursor, delta, len(dropdownOptions(w)))
			return
		}
	case *tree.Tree:
		m.cursor = moveCursor(m.cursor, delta, len(treeItems(e.Anchor)))
		return
	}
	if in := input(e); in != nil && e.Kind == "spinner" {
		code := dom.KeyArrowDown
		if up {
			code = dom.KeyArrowUp
		}
		m.dispatch(e, &dom.Event{
			Type:   dom.KeyPress,
			Target: in,
			Key:    code,
			Ctrl:   strings.HasPrefix(key, "ctrl+"),
			Shift:  strings.HasPrefix(key, "shift+"),
		})
		return
	}
	m.moveFocus(delta)
}

// expand toggles the tree item under the cursor.
func (m *Model) expand(e *page.Entry) {
	if e == nil || e.Kind != "tree" {
		return
	}
	items := treeItems(e.Anchor)
	if m.cursor >= len(items) {
		return
	}
	target := dom.Find(items[m.cursor], ".js-tree-arrow")
	if target == nil {
		return
	}
	m.dispatch(e, &dom.Event{Type: dom.Click, Target: target})
	m.cursor = moveCursor(m.cursor, 0, len(treeItems(e.Anchor)))
}

// hover moves the pointer onto the focused widget or off it again.
func (m *Model) hover(e *page.Entry) {
	if e == nil {
		return
	}
	if m.hovered {
		m.dispatch(e, &dom.Event{Type: dom.MouseOut})
	} else {
		m.dispatch(e, &dom.Event{Type: dom.MouseOver})
	}
	m.hovered = !m.hovered
}

func moveCursor(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	cursor += delta
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func input(e *page.Entry) *html.Node {
	if e == nil || e.Widget.IsDestroyed() {
		return nil
	}
	return e.Anchor.Find("input")
}

func dropdownOptions(d *dropdown.Dropdown) []*html.Node {
	if d.IsDestroyed() || d.List() == nil {
		return nil
	}
	return d.List().FindAll(".dd-option")
}

// treeItems returns the items whose ancestors are all opened.
func treeItems(a *dom.Anchor) []*html.Node {
	var visible []*html.Node
	for _, item := range a.FindAll(".js-tree-item") {
		shown := true
		for p := item.Parent; p != nil && p != a.Node(); p = p.Parent {
			if dom.HasClass(p, "js-tree-item") && !dom.HasClass(p, "ui-tree-opened") {
				shown = false
				break
			}
		}
		if shown {
			visible = append(visible, item)
		}
	}
	return visible
}

func captionOf(item *html.Node) *html.Node {
	for c := item.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && !dom.HasClass(c, "js-tree-arrow") && !dom.HasClass(c, "js-tree-subitems") {
			return c
		}
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	if m.width == 0 || m.height == 0 {
		return "Resizing…", nil
	}
	th := m.theme
	eventHeight := m.eventHeight()
	bodyHeight := max(3, m.height-eventHeight-2)

	listWidth := max(24, m.width*2/5)
	markupWidth := max(10, m.width-listWidth)

	list := th.Panel.Frame.
		Width(listWidth).
		Height(bodyHeight).
		Render(m.renderList(listWidth - 4))
	markup := th.Panel.FocusedFrame.
		Width(markupWidth).
		Height(bodyHeight).
		Render(m.renderMarkup(markupWidth - 4))

	status := th.Footer.Status.Render(m.status)
	if m.failed {
		status = th.Footer.Error.Render(m.status)
	}
	footer := lipgloss.JoinVertical(lipgloss.Left,
		status,
		th.Footer.Help.Render(wordwrap.String(helpText, m.width)),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, list, markup),
		m.events.View(),
		footer,
	), nil
}

func (m *Model) renderList(width int) string {
	th := m.theme.List
	lines := []string{m.theme.Panel.Title.Render(m.page.Title), ""}
	for i, e := range m.page.Entries() {
		line := fmt.Sprintf("%s %s", e.ID, th.Kind.Render(e.Kind))
		style := th.Item
		switch {
		case i == m.focus:
			style = th.Focused
		case !e.Widget.IsDestroyed() && !e.Widget.IsEnabled():
			style = th.Disabled
		}
		lines = append(lines, style.Render(truncate(line, width)))
		lines = append(lines, "  "+th.State.Render(truncate(page.Describe(e.Widget), width-2)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderMarkup(width int) string {
	e := m.Focused()
	if e == nil {
		return m.theme.Panel.Body.Render("No widgets")
	}
	var b strings.Builder
	b.WriteString(m.theme.Panel.Title.Render(e.ID))
	if hint := m.cursorHint(e); hint != "" {
		b.WriteString("  " + m.theme.List.State.Render(hint))
	}
	b.WriteString("\n\n")
	for _, a := range e.Anchors() {
		b.WriteString(a.HTML())
		b.WriteByte('\n')
	}
	return m.theme.Panel.Body.Render(wrap.String(wordwrap.String(b.String(), width), width))
}

func (m *Model) cursorHint(e *page.Entry) string {
	if e.Widget.IsDestroyed() {
		return ""
	}
	var nodes []*html.Node
	switch w := e.Widget.(type) {
	case *dropdown.Dropdown:
		if !w.IsOpened() {
			return ""
		}
		nodes = dropdownOptions(w)
	case *tree.Tree:
		for _, item := range treeItems(e.Anchor) {
			nodes = append(nodes, captionOf(item))
		}
	default:
		return ""
	}
	if m.cursor >= len(nodes) || nodes[m.cursor] == nil {
		return ""
	}
	return "› " + dom.Text(nodes[m.cursor])
}

func (m *Model) eventHeight() int {
	return clamp(m.height/3, minEventHeight, maxEventHeight)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
