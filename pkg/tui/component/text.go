// ABOUTME: Typographic Text component: semantic styling, inline edit, copy, ellipsis
// ABOUTME: View/edit mode machine with scheduler-driven copy feedback reset

package component

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mauromedda/typeset/internal/log"
	"github.com/mauromedda/typeset/pkg/tui"
	"github.com/mauromedda/typeset/pkg/tui/clipboard"
	"github.com/mauromedda/typeset/pkg/tui/key"
	"github.com/mauromedda/typeset/pkg/tui/locale"
	"github.com/mauromedda/typeset/pkg/tui/sched"
	"github.com/mauromedda/typeset/pkg/tui/theme"
	"github.com/mauromedda/typeset/pkg/tui/width"
)

// CopyFeedbackDuration is how long the copy affordance shows its success
// state before reverting.
const CopyFeedbackDuration = 3 * time.Second

// Type selects the semantic style of a Text component.
type Type int

const (
	TypeDefault Type = iota
	TypeSecondary
	TypeDanger
	TypeWarning
)

// Styles are the visual roles a Text component composes. Roles stack:
// semantic type first, disabled on top, affordances styled independently.
type Styles struct {
	Base       theme.Color
	Secondary  theme.Color
	Danger     theme.Color
	Warning    theme.Color
	Disabled   theme.Color
	Affordance theme.Color
	Success    theme.Color
}

// StylesFromPalette derives Text styles from a theme palette.
func StylesFromPalette(p theme.Palette) Styles {
	return Styles{
		Base:       p.Primary,
		Secondary:  p.Secondary,
		Danger:     p.Danger,
		Warning:    p.Warning,
		Disabled:   p.Disabled,
		Affordance: p.Muted,
		Success:    p.Success,
	}
}

// DefaultStyles returns styles derived from the default palette.
func DefaultStyles() Styles {
	return StylesFromPalette(theme.DefaultPalette())
}

// Paragraph is the rendered-output handle that measurement mutates.
// It is valid only between the component's creation and destruction.
type Paragraph struct {
	Width     int
	Lines     []string
	Truncated bool
}

// MeasureFunc truncates full text to at most maxLines display lines within
// the paragraph's width, rewriting p.Lines and p.Truncated in place.
type MeasureFunc func(fullText string, maxLines int, p *Paragraph)

// defaultMeasure delegates to the width package's multi-line truncation.
func defaultMeasure(fullText string, maxLines int, p *Paragraph) {
	p.Lines, p.Truncated = width.TruncateLines(fullText, maxLines, p.Width)
}

// TextOptions configure a Text component. The zero value is a plain,
// non-interactive paragraph.
type TextOptions struct {
	// Editable enables the inline edit affordance. Requires string content;
	// non-string content logs a developer warning and edits seed empty.
	Editable bool
	// Copyable enables the copy affordance.
	Copyable bool
	// Type selects the semantic style.
	Type Type
	// Disabled styles the text as inactive. It does not gate the edit or
	// copy handlers; suppressing interaction is the host's concern.
	Disabled bool
	// Lines enables ellipsis truncation to that many display lines when
	// positive.
	Lines int
	// OnChange receives the new value after a successful edit submission.
	OnChange func(string)
	// OnInvalidate fires after any state change that requires a re-render,
	// including asynchronous copy feedback reset. Hosts typically wire it
	// to Engine.RequestRender.
	OnInvalidate func()

	// Styles overrides the default palette-derived styles.
	Styles *Styles
	// Strings overrides the locale-resolved affordance strings.
	Strings *locale.Bundle
	// Scheduler overrides the wall-clock scheduler for copy feedback.
	Scheduler sched.Scheduler
	// CopyText overrides the clipboard primitive.
	CopyText func(string) error
	// Measure overrides the measurement utility.
	Measure MeasureFunc
}

type textMode int

const (
	modeView textMode = iota
	modeEdit
)

// Text renders a paragraph with optional semantic styling, inline editing,
// clipboard copy, and multi-line ellipsis truncation. Content is arbitrary;
// non-string content is coerced to its string form for display and copy,
// and flagged as a contract violation for the editable and ellipsis modes.
type Text struct {
	mu      sync.Mutex
	content any
	opts    TextOptions

	mode    textMode
	copied  bool
	copyGen uint64
	reset   sched.Handle

	mounted bool
	focused bool
	dirty   bool

	para   Paragraph
	editor *Input

	warnedEdit     bool
	warnedEllipsis bool
}

// NewText creates a Text component with the given content and options.
func NewText(content any, opts TextOptions) *Text {
	t := &Text{content: content, opts: opts, dirty: true}
	t.mu.Lock()
	t.checkContractLocked()
	t.mu.Unlock()
	return t
}

// Mount marks the component live and syncs truncation if a rendered
// paragraph already exists. Container.Add dispatches it.
func (t *Text) Mount() {
	t.mu.Lock()
	t.mounted = true
	t.syncEllipsisLocked()
	t.mu.Unlock()
}

// Unmount cancels any pending copy-feedback reset. No state mutates after
// it returns; a late-firing timer callback sees a stale generation and
// drops out.
func (t *Text) Unmount() {
	t.mu.Lock()
	if t.reset != nil {
		t.reset.Stop()
		t.reset = nil
	}
	t.copyGen++
	t.mounted = false
	t.mu.Unlock()
}

// SetContent replaces the displayed content and re-syncs truncation.
func (t *Text) SetContent(v any) {
	t.mu.Lock()
	t.content = v
	t.dirty = true
	t.checkContractLocked()
	t.syncEllipsisLocked()
	t.mu.Unlock()
	t.notify()
}

// SetOptions replaces the configuration and re-syncs truncation.
// Warn-once state for contract violations survives reconfiguration.
func (t *Text) SetOptions(opts TextOptions) {
	t.mu.Lock()
	t.opts = opts
	t.dirty = true
	t.checkContractLocked()
	t.syncEllipsisLocked()
	t.mu.Unlock()
	t.notify()
}

// Value returns the content coerced to its display string.
func (t *Text) Value() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.valueLocked()
}

// Copied reports whether the copy affordance is in its success state.
func (t *Text) Copied() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.copied
}

// Editing reports whether the component is in edit mode.
func (t *Text) Editing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode == modeEdit
}

// SetFocused sets the focus state.
func (t *Text) SetFocused(focused bool) {
	t.mu.Lock()
	t.focused = focused
	t.dirty = true
	t.mu.Unlock()
}

// IsFocused returns the focus state.
func (t *Text) IsFocused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.focused
}

// Invalidate marks the component for re-render.
func (t *Text) Invalidate() {
	t.mu.Lock()
	t.dirty = true
	t.mu.Unlock()
}

// StartEdit switches to edit mode, seeding the inline editor with the
// current text. No-op unless Editable is set. Non-string content seeds an
// empty editor.
func (t *Text) StartEdit() {
	t.mu.Lock()
	if !t.opts.Editable || t.mode == modeEdit {
		t.mu.Unlock()
		return
	}
	t.mode = modeEdit
	t.editor = NewInput()
	if s, ok := t.content.(string); ok {
		t.editor.SetText(s)
	}
	t.editor.SetFocused(true)
	t.dirty = true
	t.mu.Unlock()
	t.notify()
}

// Copy writes the coerced content to the clipboard and enters the copy
// success state for CopyFeedbackDuration. A new copy supersedes a pending
// reset. No-op unless Copyable is set; a failed clipboard write leaves the
// state untouched.
func (t *Text) Copy() {
	t.mu.Lock()
	if !t.opts.Copyable {
		t.mu.Unlock()
		return
	}
	text := t.valueLocked()
	copyFn := t.opts.CopyText
	t.mu.Unlock()

	if copyFn == nil {
		copyFn = clipboard.Write
	}
	if err := copyFn(text); err != nil {
		log.Warn("Text: clipboard copy failed: %v", err)
		return
	}

	t.mu.Lock()
	t.copied = true
	t.copyGen++
	gen := t.copyGen
	if t.reset != nil {
		t.reset.Stop()
	}
	t.reset = t.schedulerLocked().Schedule(CopyFeedbackDuration, func() {
		t.resetCopied(gen)
	})
	t.dirty = true
	t.mu.Unlock()
	t.notify()
}

// resetCopied clears the success state if gen is still current. Stale
// generations come from superseded copies or an unmounted component.
func (t *Text) resetCopied(gen uint64) {
	t.mu.Lock()
	if t.copyGen != gen || !t.copied {
		t.mu.Unlock()
		return
	}
	t.copied = false
	t.reset = nil
	t.dirty = true
	t.mu.Unlock()
	t.notify()
}

// HandleInput routes keyboard input. In view mode "e" starts editing and
// "c" or "y" copies. In edit mode Enter submits, Escape cancels, everything
// else feeds the inline editor.
func (t *Text) HandleInput(data string) {
	t.mu.Lock()
	editing := t.mode == modeEdit
	t.mu.Unlock()

	k := key.ParseKey(data)
	if editing {
		switch k.Type {
		case key.KeyEnter:
			t.finishEdit(true)
		case key.KeyEscape:
			t.finishEdit(false)
		default:
			t.mu.Lock()
			if t.mode == modeEdit && t.editor != nil {
				t.editor.HandleInput(data)
				t.dirty = true
			}
			t.mu.Unlock()
			t.notify()
		}
		return
	}

	if k.Type != key.KeyRune {
		return
	}
	switch k.Rune {
	case 'e':
		t.StartEdit()
	case 'c', 'y':
		t.Copy()
	}
}

// finishEdit leaves edit mode. On submit the new value goes to OnChange;
// on cancel nothing propagates. Either way focus returns to the component
// (the edit affordance).
func (t *Text) finishEdit(submit bool) {
	t.mu.Lock()
	if t.mode != modeEdit {
		t.mu.Unlock()
		return
	}
	value := t.editor.Text()
	t.mode = modeView
	t.editor = nil
	t.focused = true
	t.dirty = true
	onChange := t.opts.OnChange
	t.mu.Unlock()

	if submit && onChange != nil {
		onChange(value)
	}
	t.notify()
}

// Render writes the paragraph or the inline editor into the buffer.
// A width change recreates the rendered paragraph and re-measures.
func (t *Text) Render(out *tui.RenderBuffer, w int) {
	t.mu.Lock()
	if w != t.para.Width {
		t.para.Width = w
		t.syncEllipsisLocked()
	}

	if t.mode == modeEdit && t.editor != nil {
		ed := t.editor
		t.mu.Unlock()
		ed.Render(out, w)
		return
	}

	st := t.stylesLocked()
	color := st.Base
	switch t.opts.Type {
	case TypeSecondary:
		color = st.Secondary
	case TypeDanger:
		color = st.Danger
	case TypeWarning:
		color = st.Warning
	}
	if t.opts.Disabled {
		color = st.Disabled
	}

	var lines []string
	if t.opts.Lines > 0 {
		lines = append(lines, t.para.Lines...)
	} else {
		lines = splitLines(t.valueLocked())
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	for i := range lines {
		lines[i] = color.Apply(lines[i])
	}

	if suffix := t.affordancesLocked(st); suffix != "" {
		lines[len(lines)-1] += "  " + suffix
	}

	t.dirty = false
	t.mu.Unlock()
	out.WriteLines(lines)
}

// affordancesLocked composes the edit and copy controls appended after the
// content.
func (t *Text) affordancesLocked(st Styles) string {
	strs := t.stringsLocked()
	var parts []string
	if t.opts.Editable {
		parts = append(parts, st.Affordance.Apply("✎ "+strs.Edit))
	}
	if t.opts.Copyable {
		if t.copied {
			parts = append(parts, st.Success.Apply("✔ "+strs.CopySuccess))
		} else {
			parts = append(parts, st.Affordance.Apply("⧉ "+strs.Copy))
		}
	}
	return strings.Join(parts, "  ")
}

// syncEllipsisLocked invokes the measurement utility when ellipsis mode is
// active and a rendered paragraph exists. Runs on mount, on every content
// or option update, and on width changes.
func (t *Text) syncEllipsisLocked() {
	if t.opts.Lines <= 0 || t.para.Width <= 0 {
		return
	}
	measure := t.opts.Measure
	if measure == nil {
		measure = defaultMeasure
	}
	measure(t.valueLocked(), t.opts.Lines, &t.para)
}

// checkContractLocked logs the two advisory contract violations, once each
// per component instance: editable with non-string content, and ellipsis
// mode with non-string content. Rendering proceeds with coercion.
func (t *Text) checkContractLocked() {
	if t.content == nil {
		return
	}
	if _, ok := t.content.(string); ok {
		return
	}
	if t.opts.Editable && !t.warnedEdit {
		log.Warn("Text: editable requires string content, got %T", t.content)
		t.warnedEdit = true
	}
	if t.opts.Lines > 0 && !t.warnedEllipsis {
		log.Warn("Text: ellipsis mode requires string content, got %T", t.content)
		t.warnedEllipsis = true
	}
}

func (t *Text) valueLocked() string {
	switch v := t.content.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (t *Text) stylesLocked() Styles {
	if t.opts.Styles != nil {
		return *t.opts.Styles
	}
	return DefaultStyles()
}

func (t *Text) stringsLocked() locale.Bundle {
	if t.opts.Strings != nil {
		return *t.opts.Strings
	}
	return locale.Default.Strings("text")
}

func (t *Text) schedulerLocked() sched.Scheduler {
	if t.opts.Scheduler != nil {
		return t.opts.Scheduler
	}
	return sched.Timers{}
}

func (t *Text) notify() {
	t.mu.Lock()
	fn := t.opts.OnInvalidate
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// splitLines splits content on newlines without wrapping.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
