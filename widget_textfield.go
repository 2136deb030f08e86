package gui

import (
	"strings"
	"unicode/utf8"
)

// LabelHeight is the space reserved above a labelled text field.
const LabelHeight float32 = 13

// TextField holds editable text. Content can always be appended; the
// controller only forwards typed text to fields reporting IsActive.
type TextField struct {
	rect        Rect
	label       string
	content     string
	active      bool
	clickable   bool
	transparent bool
	password    bool
	align       TextAlign
}

// Bounds implements Widget.
func (tf *TextField) Bounds() Rect { return tf.rect }

// VisualBounds implements Widget. A visible label extends the region upward.
func (tf *TextField) VisualBounds() Rect {
	if tf.label == "" || tf.transparent {
		return tf.rect
	}
	return Rect{X: tf.rect.X, Y: tf.rect.Y - LabelHeight, W: tf.rect.W, H: tf.rect.H + LabelHeight}
}

// Shift implements Widget.
func (tf *TextField) Shift(dx, dy float32) { tf.rect = tf.rect.Translate(dx, dy) }

// Push appends text regardless of the active flag.
func (tf *TextField) Push(s string) { tf.content += s }

// PopChar removes and returns the last rune. It reports false on empty content.
func (tf *TextField) PopChar() (rune, bool) {
	if tf.content == "" {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(tf.content)
	tf.content = tf.content[:len(tf.content)-size]
	return r, true
}

// SetActive toggles the caret. Activating a non-clickable field is refused.
func (tf *TextField) SetActive(v bool) {
	if v && !tf.clickable {
		return
	}
	tf.active = v
}

// IsActive reports whether the field currently receives typed text.
func (tf *TextField) IsActive() bool { return tf.active }

// IsClickable reports whether the field can receive focus.
func (tf *TextField) IsClickable() bool { return tf.clickable }

// IsPassword reports whether rendering masks the content.
func (tf *TextField) IsPassword() bool { return tf.password }

// IsTransparent reports whether the background fill is suppressed.
func (tf *TextField) IsTransparent() bool { return tf.transparent }

// Label returns the caption drawn above the field.
func (tf *TextField) Label() string { return tf.label }

// Align returns the text alignment.
func (tf *TextField) Align() TextAlign { return tf.align }

// Content returns the stored (unmasked) text.
func (tf *TextField) Content() string { return tf.content }

// SetContent replaces the stored text.
func (tf *TextField) SetContent(s string) { tf.content = s }

// Clear empties the content.
func (tf *TextField) Clear() { tf.content = "" }

// Display returns the text a renderer should draw: the content, or one '*'
// per rune for password fields.
func (tf *TextField) Display() string {
	if !tf.password {
		return tf.content
	}
	return strings.Repeat("*", utf8.RuneCountInString(tf.content))
}

func (tf *TextField) String() string { return tf.content }
