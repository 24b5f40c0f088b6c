// Package alert classifies record annotations into typed alert entries and
// aggregates them into per-section card statuses for the dashboard overview.
package alert

import (
	"fmt"

	"github.com/levelup-marketers/client-dashboard-service/internal/notes"
)

// Type of an alert entry.
type Type string

const (
	TypeCritical  Type = "critical"
	TypeAttention Type = "attention"
)

// Card status classes.
type Class string

const (
	ClassGood      Class = "good"
	ClassAttention Class = "attention"
	ClassCritical  Class = "critical"
	ClassNeutral   Class = "neutral"
)

// Card icons.
type Icon string

const (
	IconCheck    Icon = "check"
	IconWarning  Icon = "warning"
	IconCritical Icon = "critical"
	IconInfo     Icon = "info"
)

// Entry is one classified note ready for display.
type Entry struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
}

// Message is a labelled alert line on a card.
type Message struct {
	Type Type   `json:"type"`
	Text string `json:"text"`
}

// CardStatus is the aggregated display state of one overview section.
type CardStatus struct {
	Class    Class     `json:"class"`
	Icon     Icon      `json:"icon"`
	Messages []Message `json:"messages"`
}

// TypeLabel returns the human-readable prefix for an alert type. Unknown
// types get no label.
func TypeLabel(t Type) string {
	switch t {
	case TypeCritical:
		return "Critical Issue"
	case TypeAttention:
		return "Attention Needed"
	default:
		return ""
	}
}

// BuildMessage classifies a single note. Empty notes yield nil.
func BuildMessage(note string, t Type) *Entry {
	n := notes.Normalize(note)
	if n == "" {
		return nil
	}
	return &Entry{Type: t, Message: n}
}

// FormatLabelledNote prefixes a note with its subject label. An empty note
// yields ""; an empty label yields the bare note. The separator is the
// plain hyphen form.
func FormatLabelledNote(label, note string) string {
	n := notes.Normalize(note)
	if n == "" {
		return ""
	}
	l := notes.Normalize(label)
	if l == "" {
		return n
	}
	return fmt.Sprintf("%s - %s", l, n)
}

// PrepareItems filters both note lists and tags each survivor with its
// type, critical entries first, source order preserved.
func PrepareItems(critical, attention []string) []Entry {
	c := notes.Filter(critical)
	a := notes.Filter(attention)
	items := make([]Entry, 0, len(c)+len(a))
	for _, n := range c {
		items = append(items, Entry{Type: TypeCritical, Message: n})
	}
	for _, n := range a {
		items = append(items, Entry{Type: TypeAttention, Message: n})
	}
	return items
}

func formatMessages(critical, attention []string) []Message {
	items := PrepareItems(critical, attention)
	msgs := make([]Message, 0, len(items))
	for _, it := range items {
		text := it.Message
		if label := TypeLabel(it.Type); label != "" {
			text = fmt.Sprintf("%s: %s", label, it.Message)
		}
		msgs = append(msgs, Message{Type: it.Type, Text: text})
	}
	return msgs
}

// BuildCardStatus aggregates the note lists of a section into one display
// status. Any critical note forces the critical state; attention notes
// alone yield the attention state; with neither, the card is good and
// shows defaultMsg when non-empty.
func BuildCardStatus(critical, attention []string, defaultMsg string) CardStatus {
	c := notes.Filter(critical)
	a := notes.Filter(attention)

	switch {
	case len(c) > 0:
		return CardStatus{
			Class:    ClassCritical,
			Icon:     IconCritical,
			Messages: formatMessages(c, a),
		}
	case len(a) > 0:
		return CardStatus{
			Class:    ClassAttention,
			Icon:     IconWarning,
			Messages: formatMessages(nil, a),
		}
	default:
		st := CardStatus{Class: ClassGood, Icon: IconCheck, Messages: []Message{}}
		if msg := notes.Normalize(defaultMsg); msg != "" {
			st.Messages = []Message{{Text: msg}}
		}
		return st
	}
}

// NeutralCard is the status for sections without alert semantics, such as
// billing and plugins.
func NeutralCard(message string) CardStatus {
	st := CardStatus{Class: ClassNeutral, Icon: IconInfo, Messages: []Message{}}
	if msg := notes.Normalize(message); msg != "" {
		st.Messages = []Message{{Text: msg}}
	}
	return st
}
