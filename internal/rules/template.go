package rules

import (
	"fmt"
	"strings"

	"festabot/internal/event"
)

// Slot names a field of the event record that a template may reference.
type Slot string

const (
	SlotLocation  Slot = "location"
	SlotStartTime Slot = "start_time"
	SlotWifi      Slot = "network_credential"
	SlotDressCode Slot = "dress_code"
	SlotBring     Slot = "items_to_bring"
)

// segment is either a literal run or a slot reference, never both.
type segment struct {
	literal string
	slot    Slot
}

// Template is a response template pre-parsed into ordered literal and
// slot segments. Parsing up front avoids the partial-token collisions a
// find/replace scheme has between similarly named slots.
type Template struct {
	segments []segment
}

// MustParse parses "literal {slot} literal" syntax, panicking on unknown
// slots. Intended for the static rule table only.
func MustParse(s string) Template {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse parses template syntax into segments.
func Parse(s string) (Template, error) {
	var t Template
	for len(s) > 0 {
		open := strings.Index(s, "{")
		if open < 0 {
			t.segments = append(t.segments, segment{literal: s})
			break
		}
		if open > 0 {
			t.segments = append(t.segments, segment{literal: s[:open]})
		}
		close := strings.Index(s[open:], "}")
		if close < 0 {
			return Template{}, fmt.Errorf("unterminated slot in template %q", s)
		}
		name := Slot(s[open+1 : open+close])
		switch name {
		case SlotLocation, SlotStartTime, SlotWifi, SlotDressCode, SlotBring:
		default:
			return Template{}, fmt.Errorf("unknown slot %q in template", name)
		}
		t.segments = append(t.segments, segment{slot: name})
		s = s[open+close+1:]
	}
	return t, nil
}

// Render fills the template's slots from the event record.
func (t Template) Render(info event.Info) string {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.slot == "" {
			b.WriteString(seg.literal)
			continue
		}
		switch seg.slot {
		case SlotLocation:
			b.WriteString(info.Location)
		case SlotStartTime:
			b.WriteString(info.StartTime)
		case SlotWifi:
			b.WriteString(info.WifiPass)
		case SlotDressCode:
			b.WriteString(info.DressCode)
		case SlotBring:
			b.WriteString(info.BringList())
		}
	}
	return b.String()
}
