// Package progress persists the onboarding record in a local key-value
// store and degrades to defaults whenever the store cannot help.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is returned by Decode when stored bytes do not have the
// shape of a Record.
var ErrMalformed = errors.New("malformed progress record")

// ChecklistKey identifies one Day 1 checklist flag.
type ChecklistKey string

// The fixed set of checklist keys. No others exist.
const (
	KeyCategory   ChecklistKey = "category"
	KeyAesthetic  ChecklistKey = "aesthetic"
	KeyHeroSketch ChecklistKey = "heroSketch"
	KeyTypography ChecklistKey = "typography"
)

// ChecklistKeys lists every key in display order.
var ChecklistKeys = [...]ChecklistKey{KeyCategory, KeyAesthetic, KeyHeroSketch, KeyTypography}

// Valid reports whether k is one of the four checklist keys.
func (k ChecklistKey) Valid() bool {
	switch k {
	case KeyCategory, KeyAesthetic, KeyHeroSketch, KeyTypography:
		return true
	}
	return false
}

// ParseChecklistKey converts user input into a key.
func ParseChecklistKey(s string) (ChecklistKey, bool) {
	k := ChecklistKey(s)
	return k, k.Valid()
}

// Checklist holds the Day 1 flags.
type Checklist struct {
	Category   bool `json:"category"`
	Aesthetic  bool `json:"aesthetic"`
	HeroSketch bool `json:"heroSketch"`
	Typography bool `json:"typography"`
}

func (c *Checklist) field(k ChecklistKey) *bool {
	switch k {
	case KeyCategory:
		return &c.Category
	case KeyAesthetic:
		return &c.Aesthetic
	case KeyHeroSketch:
		return &c.HeroSketch
	case KeyTypography:
		return &c.Typography
	}
	return nil
}

// Get returns the flag for k; unknown keys read as false.
func (c Checklist) Get(k ChecklistKey) bool {
	if f := c.field(k); f != nil {
		return *f
	}
	return false
}

// Toggle flips the flag for k and reports whether k was valid.
func (c *Checklist) Toggle(k ChecklistKey) bool {
	f := c.field(k)
	if f == nil {
		return false
	}
	*f = !*f
	return true
}

// All returns a checklist with every flag set.
func All() Checklist {
	return Checklist{Category: true, Aesthetic: true, HeroSketch: true, Typography: true}
}

// Completed counts the flags that are set.
func (c Checklist) Completed() int {
	n := 0
	for _, k := range ChecklistKeys {
		if c.Get(k) {
			n++
		}
	}
	return n
}

// Total is the number of checklist flags.
func (c Checklist) Total() int {
	return len(ChecklistKeys)
}

// Record is the durable onboarding state.
type Record struct {
	OnboardingComplete bool      `json:"onboardingComplete"`
	Checklist          Checklist `json:"day1Checklist"`
	Day1Complete       bool      `json:"day1Complete"`
}

// DefaultRecord is the all-false record used when nothing usable is stored.
func DefaultRecord() Record {
	return Record{}
}

// wireRecord mirrors Record with pointers so missing fields are detectable.
type wireRecord struct {
	OnboardingComplete *bool          `json:"onboardingComplete"`
	Checklist          *wireChecklist `json:"day1Checklist"`
	Day1Complete       *bool          `json:"day1Complete"`
}

type wireChecklist struct {
	Category   *bool `json:"category"`
	Aesthetic  *bool `json:"aesthetic"`
	HeroSketch *bool `json:"heroSketch"`
	Typography *bool `json:"typography"`
}

// Encode serializes a complete record.
func Encode(r Record) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Decode parses stored bytes. Every field must be present with the right
// type; unknown extra fields are ignored.
func Decode(data []byte) (Record, error) {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if w.OnboardingComplete == nil || w.Day1Complete == nil || w.Checklist == nil {
		return Record{}, fmt.Errorf("%w: missing top-level field", ErrMalformed)
	}
	c := w.Checklist
	if c.Category == nil || c.Aesthetic == nil || c.HeroSketch == nil || c.Typography == nil {
		return Record{}, fmt.Errorf("%w: missing checklist field", ErrMalformed)
	}

	return Record{
		OnboardingComplete: *w.OnboardingComplete,
		Checklist: Checklist{
			Category:   *c.Category,
			Aesthetic:  *c.Aesthetic,
			HeroSketch: *c.HeroSketch,
			Typography: *c.Typography,
		},
		Day1Complete: *w.Day1Complete,
	}, nil
}
