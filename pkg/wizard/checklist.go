package wizard

import "shipfive/pkg/progress"

// Item describes one Day 1 checklist row.
type Item struct {
	Key   progress.ChecklistKey
	Label string
	Hint  string
}

var items = []Item{
	{Key: progress.KeyCategory, Label: "Choose your template category", Hint: "Portfolio? SaaS? Agency?"},
	{Key: progress.KeyAesthetic, Label: "Decide on the visual aesthetic", Hint: "Minimal? Bold? Playful?"},
	{Key: progress.KeyHeroSketch, Label: "Sketch the hero section", Hint: "Paper is fine. Just get it out."},
	{Key: progress.KeyTypography, Label: "Choose typography + spacing", Hint: "2-3 fonts max. Be decisive."},
}

// Items returns the checklist rows in display order.
func Items() []Item {
	return append([]Item(nil), items...)
}
