package menu

import "github.com/atomicstack/grid-menu/internal/logging/events"

// HandleActivation routes one click to every live button it matches and
// returns how many were activated. A button matches when the principal is a
// user, the event title equals its page title, the slot is its slot and the
// reported kind is its kind. Titles are the only page identity, so pages that
// share a title share their clicks.
func (r *Registry) HandleActivation(evt ActivationEvent) int {
	user, ok := r.resolve(evt.Principal)
	if !ok {
		events.Click.Discard(evt.Title, evt.Slot, "principal")
		return 0
	}
	matched := r.match(evt)
	if len(matched) == 0 {
		events.Click.Discard(evt.Title, evt.Slot, "no-match")
		return 0
	}
	events.Click.Route(evt.Title, evt.Slot, string(evt.Kind), len(matched))
	activated := 0
	for _, b := range matched {
		// an earlier button in this event may have removed or rebound this one
		if !r.live(b) {
			continue
		}
		b.activate(evt, user)
		activated++
	}
	return activated
}

func (r *Registry) match(evt ActivationEvent) []*Button {
	var matched []*Button
	for _, page := range r.Pages() {
		if page.Title() != evt.Title {
			continue
		}
		b, ok := page.buttons[evt.Slot]
		if !ok || !b.matches(evt) {
			continue
		}
		matched = append(matched, b)
	}
	return matched
}

func (r *Registry) live(b *Button) bool {
	if b == nil || !r.Owns(b.page) {
		return false
	}
	bound, ok := b.page.buttons[b.slot]
	return ok && bound == b
}
