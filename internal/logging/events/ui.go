package events

import "github.com/atomicstack/grid-menu/internal/logging"

type UITracer struct{}

type ClickTracer struct{}

type JumpTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Click   = ClickTracer{}
	Jump    = JumpTracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(title string, slot int) {
	logging.Trace("ui.cursor", map[string]interface{}{"title": title, "slot": slot})
}

func (UITracer) Notice(user, message string) {
	logging.Trace("ui.notice", map[string]interface{}{"user": user, "message": message})
}

func (UITracer) Fallback(title string, number int) {
	logging.Trace("ui.fallback", map[string]interface{}{"title": title, "number": number})
}

func (ClickTracer) Discard(title string, slot int, reason string) {
	logging.Trace("click.discard", map[string]interface{}{"title": title, "slot": slot, "reason": reason})
}

func (ClickTracer) Route(title string, slot int, kind string, matched int) {
	logging.Trace("click.route", map[string]interface{}{"title": title, "slot": slot, "kind": kind, "matched": matched})
}

func (ClickTracer) Activate(title string, slot int, variant string) {
	logging.Trace("click.activate", map[string]interface{}{"title": title, "slot": slot, "variant": variant})
}

func (JumpTracer) Open(pages int) {
	logging.Trace("ui.jump.open", map[string]interface{}{"pages": pages})
}

func (JumpTracer) Filter(query string, matches int) {
	logging.Trace("ui.jump.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (JumpTracer) Select(number int, title string) {
	logging.Trace("ui.jump.select", map[string]interface{}{"number": number, "title": title})
}

func (JumpTracer) Cancel(query string) {
	logging.Trace("ui.jump.cancel", map[string]interface{}{"query": query})
}

func (CommandTracer) Queue(title string, slot int) {
	logging.Trace("command.queue", map[string]interface{}{"title": title, "slot": slot})
}

func (CommandTracer) Skip(title string, slot int) {
	logging.Trace("command.skip", map[string]interface{}{"title": title, "slot": slot})
}

func (CommandTracer) NoOp(title string, slot int) {
	logging.Trace("command.noop", map[string]interface{}{"title": title, "slot": slot})
}

func (CommandTracer) Result(title string, slot, activated int) {
	logging.Trace("command.result", map[string]interface{}{"title": title, "slot": slot, "activated": activated})
}
