package events

import "github.com/atomicstack/grid-menu/internal/logging"

type RegistryTracer struct{}

type PageTracer struct{}

var (
	Registry = RegistryTracer{}
	Page     = PageTracer{}
)

func (RegistryTracer) AddPage(number, rows int, name string) {
	logging.Trace("registry.page.add", map[string]interface{}{"number": number, "rows": rows, "name": name})
}

func (RegistryTracer) DeletePage(number int, title string) {
	logging.Trace("registry.page.delete", map[string]interface{}{"number": number, "title": title})
}

func (RegistryTracer) Reflow(from, to int, title string) {
	logging.Trace("registry.page.reflow", map[string]interface{}{"from": from, "to": to, "title": title})
}

func (RegistryTracer) Numbering(mode string, pages int) {
	logging.Trace("registry.numbering", map[string]interface{}{"mode": mode, "pages": pages})
}

func (PageTracer) Show(title string, number int, user string) {
	logging.Trace("page.show", map[string]interface{}{"title": title, "number": number, "user": user})
}

func (PageTracer) Rename(from, to string, number int) {
	logging.Trace("page.rename", map[string]interface{}{"from": from, "to": to, "number": number})
}

func (PageTracer) Border(title string, number int, kind string, filled int) {
	logging.Trace("page.border", map[string]interface{}{"title": title, "number": number, "kind": kind, "filled": filled})
}
