// Package ui contains the Bubble Tea program that lets one terminal user click
// through a menu registry. The Model type focuses on message orchestration,
// while dedicated helpers own navigation, the page jump prompt, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse presses, resizes, activation results).
//   - Pressing a cell builds a menu.ActivationEvent for the shown grid and
//     hands it to the internal/ui/command bus. Routing runs synchronously, so
//     page changes are visible before Update returns; the bus only defers the
//     command.Result message that drives the status line.
//
// State ownership:
//   - The registry owns pages and buttons. The surface.Store owns which grid
//     each user is looking at, and tells the model through its OnShow hook.
//   - Cursor and jump prompt state live in internal/ui/state.
//   - After every activation the model reconciles its grid with the registry.
//     A user whose page was renumbered follows it; a user whose page was
//     deleted falls back to the lowest numbered page, or to the empty state.
package ui
