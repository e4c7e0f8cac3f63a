// Package ui contains the Bubble Tea program that hosts the calculator shell.
// The Model owns every piece of mutable state; the shell package only draws
// it and reports selections.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a
//     focused function (key presses, mouse events, resizes, reloads).
//   - Drawer choices from the keyboard, mouse, digit shortcuts, tab cycling
//     and the filter all go through Model.requestSelect. The shell invokes the
//     selection callback once, the command bus turns it into a
//     PanelSelectedMsg, and only the handler for that message changes the
//     active panel after validating the id against the registry.
//
// State ownership:
//   - Active panel, drawer visibility, keyboard cursor and filter live in
//     internal/ui/state.Navigation.
//   - Layout preferences live in an internal/state.PreferenceStore kept in
//     sync by the dispatcher.
//
// Backend interactions:
//   - An optional backend.Watcher reloads the config file when it changes.
//     Update waits for those events and hands them to applyBackendEvent,
//     which reclassifies the layout with the new breakpoint and drawer width.
package ui
