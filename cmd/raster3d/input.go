package main

// action is a viewer command produced by the input goroutine.
type action int

const (
	actNone action = iota
	actForward
	actBackward
	actLeft
	actRight
	actYawLeft
	actYawRight
	actPitchUp
	actPitchDown
	actUp
	actDown
	actWireframe
	actCull
	actShade
	actHUD
	actReset
	actQuit
	actResize
)

// keyBindings maps key names, as understood by uv.KeyPressEvent.MatchString,
// to actions. The first matching entry wins.
var keyBindings = []struct {
	keys []string
	act  action
}{
	{[]string{"up"}, actForward},
	{[]string{"down"}, actBackward},
	{[]string{"left"}, actLeft},
	{[]string{"right"}, actRight},
	{[]string{"a"}, actYawLeft},
	{[]string{"d"}, actYawRight},
	{[]string{"w"}, actPitchUp},
	{[]string{"s"}, actPitchDown},
	{[]string{"space"}, actUp},
	{[]string{"shift+space", "z"}, actDown},
	{[]string{"x"}, actWireframe},
	{[]string{"c"}, actCull},
	{[]string{"l"}, actShade},
	{[]string{"?", "shift+/"}, actHUD},
	{[]string{"r"}, actReset},
	{[]string{"escape", "ctrl+c", "q"}, actQuit},
}

// lookupAction returns the action bound to the pressed key. match reports
// whether the key equals any of the given names.
func lookupAction(match func(...string) bool) (action, bool) {
	for _, b := range keyBindings {
		if match(b.keys...) {
			return b.act, true
		}
	}
	return actNone, false
}

// inputEvent is what the input goroutine sends to the frame loop.
type inputEvent struct {
	act           action
	width, height int // actResize only
}
