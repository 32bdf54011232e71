package vdom

// Event is the raw payload handed to an event handler by the consuming
// runtime. Target holds the fields of the event's target element that the
// runtime chose to capture (e.g., "value", "checked").
type Event struct {
	Type   string
	Target map[string]any
}

// DispatchMode tells the consuming runtime which propagation controls a
// handler's Dispatch may exercise.
type DispatchMode uint8

const (
	DispatchNormal             DispatchMode = iota // No propagation control
	DispatchMayStopPropagation                     // Dispatch may stop bubbling
	DispatchMayPreventDefault                      // Dispatch may prevent default
	DispatchCustom                                 // Both, plus control over whether the message fires
)

// String returns the string representation of the DispatchMode.
func (m DispatchMode) String() string {
	switch m {
	case DispatchNormal:
		return "Normal"
	case DispatchMayStopPropagation:
		return "MayStopPropagation"
	case DispatchMayPreventDefault:
		return "MayPreventDefault"
	case DispatchCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Dispatch is the outcome of running a handler against an event. A nil Msg
// means no message fires. The propagation flags are honored by the runtime
// only to the extent the handler's DispatchMode allows.
type Dispatch struct {
	Msg             any
	StopPropagation bool
	PreventDefault  bool
}

// HandlerFunc maps a raw event to a dispatch outcome.
type HandlerFunc func(Event) Dispatch

// EventHandler is an event binding: an event name, a dispatch mode, and
// the handler function itself.
type EventHandler struct {
	Event string
	Mode  DispatchMode
	Fn    HandlerFunc
}

// NormalHandler binds fn to the named event with no propagation control.
func NormalHandler(event string, fn HandlerFunc) EventHandler {
	return EventHandler{Event: event, Mode: DispatchNormal, Fn: fn}
}

// MayStopPropagation binds fn to the named event; its Dispatch may stop
// event bubbling.
func MayStopPropagation(event string, fn HandlerFunc) EventHandler {
	return EventHandler{Event: event, Mode: DispatchMayStopPropagation, Fn: fn}
}

// MayPreventDefault binds fn to the named event; its Dispatch may prevent
// the default browser behavior.
func MayPreventDefault(event string, fn HandlerFunc) EventHandler {
	return EventHandler{Event: event, Mode: DispatchMayPreventDefault, Fn: fn}
}

// CustomHandler binds fn to the named event with full dispatch control:
// both propagation flags plus whether the message fires at all.
func CustomHandler(event string, fn HandlerFunc) EventHandler {
	return EventHandler{Event: event, Mode: DispatchCustom, Fn: fn}
}

// TargetField reads a named field off the event's target. Returns nil if
// the field is absent.
func TargetField(e Event, field string) any {
	if e.Target == nil {
		return nil
	}
	return e.Target[field]
}

// TargetValue reads the target's "value" field as a string. Absent or
// non-string values yield "".
func TargetValue(e Event) string {
	if s, ok := TargetField(e, "value").(string); ok {
		return s
	}
	return ""
}

// TargetChecked reads the target's "checked" field as a bool. Absent or
// non-bool values yield false.
func TargetChecked(e Event) bool {
	if b, ok := TargetField(e, "checked").(bool); ok {
		return b
	}
	return false
}
