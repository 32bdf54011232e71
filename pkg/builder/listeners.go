package builder

import "github.com/vango-dev/dombuild/pkg/vdom"

// Event names used by the value-capturing handler families.
const (
	eventInput  = "input"  // fires on every edit
	eventChange = "change" // fires when the value is committed
)

// AddAction appends a listener that fires msg on every occurrence of the
// named event, ignoring the event payload entirely.
func (e Element) AddAction(event string, msg any) Element {
	fn := func(vdom.Event) vdom.Dispatch {
		return vdom.Dispatch{Msg: msg}
	}
	e.listeners = appended(e.listeners, vdom.NormalHandler(event, fn))
	return e
}

// AddListener appends a listener whose message is computed from the raw
// event by toMsg.
func (e Element) AddListener(event string, toMsg func(vdom.Event) any) Element {
	fn := func(ev vdom.Event) vdom.Dispatch {
		return vdom.Dispatch{Msg: toMsg(ev)}
	}
	e.listeners = appended(e.listeners, vdom.NormalHandler(event, fn))
	return e
}

// AddListenerStopPropagation is AddListener with the handler tagged to
// stop event bubbling.
func (e Element) AddListenerStopPropagation(event string, toMsg func(vdom.Event) any) Element {
	fn := func(ev vdom.Event) vdom.Dispatch {
		return vdom.Dispatch{Msg: toMsg(ev), StopPropagation: true}
	}
	e.listeners = appended(e.listeners, vdom.MayStopPropagation(event, fn))
	return e
}

// AddListenerPreventDefault is AddListener with the handler tagged to
// prevent the default browser behavior.
func (e Element) AddListenerPreventDefault(event string, toMsg func(vdom.Event) any) Element {
	fn := func(ev vdom.Event) vdom.Dispatch {
		return vdom.Dispatch{Msg: toMsg(ev), PreventDefault: true}
	}
	e.listeners = appended(e.listeners, vdom.MayPreventDefault(event, fn))
	return e
}

// AddListenerStopAndPrevent is AddListener with the handler tagged to both
// stop bubbling and prevent the default behavior.
func (e Element) AddListenerStopAndPrevent(event string, toMsg func(vdom.Event) any) Element {
	fn := func(ev vdom.Event) vdom.Dispatch {
		return vdom.Dispatch{Msg: toMsg(ev), StopPropagation: true, PreventDefault: true}
	}
	e.listeners = appended(e.listeners, vdom.CustomHandler(event, fn))
	return e
}

// AddInputHandler appends an "input" listener that reads the string value
// off the event target and maps it to a message.
func (e Element) AddInputHandler(toMsg func(string) any) Element {
	fn := func(ev vdom.Event) vdom.Dispatch {
		return vdom.Dispatch{Msg: toMsg(vdom.TargetValue(ev))}
	}
	e.listeners = appended(e.listeners, vdom.NormalHandler(eventInput, fn))
	return e
}

// AddInputHandlerWithParser is AddInputHandler with a parsing step between
// the captured string and the message constructor. Whatever parse returns,
// including a failure representation, is forwarded to toMsg unchanged.
func (e Element) AddInputHandlerWithParser(toMsg func(any) any, parse func(string) any) Element {
	fn := func(ev vdom.Event) vdom.Dispatch {
		return vdom.Dispatch{Msg: toMsg(parse(vdom.TargetValue(ev)))}
	}
	e.listeners = appended(e.listeners, vdom.NormalHandler(eventInput, fn))
	return e
}

// AddChangeHandler appends a "change" listener that reads the string value
// off the event target and maps it to a message.
func (e Element) AddChangeHandler(toMsg func(string) any) Element {
	fn := func(ev vdom.Event) vdom.Dispatch {
		return vdom.Dispatch{Msg: toMsg(vdom.TargetValue(ev))}
	}
	e.listeners = appended(e.listeners, vdom.NormalHandler(eventChange, fn))
	return e
}

// AddChangeHandlerWithParser is AddChangeHandler with a parsing step
// between the captured string and the message constructor.
func (e Element) AddChangeHandlerWithParser(toMsg func(any) any, parse func(string) any) Element {
	fn := func(ev vdom.Event) vdom.Dispatch {
		return vdom.Dispatch{Msg: toMsg(parse(vdom.TargetValue(ev)))}
	}
	e.listeners = appended(e.listeners, vdom.NormalHandler(eventChange, fn))
	return e
}

// AddToggleHandler appends a "change" listener that reads the boolean
// checked state off the event target and maps it to a message.
func (e Element) AddToggleHandler(toMsg func(bool) any) Element {
	fn := func(ev vdom.Event) vdom.Dispatch {
		return vdom.Dispatch{Msg: toMsg(vdom.TargetChecked(ev))}
	}
	e.listeners = appended(e.listeners, vdom.NormalHandler(eventChange, fn))
	return e
}

// RemoveListener removes every listener bound to the named event,
// preserving the order of the rest.
func (e Element) RemoveListener(event string) Element {
	e.listeners = filtered(e.listeners, func(h vdom.EventHandler) bool {
		return h.Event != event
	})
	return e
}
