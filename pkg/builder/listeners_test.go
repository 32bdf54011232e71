package builder

import (
	"strconv"
	"testing"

	"github.com/vango-dev/dombuild/pkg/vdom"
)

func TestAddActionIgnoresPayload(t *testing.T) {
	e := New("button").AddAction("click", "pressed")

	listeners := e.Data().Listeners
	if len(listeners) != 1 {
		t.Fatalf("len(Listeners) = %d, want 1", len(listeners))
	}
	h := listeners[0]
	if h.Event != "click" {
		t.Errorf("Event = %q, want %q", h.Event, "click")
	}
	if h.Mode != vdom.DispatchNormal {
		t.Errorf("Mode = %v, want DispatchNormal", h.Mode)
	}

	// The same message fires regardless of the payload.
	d := h.Fn(vdom.Event{Target: map[string]any{"value": "ignored"}})
	if d.Msg != "pressed" {
		t.Errorf("Msg = %v, want %q", d.Msg, "pressed")
	}
	if d.StopPropagation || d.PreventDefault {
		t.Errorf("unexpected propagation flags in %+v", d)
	}
}

func TestAddListener(t *testing.T) {
	e := New("div").AddListener("keydown", func(ev vdom.Event) any {
		return "got:" + ev.Type
	})

	h := e.Data().Listeners[0]
	if h.Mode != vdom.DispatchNormal {
		t.Errorf("Mode = %v, want DispatchNormal", h.Mode)
	}
	d := h.Fn(vdom.Event{Type: "keydown"})
	if d.Msg != "got:keydown" {
		t.Errorf("Msg = %v, want %q", d.Msg, "got:keydown")
	}
}

func TestPropagationVariants(t *testing.T) {
	toMsg := func(vdom.Event) any { return "m" }

	tests := []struct {
		name        string
		element     Element
		wantMode    vdom.DispatchMode
		wantStop    bool
		wantPrevent bool
	}{
		{
			name:     "stop propagation",
			element:  New("div").AddListenerStopPropagation("click", toMsg),
			wantMode: vdom.DispatchMayStopPropagation,
			wantStop: true,
		},
		{
			name:        "prevent default",
			element:     New("form").AddListenerPreventDefault("submit", toMsg),
			wantMode:    vdom.DispatchMayPreventDefault,
			wantPrevent: true,
		},
		{
			name:        "stop and prevent",
			element:     New("a").AddListenerStopAndPrevent("click", toMsg),
			wantMode:    vdom.DispatchCustom,
			wantStop:    true,
			wantPrevent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.element.Data().Listeners[0]
			if h.Mode != tt.wantMode {
				t.Errorf("Mode = %v, want %v", h.Mode, tt.wantMode)
			}
			d := h.Fn(vdom.Event{})
			if d.Msg != "m" {
				t.Errorf("Msg = %v, want %q", d.Msg, "m")
			}
			if d.StopPropagation != tt.wantStop {
				t.Errorf("StopPropagation = %v, want %v", d.StopPropagation, tt.wantStop)
			}
			if d.PreventDefault != tt.wantPrevent {
				t.Errorf("PreventDefault = %v, want %v", d.PreventDefault, tt.wantPrevent)
			}
		})
	}
}

func TestAddInputHandler(t *testing.T) {
	e := New("input").AddInputHandler(func(v string) any { return "typed:" + v })

	h := e.Data().Listeners[0]
	if h.Event != "input" {
		t.Errorf("Event = %q, want %q", h.Event, "input")
	}
	d := h.Fn(vdom.Event{Target: map[string]any{"value": "abc"}})
	if d.Msg != "typed:abc" {
		t.Errorf("Msg = %v, want %q", d.Msg, "typed:abc")
	}
}

func TestAddInputHandlerWithParser(t *testing.T) {
	parse := func(v string) any {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return n
	}
	toMsg := func(parsed any) any {
		if parsed == nil {
			return "invalid"
		}
		return parsed
	}
	e := New("input").AddInputHandlerWithParser(toMsg, parse)
	h := e.Data().Listeners[0]

	if h.Event != "input" {
		t.Errorf("Event = %q, want %q", h.Event, "input")
	}

	t.Run("parse success", func(t *testing.T) {
		d := h.Fn(vdom.Event{Target: map[string]any{"value": "42"}})
		if d.Msg != 42 {
			t.Errorf("Msg = %v, want 42", d.Msg)
		}
	})

	t.Run("parse failure is forwarded unchanged", func(t *testing.T) {
		d := h.Fn(vdom.Event{Target: map[string]any{"value": "nope"}})
		if d.Msg != "invalid" {
			t.Errorf("Msg = %v, want %q", d.Msg, "invalid")
		}
	})
}

func TestAddChangeHandler(t *testing.T) {
	e := New("select").AddChangeHandler(func(v string) any { return "picked:" + v })

	h := e.Data().Listeners[0]
	if h.Event != "change" {
		t.Errorf("Event = %q, want %q", h.Event, "change")
	}
	d := h.Fn(vdom.Event{Target: map[string]any{"value": "b"}})
	if d.Msg != "picked:b" {
		t.Errorf("Msg = %v, want %q", d.Msg, "picked:b")
	}
}

func TestAddChangeHandlerWithParser(t *testing.T) {
	e := New("input").AddChangeHandlerWithParser(
		func(parsed any) any { return parsed },
		func(v string) any { return len(v) },
	)

	h := e.Data().Listeners[0]
	if h.Event != "change" {
		t.Errorf("Event = %q, want %q", h.Event, "change")
	}
	d := h.Fn(vdom.Event{Target: map[string]any{"value": "abcd"}})
	if d.Msg != 4 {
		t.Errorf("Msg = %v, want 4", d.Msg)
	}
}

func TestAddToggleHandler(t *testing.T) {
	e := New("input").AddToggleHandler(func(checked bool) any { return checked })

	h := e.Data().Listeners[0]
	if h.Event != "change" {
		t.Errorf("Event = %q, want %q", h.Event, "change")
	}
	d := h.Fn(vdom.Event{Target: map[string]any{"checked": true}})
	if d.Msg != true {
		t.Errorf("Msg = %v, want true", d.Msg)
	}
}

func TestRemoveListener(t *testing.T) {
	e := New("div").
		AddAction("click", "a").
		AddAction("keydown", "b").
		AddAction("click", "c").
		RemoveListener("click")

	listeners := e.Data().Listeners
	if len(listeners) != 1 {
		t.Fatalf("len(Listeners) = %d, want 1", len(listeners))
	}
	if listeners[0].Event != "keydown" {
		t.Errorf("Event = %q, want %q (all click listeners removed)", listeners[0].Event, "keydown")
	}
}

func TestListenerOrder(t *testing.T) {
	e := New("div").
		AddAction("click", 1).
		AddInputHandler(func(string) any { return 2 }).
		AddAction("blur", 3)

	listeners := e.Data().Listeners
	want := []string{"click", "input", "blur"}
	for i, event := range want {
		if listeners[i].Event != event {
			t.Errorf("Listeners[%d].Event = %q, want %q", i, listeners[i].Event, event)
		}
	}
}
