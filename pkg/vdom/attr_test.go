package vdom

import "testing"

func TestAttrKindString(t *testing.T) {
	tests := []struct {
		kind AttrKind
		want string
	}{
		{AttrPlain, "Plain"},
		{AttrStyle, "Style"},
		{AttrEvent, "Event"},
		{AttrKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("AttrKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttrConstructors(t *testing.T) {
	tests := []struct {
		name     string
		attr     Attr
		wantKind AttrKind
		wantKey  string
		wantVal  any
	}{
		{"attribute", Attribute("href", "/home"), AttrPlain, "href", "/home"},
		{"bool attribute", BoolAttribute("disabled", true), AttrPlain, "disabled", true},
		{"style", Style("color", "red"), AttrStyle, "color", "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", tt.attr.Kind, tt.wantKind)
			}
			if tt.attr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value != tt.wantVal {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.wantVal)
			}
		})
	}
}

func TestOn(t *testing.T) {
	handler := NormalHandler("click", func(Event) Dispatch {
		return Dispatch{Msg: "clicked"}
	})

	a := On(handler)

	if a.Kind != AttrEvent {
		t.Errorf("Kind = %v, want AttrEvent", a.Kind)
	}
	if a.Key != "click" {
		t.Errorf("Key = %q, want %q", a.Key, "click")
	}
	got, ok := a.Value.(EventHandler)
	if !ok {
		t.Fatalf("Value type = %T, want EventHandler", a.Value)
	}
	if got.Mode != DispatchNormal {
		t.Errorf("Mode = %v, want DispatchNormal", got.Mode)
	}
}

func TestAttrIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		want bool
	}{
		{"empty attr", Attr{}, true},
		{"attr with key", Attribute("class", "test"), false},
		{"attr with empty value", Attribute("alt", ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.IsEmpty(); got != tt.want {
				t.Errorf("Attr.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypedHelpers(t *testing.T) {
	tests := []struct {
		name    string
		attr    Attr
		wantKey string
		wantVal any
	}{
		{"ID", ID("main"), "id", "main"},
		{"Data", Data("id", "123"), "data-id", "123"},
		{"TabIndex", TabIndex(3), "tabindex", "3"},
		{"AriaHidden", AriaHidden(true), "aria-hidden", "true"},
		{"Disabled", Disabled(), "disabled", true},
		{"Href", Href("/x"), "href", "/x"},
		{"Width", Width(640), "width", "640"},
		{"Spellcheck", Spellcheck(false), "spellcheck", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Kind != AttrPlain {
				t.Errorf("Kind = %v, want AttrPlain", tt.attr.Kind)
			}
			if tt.attr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value != tt.wantVal {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.wantVal)
			}
		})
	}
}
