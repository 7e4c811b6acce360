package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("builder_used", nil); msg != "object builders can only be used once" {
		t.Fatalf("unexpected english message %q", msg)
	}

	SetLanguage("ja")
	if msg := T("builder_used", nil); msg == "object builders can only be used once" || msg == "" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	got := T("required", map[string]string{"property": "GetRequest.id"})
	if got != "missing required property 'GetRequest.id'" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("expected code echo, got %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if got := T("required", nil); got != "X:required" {
		t.Fatalf("custom translator not used: %q", got)
	}
	SetTranslator(nil)
	if got := T("parse_error", nil); got != "parse error" {
		t.Fatalf("expected english after reset, got %q", got)
	}
}
