package catalog

import (
	stderrors "errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/localekit/resbridge/errors"
)

var (
	messagesEN = []byte("hello = \"Hello\"\nfarewell = \"Goodbye\"\n")
	messagesES = []byte("hello = \"Hola\"\n")
)

func newTestContext(t *testing.T, languages ...string) *Context {
	t.Helper()

	bundle := NewBundle(language.English)
	if err := ParseMessages(bundle, "en", messagesEN); err != nil {
		t.Fatalf("parse en: %v", err)
	}
	if err := ParseMessages(bundle, "es", messagesES); err != nil {
		t.Fatalf("parse es: %v", err)
	}

	table := NewTable()
	if err := table.Assign(42, "hello"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := table.Assign(43, "farewell"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := table.Assign(44, "unlocalized"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	return NewContext(bundle, table, languages...)
}

func TestResolveDefaultLanguage(t *testing.T) {
	appCtx := newTestContext(t, "en")

	text, err := appCtx.Resources().String(42)
	if err != nil {
		t.Fatalf("String(42): %v", err)
	}
	if text != "Hello" {
		t.Errorf("String(42) = %q, want %q", text, "Hello")
	}
}

func TestResolveLocalized(t *testing.T) {
	appCtx := newTestContext(t, "es")

	text, err := appCtx.Resources().String(42)
	if err != nil {
		t.Fatalf("String(42): %v", err)
	}
	if text != "Hola" {
		t.Errorf("String(42) = %q, want %q", text, "Hola")
	}
}

func TestResolveFallsBackToDefaultLanguage(t *testing.T) {
	// "farewell" has no Spanish translation; go-i18n falls back to English.
	appCtx := newTestContext(t, "es")

	text, err := appCtx.Resources().String(43)
	if err != nil {
		t.Fatalf("String(43): %v", err)
	}
	if text != "Goodbye" {
		t.Errorf("String(43) = %q, want %q", text, "Goodbye")
	}
}

func TestResolveUnknownIdentifier(t *testing.T) {
	appCtx := newTestContext(t, "en")

	text, err := appCtx.Resources().String(9999)
	if err == nil {
		t.Fatal("expected error for unknown identifier")
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindNotFound}) {
		t.Errorf("expected (resolve, not_found), got %v", err)
	}
}

func TestResolveUnlocalizedKey(t *testing.T) {
	// Identifier 44 is in the table but its key exists in no message file.
	appCtx := newTestContext(t, "en")

	if _, err := appCtx.Resources().String(44); err == nil {
		t.Fatal("expected error for key missing from all locales")
	}
}

func TestResolveIdempotent(t *testing.T) {
	appCtx := newTestContext(t, "es")

	first, err := appCtx.Resources().String(42)
	if err != nil {
		t.Fatalf("String(42): %v", err)
	}
	for i := 0; i < 3; i++ {
		text, err := appCtx.Resources().String(42)
		if err != nil {
			t.Fatalf("String(42) repeat %d: %v", i, err)
		}
		if text != first {
			t.Errorf("repeat %d: %q != %q", i, text, first)
		}
	}
}

func TestTableAssignConflicts(t *testing.T) {
	table := NewTable()
	if err := table.Assign(1, "a"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	if err := table.Assign(1, "b"); err == nil {
		t.Error("duplicate identifier should fail")
	}
	if err := table.Assign(2, "a"); err == nil {
		t.Error("duplicate key should fail")
	}
	if err := table.Assign(0, "c"); err == nil {
		t.Error("identifier 0 should be rejected")
	}
	if err := table.Assign(3, ""); err == nil {
		t.Error("empty key should be rejected")
	}
}

func TestTableAppend(t *testing.T) {
	table := NewTable()
	if err := table.Assign(10, "a"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	id, err := table.Append("b")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if id != 11 {
		t.Errorf("Append = %d, want 11", id)
	}

	if key, ok := table.Key(11); !ok || key != "b" {
		t.Errorf("Key(11) = %q, %v", key, ok)
	}
	if got, ok := table.ID("a"); !ok || got != 10 {
		t.Errorf("ID(a) = %d, %v", got, ok)
	}
}

func TestTableEachOrdered(t *testing.T) {
	table := NewTable()
	for _, a := range []struct {
		id  uint32
		key string
	}{{30, "c"}, {10, "a"}, {20, "b"}} {
		if err := table.Assign(a.id, a.key); err != nil {
			t.Fatalf("assign: %v", err)
		}
	}

	var ids []uint32
	table.Each(func(id uint32, _ string) bool {
		ids = append(ids, id)
		return true
	})

	want := []uint32{10, 20, 30}
	if len(ids) != len(want) {
		t.Fatalf("visited %d, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("order[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}
