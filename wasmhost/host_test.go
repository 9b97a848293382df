package wasmhost

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"golang.org/x/text/language"

	"github.com/localekit/resbridge/bridge"
	"github.com/localekit/resbridge/catalog"
	"github.com/localekit/resbridge/handle"
)

func newTestHost(t *testing.T) (*Host, handle.Handle) {
	t.Helper()

	bundle := catalog.NewBundle(language.English)
	if err := catalog.ParseMessages(bundle, "en", []byte("hello = \"Hello\"\n")); err != nil {
		t.Fatalf("parse messages: %v", err)
	}
	table := catalog.NewTable()
	if err := table.Assign(42, "hello"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	handles := handle.NewTable()
	h := handles.Insert(1, catalog.NewContext(bundle, table, "en"))

	return New(bridge.New(handles)), h
}

func TestInstantiateExportsResolveString(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	host, _ := newTestHost(t)
	mod, err := host.Instantiate(ctx, r)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}

	if got := r.Module(Namespace); got == nil {
		t.Fatalf("runtime has no module %q", Namespace)
	}

	fn := mod.ExportedFunction(ResolveString)
	if fn == nil {
		t.Fatalf("host module exports no %q", ResolveString)
	}

	def := fn.Definition()
	if len(def.ParamTypes()) != 3 {
		t.Errorf("resolve-string has %d params, want 3", len(def.ParamTypes()))
	}
	if len(def.ResultTypes()) != 0 {
		t.Errorf("resolve-string has %d results, want 0", len(def.ResultTypes()))
	}
}

func TestResolveStringTrapsOnInvalidHandle(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	host, _ := newTestHost(t)
	mod, err := host.Instantiate(ctx, r)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}

	// Handle 0 never names a live context; the call must trap before any
	// text is produced or memory is touched.
	fn := mod.ExportedFunction(ResolveString)
	if _, err := fn.Call(ctx, 0, 42, 0); err == nil {
		t.Fatal("expected trap for invalid context handle")
	}
}

func TestResolveStringTrapsWithoutGuestMemory(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	host, h := newTestHost(t)
	mod, err := host.Instantiate(ctx, r)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}

	// A valid handle resolves, but the direct caller has no linear memory
	// to lower the text into, so the call still traps.
	fn := mod.ExportedFunction(ResolveString)
	if _, err := fn.Call(ctx, uint64(h), 42, 0); err == nil {
		t.Fatal("expected trap when caller has no linear memory")
	}
}
