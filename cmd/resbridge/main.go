package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/localekit/resbridge/bridge"
	"github.com/localekit/resbridge/catalog"
	"github.com/localekit/resbridge/handle"
)

const contextTypeID uint32 = 1

// config holds environment defaults; flags take precedence.
type config struct {
	Messages string   `env:"RESBRIDGE_MESSAGES" envDefault:"localization"`
	Locales  []string `env:"RESBRIDGE_LOCALES" envSeparator:"," envDefault:"en"`
	Locale   string   `env:"RESBRIDGE_LOCALE" envDefault:"en"`
	Debug    bool     `env:"RESBRIDGE_DEBUG"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		messages    = flag.String("messages", cfg.Messages, "Directory with messages.<locale>.toml files")
		locales     = flag.String("locales", strings.Join(cfg.Locales, ","), "Locales to load (comma-separated; first is the default)")
		locale      = flag.String("locale", cfg.Locale, "Preferred locale for resolution")
		id          = flag.Uint("id", 0, "Resource identifier to resolve")
		list        = flag.Bool("list", false, "List resource identifiers and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", cfg.Debug, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		bridge.SetLogger(l.Named("resbridge"))
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*messages, splitLocales(*locales), *locale); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !*list && *id == 0 {
		fmt.Fprintln(os.Stderr, "Usage: resbridge -messages <dir> [-locales en,es] [-locale es] -id <n>")
		fmt.Fprintln(os.Stderr, "       resbridge -messages <dir> -list")
		fmt.Fprintln(os.Stderr, "       resbridge -messages <dir> -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*messages, splitLocales(*locales), *locale, uint32(*id), *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func splitLocales(s string) []string {
	var out []string
	for _, l := range strings.Split(s, ",") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func run(dir string, locales []string, locale string, id uint32, listOnly bool) error {
	ctx := context.Background()

	bundle, table, err := buildCatalog(dir, locales)
	if err != nil {
		return err
	}

	if listOnly {
		fmt.Printf("Resource identifiers (%s):\n", strings.Join(locales, ", "))
		table.Each(func(id uint32, key string) bool {
			fmt.Printf("  %6d  %s\n", id, key)
			return true
		})
		return nil
	}

	handles := handle.NewTable()
	defer handles.Close()

	h := handles.Insert(contextTypeID, catalog.NewContext(bundle, table, locale))
	b := bridge.New(handles)

	text, err := b.Resolve(ctx, h, id)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}

// buildCatalog loads the message files and assigns identifiers over the
// sorted message keys of the default locale.
func buildCatalog(dir string, locales []string) (*i18n.Bundle, *catalog.Table, error) {
	if len(locales) == 0 {
		return nil, nil, fmt.Errorf("no locales configured")
	}

	defaultTag, err := language.Parse(locales[0])
	if err != nil {
		return nil, nil, fmt.Errorf("parse locale %q: %w", locales[0], err)
	}

	bundle := catalog.NewBundle(defaultTag)
	if err := catalog.LoadMessages(bundle, dir, locales...); err != nil {
		return nil, nil, err
	}

	path := filepath.Join(dir, fmt.Sprintf("messages.%s.toml", locales[0]))
	raw := map[string]any{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := catalog.NewTable()
	for _, k := range keys {
		if _, err := table.Append(k); err != nil {
			return nil, nil, err
		}
	}

	return bundle, table, nil
}
