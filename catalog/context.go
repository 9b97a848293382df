package catalog

import (
	"strconv"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/localekit/resbridge"
	"github.com/localekit/resbridge/errors"
)

// Context is an application-scoped object pairing a resource table with a
// localizer for a preferred language list. It is what gets inserted into the
// handle table and borrowed by the bridge.
//
// A Context is immutable after construction and safe for concurrent use.
type Context struct {
	resources *Resources
	languages []string
}

// NewContext creates a context resolving against bundle in the given
// language preference order.
func NewContext(bundle *i18n.Bundle, table *Table, languages ...string) *Context {
	return &Context{
		resources: &Resources{
			localizer: i18n.NewLocalizer(bundle, languages...),
			table:     table,
		},
		languages: languages,
	}
}

// Resources returns the context's resource resolution capability.
func (c *Context) Resources() resbridge.StringResolver {
	return c.resources
}

// Languages returns the context's language preference order.
func (c *Context) Languages() []string {
	return c.languages
}

// Resources resolves identifiers to localized text. Each call constructs the
// result fresh; nothing is cached.
type Resources struct {
	localizer *i18n.Localizer
	table     *Table
}

// String resolves a resource identifier to localized text.
// An identifier outside the table or a message missing from every loaded
// locale is an error; no substitute value is returned.
func (r *Resources) String(id uint32) (string, error) {
	key, ok := r.table.Key(id)
	if !ok {
		return "", errors.NotFound(errors.PhaseResolve, "resource id", strconv.FormatUint(uint64(id), 10))
	}

	text, err := r.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return "", errors.Wrap(errors.PhaseResolve, errors.KindNotFound, err, "localize "+strconv.Quote(key))
	}
	return text, nil
}
