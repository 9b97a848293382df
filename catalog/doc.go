// Package catalog implements the application side of the resource boundary:
// a table of integer resource identifiers and the localized text they resolve
// to.
//
// Identifiers are stable integer keys assigned when the catalog is built,
// mapping to go-i18n message IDs. A Context pairs the table with a localizer
// for a preferred language list; its Resources accessor is what the bridge
// asks a context for.
//
//	bundle := catalog.NewBundle(language.English)
//	catalog.LoadMessages(bundle, "localization", "en", "es")
//
//	table := catalog.NewTable()
//	table.Assign(42, "hello")
//
//	appCtx := catalog.NewContext(bundle, table, "es")
//	text, err := appCtx.Resources().String(42)
//
// Resolution never substitutes a default: an identifier absent from the table
// or a message absent from every loaded locale is an error.
package catalog
