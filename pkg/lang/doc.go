// Package lang implements the runtime localization store: per-line
// translation tables, right-to-left flags, speech asset resolution, and the
// spoken-once ledger persisted inside save games.
//
// # Basic Usage
//
//	store := lang.NewStore(lang.StoreConfig{}, logger)
//	if err := store.ImportTable(csvText, "French", 1, false, false); err != nil {
//	    return err
//	}
//	text := store.Translate("Hello", 42, 1) // "Bonjour"
//
// # Asset Resolution
//
// Speech audio and lipsync assets resolve through one of three mutually
// exclusive strategies selected by [StoreConfig.AssetSource]: a
// naming-convention lookup in a flat resource catalog, a bundle-relative
// lookup against the currently loaded asset bundle, or direct per-line
// references. Bundle loading is asynchronous; while a load is in flight,
// bundle-relative resolution fails soft with a logged warning.
//
// # Save Integration
//
// The store participates in save games through [Store.ExportLedger] and
// [Store.ImportLedger], which serialize the spoken-once ledger as a
// colon-joined ID list embedded in the save's main-data segment.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package lang
