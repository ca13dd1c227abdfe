// Package saves provides an embeddable save/load engine for adventure
// games: snapshot capture and restore across game subsystems, a slot
// catalog with labels and screenshots, and a localization store.
//
// # Basic Usage
//
// To embed the engine in a game:
//
//	cfg := saves.Config{
//	    SaveDir:    "/path/to/saves",
//	    StartScene: "Intro",
//	}
//
//	engine, err := saves.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := engine.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := engine.Save(ctx, 1, "Before the bridge")
//	// ... later ...
//	token, err = engine.Load(ctx, 1, saves.FullRestore())
//
//	_ = engine.Stop()
//
// # Configuration
//
// Create a [Config] with at minimum SaveDir (or inject a custom store with
// [WithStore]). All other fields have defaults set via [Config.SetDefaults].
//
// # Event Handling
//
// To receive save/load outcomes, implement [EventHandler] and pass it via
// [WithEventHandler]:
//
//	handler := &myEventHandler{}
//	engine, err := saves.New(cfg, saves.WithEventHandler(handler))
//
// Events are called synchronously from the operation's goroutine.
// Implementations should return quickly.
//
// # Dependency Injection
//
// For testing, inject custom implementations of external dependencies:
//
//	engine, err := saves.New(cfg,
//	    saves.WithStore(memoryStore),
//	    saves.WithLogger(customLogger),
//	)
//
// # Plugins
//
// Optional plugins add background functionality:
//
//	import "github.com/keraunic-tonic/friendship/plugins/autosave"
//	import "github.com/keraunic-tonic/friendship/plugins/langwatcher"
//
//	engine, err := saves.New(cfg,
//	    saves.WithPlugin(autosave.New(autosave.DefaultConfig())),
//	    saves.WithPlugin(langwatcher.New(langwatcher.DefaultConfig())),
//	)
//
// Plugins initialize in registration order when [Engine.Start] runs and
// shut down in reverse order on [Engine.Stop].
package saves
