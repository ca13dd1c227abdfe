// Package friendship provides the save/load and localization runtime for
// the adventure game The Power of Friendship.
//
// Example usage:
//
//	cfg := friendship.Config{
//	    SaveDir:    "/path/to/saves",
//	    StartScene: "Intro",
//	}
//	engine, err := friendship.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := engine.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Stop()
package friendship

import "github.com/keraunic-tonic/friendship/pkg/saves"

// Config holds the configuration for the save engine.
// All fields have defaults set via SetDefaults during New.
type Config = saves.Config

// Engine is the embeddable save/load runtime.
type Engine = saves.Engine

// Option configures optional behavior of the engine.
type Option = saves.Option

// RestorePolicy gates which state categories a load restores.
type RestorePolicy = saves.RestorePolicy

// New creates an engine with the given configuration.
func New(cfg Config, opts ...Option) (*Engine, error) {
	return saves.New(cfg, opts...)
}

// FullRestore returns the policy an ordinary load uses: everything on.
func FullRestore() RestorePolicy {
	return saves.FullRestore()
}

// AutosaveSlot is the slot ID reserved for autosaves.
const AutosaveSlot = saves.AutosaveSlot
