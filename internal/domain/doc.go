// Package domain contains the core data model for save-game snapshots.
//
// The domain layer has no dependencies on storage, logging, or the game
// runtime. It defines the snapshot aggregate ([SaveSnapshot]), the on-disk
// catalog entry ([SaveDescriptor]), the two-segment blob codec, and the
// sentinel errors shared across the module.
package domain
