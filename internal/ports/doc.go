// Package ports defines the interfaces (ports) that connect the save
// coordinator to infrastructure adapters and to the game runtime.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// coordinator needs from external systems without specifying how those
// needs are fulfilled.
//
// # Port Interfaces
//
//   - [SaveStore]: Persists save blobs, screenshots, and the label index
//   - [Subsystem]: A game subsystem that produces and consumes snapshot fragments
//   - [SceneDirector]: The subsystem additionally responsible for scene changes
//   - [ScreenshotSource]: Platform-specific screenshot capture strategy
//   - [BundleLoader]: Asynchronous audio/lipsync bundle loading
//   - [ResourceCatalog]: Flat asset namespace for naming-convention lookup
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) and the game runtime
// (internal/game) provide the concrete implementations, which keeps the
// coordinator testable with in-memory fakes.
package ports
