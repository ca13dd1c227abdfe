package saves

// Version is the current version of the saves package.
const Version = "1.0.0"

// MinCompatibleVersion is the minimum version of this package that embedders
// can rely on for the current API surface.
const MinCompatibleVersion = "1.0.0"
