package lang

// Version is the current version of the lang module.
const Version = "1.0.0"

// MinCompatibleVersion is the minimum version of this module that the
// friendship engine can interoperate with.
const MinCompatibleVersion = "1.0.0"
