// Package game provides the first-party subsystems the save coordinator
// orchestrates: state handler, player input, player, inventory, variables,
// menus, localization bridge, and scene director.
//
// Registration order matters. DefaultSubsystems returns them in the fixed
// restore order the coordinator relies on, so each subsystem may assume the
// ones before it are already consistent when its Restore runs.
package game
