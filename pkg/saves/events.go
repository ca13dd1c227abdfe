package saves

import "github.com/google/uuid"

// SaveEvent describes the outcome of a save request.
type SaveEvent struct {
	SlotID int
	Token  uuid.UUID
	Err    error
}

// LoadEvent describes the outcome of a load request.
type LoadEvent struct {
	SlotID int
	Token  uuid.UUID
	Err    error
}

// EventHandler receives engine events. Calls are synchronous from the
// operation's goroutine; implementations should return quickly.
type EventHandler interface {
	OnSaveCompleted(SaveEvent)
	OnSaveFailed(SaveEvent)
	OnLoadCompleted(LoadEvent)
	OnLoadFailed(LoadEvent)

	// OnCatalogChanged fires after any operation that alters the save
	// catalog, so UI can recalculate its slot lists.
	OnCatalogChanged()
}

// eventEmitterWrapper adapts EventHandler to the coordinator's emitter
// interface. A nil handler drops every event.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnSaveCompleted(slotID int, token uuid.UUID) {
	if e.handler == nil {
		return
	}
	e.handler.OnSaveCompleted(SaveEvent{SlotID: slotID, Token: token})
}

func (e *eventEmitterWrapper) OnSaveFailed(slotID int, token uuid.UUID, err error) {
	if e.handler == nil {
		return
	}
	e.handler.OnSaveFailed(SaveEvent{SlotID: slotID, Token: token, Err: err})
}

func (e *eventEmitterWrapper) OnLoadCompleted(slotID int, token uuid.UUID) {
	if e.handler == nil {
		return
	}
	e.handler.OnLoadCompleted(LoadEvent{SlotID: slotID, Token: token})
}

func (e *eventEmitterWrapper) OnLoadFailed(slotID int, token uuid.UUID, err error) {
	if e.handler == nil {
		return
	}
	e.handler.OnLoadFailed(LoadEvent{SlotID: slotID, Token: token, Err: err})
}

func (e *eventEmitterWrapper) OnCatalogChanged() {
	if e.handler == nil {
		return
	}
	e.handler.OnCatalogChanged()
}
