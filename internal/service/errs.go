package service

import (
	"encoding/json"
	"errors"

	"go-depo-catalog/internal/apperr"
	"go-depo-catalog/internal/ws"

	"gorm.io/gorm"
)

// mapStoreErr remaps store-level failures so race losers on unique indexes
// surface as conflicts, never as raw internal errors.
func mapStoreErr(err error, dupMessage string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.CodeNotFound, err, "record not found")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Wrap(apperr.CodeConflict, err, dupMessage)
	}
	return apperr.Wrap(apperr.CodeInternal, err, "storage operation failed")
}

// broadcastCatalogEvent publishes a catalog change to connected clients.
// Fire-and-forget: a nil hub (tests) is a no-op.
func broadcastCatalogEvent(hub *ws.Hub, entity, action, id, actorName string) {
	if hub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "catalog_update",
			"entity": entity,
			"action": action,
			"id":     id,
			"actor":  actorName,
		}
		msg, _ := json.Marshal(payload)
		hub.Broadcast <- msg
	}()
}
