/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"

	"github.com/flamego/session"
)

// FlashType selects the banner style a flash message is rendered with.
type FlashType string

const (
	FlashError   FlashType = "error"
	FlashSuccess FlashType = "success"
	FlashWarning FlashType = "warning"
	FlashInfo    FlashType = "info"
)

// FlashMessage is a one-shot notice carried in the session to the next
// request.
type FlashMessage struct {
	Type    FlashType
	Message string
}

func init() {
	// Register FlashMessage with gob for session serialization
	gob.Register(FlashMessage{})
}

// SetFlash stores a flash message of the given type in the session.
func SetFlash(s session.Session, typ FlashType, message string) {
	s.SetFlash(FlashMessage{
		Type:    typ,
		Message: message,
	})
}

// SetErrorFlash sets an error flash message in the session
func SetErrorFlash(s session.Session, message string) {
	SetFlash(s, FlashError, message)
}
