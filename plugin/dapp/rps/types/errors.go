// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrGameNotStarted     = errors.New("ErrGameNotStarted")
	ErrAlreadyInitialized = errors.New("ErrAlreadyInitialized")
	ErrMaxPlayersHit      = errors.New("ErrMaxPlayersHit")
	ErrInvalidReveal      = errors.New("ErrInvalidReveal")
	ErrInvalidOp          = errors.New("ErrInvalidOp")
	ErrNotRevealed        = errors.New("ErrNotRevealed")
	ErrLimitNotReached    = errors.New("ErrLimitNotReached")
	ErrInvalidDigest      = errors.New("ErrInvalidDigest")
	ErrHashType           = errors.New("ErrHashType")
	ErrRPSAmount          = errors.New("ErrRPSAmount")
)
