// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotFound           = errors.New("ErrNotFound")
	ErrNoBalance          = errors.New("ErrNoBalance")
	ErrNoAllowance        = errors.New("ErrNoAllowance")
	ErrAmount             = errors.New("ErrAmount")
	ErrSendSameToRecv     = errors.New("ErrSendSameToRecv")
	ErrSign               = errors.New("ErrSign")
	ErrNoSignature        = errors.New("ErrNoSignature")
	ErrUnauthorized       = errors.New("ErrUnauthorized")
	ErrTxDup              = errors.New("ErrTxDup")
	ErrTxSize             = errors.New("ErrTxSize")
	ErrActionNotSupport   = errors.New("ErrActionNotSupport")
	ErrUnRegistedDriver   = errors.New("ErrUnRegistedDriver")
	ErrExecNameNotAllow   = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	ErrInvalidAddress     = errors.New("ErrInvalidAddress")
	ErrInvalidParam       = errors.New("ErrInvalidParam")
	ErrDecode             = errors.New("ErrDecode")
	ErrQueryNotSupport    = errors.New("ErrQueryNotSupport")
)
