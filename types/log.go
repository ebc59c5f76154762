// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "types")
