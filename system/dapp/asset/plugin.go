// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asset 资产账本 dapp
package asset

import (
	"github.com/33cn/rps/pluginmgr"
	"github.com/33cn/rps/system/dapp/asset/executor"
	aty "github.com/33cn/rps/system/dapp/asset/types"
	"github.com/33cn/rps/system/dapp/commands"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "asset",
		ExecName: aty.AssetX,
		Exec:     executor.Init,
		Cmd:      commands.AssetCmd,
	})
}
