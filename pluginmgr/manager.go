// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"sort"
	"sync"

	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
)

var (
	mgrlog      = log.New("module", "plugin.manager")
	mu          sync.Mutex
	pluginItems = make(map[string]Plugin)
)

// InitExec 注册所有插件的执行器, 已经注册过的执行器跳过
func InitExec(cfg *types.Config) {
	mu.Lock()
	defer mu.Unlock()
	for _, name := range sortedNames() {
		item := pluginItems[name]
		if _, err := drivers.LoadDriver(item.GetExecutorName(), -1); err == nil {
			continue
		}
		mgrlog.Debug("InitExec", "plugin", name, "exec", item.GetExecutorName())
		item.InitExec(cfg)
	}
}

// HasExec 是否存在该执行器的插件
func HasExec(name string) bool {
	mu.Lock()
	defer mu.Unlock()
	for _, item := range pluginItems {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// Register 注册插件, 名称重复时 panic
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// AddCmd 按插件名称顺序添加命令行
func AddCmd(rootCmd *cobra.Command) {
	mu.Lock()
	defer mu.Unlock()
	for _, name := range sortedNames() {
		pluginItems[name].AddCmd(rootCmd)
	}
}

func sortedNames() []string {
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
