// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"testing"

	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type none struct {
	drivers.DriverBase
}

func (n *none) GetDriverName() string { return "pmtest" }

func newNone() drivers.Driver {
	n := &none{}
	n.SetChild(n)
	return n
}

func TestPlugin(t *testing.T) {
	inits := 0
	Register(&PluginBase{
		Name:     "pmtest",
		ExecName: "pmtest",
		Exec: func(name string, cfg *types.Config) {
			inits++
			drivers.Register(name, newNone, 0)
		},
		Cmd: func() *cobra.Command {
			return &cobra.Command{Use: "pmtest"}
		},
	})
	assert.True(t, HasExec("pmtest"))
	assert.False(t, HasExec("unknown"))

	InitExec(types.DefaultConfig())
	InitExec(types.DefaultConfig())
	assert.Equal(t, 1, inits)
	_, err := drivers.LoadDriver("pmtest", 0)
	require.NoError(t, err)

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	cmd, _, err := root.Find([]string{"pmtest"})
	require.NoError(t, err)
	assert.Equal(t, "pmtest", cmd.Use)

	assert.Panics(t, func() {
		Register(&PluginBase{Name: "pmtest"})
	})
	assert.Panics(t, func() {
		Register(&PluginBase{})
	})
	assert.Panics(t, func() {
		Register(nil)
	})
}
