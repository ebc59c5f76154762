// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/rps/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlError, getLevel("unknown"))
}

func TestSetFileLog(t *testing.T) {
	dir, err := ioutil.TempDir("", "rpslog")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	defer SetLogLevel("error")

	cfg := &types.Log{LogFile: filepath.Join(dir, "rps.log"), Loglevel: "info"}
	SetFileLog(cfg)
	assert.Equal(t, "eror", cfg.LogConsoleLevel)

	New("module", "test").Info("hello", "k", "v")
	data, err := ioutil.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "module=test")
}

func TestModuleLevel(t *testing.T) {
	levels := map[string]log15.Lvl{"execs": log15.LvlDebug, "execs.asset": log15.LvlCrit}
	assert.Equal(t, log15.LvlDebug, moduleLevel(levels, "execs.rps", log15.LvlError))
	assert.Equal(t, log15.LvlCrit, moduleLevel(levels, "execs.asset", log15.LvlError))
	assert.Equal(t, log15.LvlError, moduleLevel(levels, "account", log15.LvlError))
	assert.Equal(t, log15.LvlError, moduleLevel(levels, "", log15.LvlError))

	assert.Equal(t, "execs.rps", moduleOf([]interface{}{"module", "execs.rps", "k", 1}))
	assert.Equal(t, "", moduleOf([]interface{}{"k"}))
}

func TestFileLogModuleAndFormat(t *testing.T) {
	dir, err := ioutil.TempDir("", "rpslog")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	defer SetLogLevel("error")

	cfg := &types.Log{
		LogFile:  filepath.Join(dir, "rps.log"),
		Loglevel: "error",
		Format:   "json",
		Module:   map[string]string{"execs": "debug"},
	}
	SetFileLog(cfg)

	New("module", "execs.rps").Debug("rps debug")
	New("module", "account").Info("account info")
	New("module", "account").Error("account error")
	data, err := ioutil.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"rps debug"`)
	assert.Contains(t, string(data), `"msg":"account error"`)
	assert.NotContains(t, string(data), "account info")
}
