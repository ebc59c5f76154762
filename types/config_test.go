// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = `
Title="rps-test"

[log]
loglevel = "debug"
logConsoleLevel = "info"
logFile = "logs/rps.log"
maxFileSize = 300
maxBackups = 10
maxAge = 28
compress = true
format = "json"

[log.module]
"execs.rps" = "debug"

[store]
name = "state"
driver = "leveldb"
dbPath = "datadir/state"
dbCache = 64

[metrics]
enableMetrics = true
dataEmitMode = "log"
duration = 10

[rps]
maxWager = 100000000000

[[genesis]]
symbol = "bty"
addr = "1CbEVT9RnM5oZhWMj4fxUrJX94VtRotzvs"
amount = 1000000000000
`

func TestInitCfgString(t *testing.T) {
	cfg := InitCfgString(testCfg)
	assert.Equal(t, "rps-test", cfg.Title)
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	assert.Equal(t, uint32(300), cfg.Log.MaxFileSize)
	assert.True(t, cfg.Log.Compress)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, map[string]string{"execs.rps": "debug"}, cfg.Log.Module)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, int32(64), cfg.Store.DbCache)
	assert.Equal(t, int64(1000*Coin), cfg.Rps.MaxWager)
	require.Len(t, cfg.Genesis, 1)
	assert.Equal(t, "bty", cfg.Genesis[0].Symbol)
	assert.Equal(t, 10000*Coin, cfg.Genesis[0].Amount)
	assert.True(t, cfg.Metrics.EnableMetrics)
	assert.Equal(t, "log", cfg.Metrics.DataEmitMode)
	assert.Equal(t, int64(10), cfg.Metrics.Duration)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, "local", cfg.Title)
	assert.Equal(t, int64(0), cfg.Rps.MaxWager)

	cfg = InitCfgString("")
	assert.Equal(t, "memdb", cfg.Store.Driver)
}

func TestParseCfgErrors(t *testing.T) {
	_, err := ParseCfgString("Title=")
	assert.NotNil(t, err)

	_, err = ParseCfgString("[rps]\nmaxWager = -1\n")
	assert.Equal(t, ErrInvalidParam, errorsCause(err))

	_, err = ParseCfgString("[[genesis]]\nsymbol = \"bty\"\n")
	assert.Equal(t, ErrInvalidParam, errorsCause(err))

	assert.Panics(t, func() { InitCfgString("[rps]\nmaxWager = -1\n") })
}

func TestLoadCfg(t *testing.T) {
	dir, err := ioutil.TempDir("", "rpscfg")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "rps.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(testCfg), 0600))
	cfg, err := LoadCfg(path)
	require.NoError(t, err)
	assert.Equal(t, "rps-test", cfg.Title)

	_, err = LoadCfg(filepath.Join(dir, "none.toml"))
	assert.NotNil(t, err)
}
