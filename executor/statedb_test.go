// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemDB(t *testing.T) dbm.DB {
	db, err := dbm.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	return db
}

func TestStateDBRollback(t *testing.T) {
	db := newMemDB(t)
	require.NoError(t, db.Set([]byte("a"), []byte("1")))

	state := NewStateDB(db)
	state.Begin()
	require.NoError(t, state.Set([]byte("a"), []byte("2")))
	require.NoError(t, state.Set([]byte("b"), []byte("3")))
	v, err := state.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
	assert.Equal(t, []string{"a", "b"}, state.GetSetKeys())
	state.Rollback()

	v, err = state.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = state.Get([]byte("b"))
	assert.Equal(t, types.ErrNotFound, err)
	assert.Nil(t, state.GetSetKeys())
}

func TestStateDBCommitFlush(t *testing.T) {
	db := newMemDB(t)
	require.NoError(t, db.Set([]byte("del"), []byte("x")))

	state := NewStateDB(db)
	state.Begin()
	require.NoError(t, state.Set([]byte("k"), []byte("v")))
	require.NoError(t, state.Set([]byte("del"), nil))
	_, err := state.Get([]byte("del"))
	assert.Equal(t, types.ErrNotFound, err)
	require.NoError(t, state.Commit())

	//还没有 flush, 数据库不变
	_, err = db.Get([]byte("k"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	_, err = state.Get([]byte("del"))
	assert.Equal(t, types.ErrNotFound, err)

	require.NoError(t, state.Flush())
	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
	_, err = db.Get([]byte("del"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
}

func TestStateDBSetCopiesValue(t *testing.T) {
	state := NewStateDB(newMemDB(t))
	value := []byte("abc")
	require.NoError(t, state.Set([]byte("k"), value))
	value[0] = 'x'
	v, err := state.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
}
