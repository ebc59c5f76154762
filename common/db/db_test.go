// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func testDBGetSet(t *testing.T, db DB) {
	_, err := db.Get([]byte("nokey"))
	require.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, db.Set([]byte("key1"), []byte("value1")))
	v, err := db.Get([]byte("key1"))
	require.NoError(t, err)
	require.Equal(t, []byte("value1"), v)

	require.NoError(t, db.Set([]byte("key1"), nil))
	_, err = db.Get([]byte("key1"))
	require.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, db.Set([]byte("key2"), []byte("value2")))
	require.NoError(t, db.Delete([]byte("key2")))
	_, err = db.Get([]byte("key2"))
	require.Equal(t, ErrNotFoundInDb, err)
}

func testDBBatch(t *testing.T, db DB) {
	require.NoError(t, db.Set([]byte("b/3"), []byte("old")))
	batch := db.NewBatch(true)
	batch.Set([]byte("b/1"), []byte("1"))
	batch.Set([]byte("b/2"), []byte("2"))
	batch.Delete([]byte("b/3"))
	require.True(t, batch.ValueSize() > 0)
	require.NoError(t, batch.Write())

	v, err := db.Get([]byte("b/2"))
	require.NoError(t, err)
	require.Equal(t, []byte("2"), v)
	_, err = db.Get([]byte("b/3"))
	require.Equal(t, ErrNotFoundInDb, err)

	batch.Reset()
	require.Equal(t, 0, batch.ValueSize())
}

// 迭代测试
func testDBIterator(t *testing.T, db DB) {
	for _, k := range []string{"aaaaaa/1", "my_key/1", "my_key/2", "my_key/3", "my", "my_", "zzzzzz/1"} {
		require.NoError(t, db.Set([]byte(k), []byte(k)))
	}

	it := NewListHelper(db)
	scan := func(prefix string, count, direction int32, stop string) []string {
		var keys []string
		err := it.IteratorCallback([]byte(prefix), count, direction, func(key, value []byte) bool {
			require.Equal(t, key, value)
			keys = append(keys, string(key))
			return string(key) == stop
		})
		require.NoError(t, err)
		return keys
	}
	require.Equal(t, []string{"my", "my_", "my_key/1", "my_key/2", "my_key/3"}, scan("my", 0, ListASC, ""))
	require.Equal(t, []string{"my", "my_"}, scan("my", 2, ListASC, ""))
	require.Equal(t, []string{"my_key/3", "my_key/2", "my_key/1"}, scan("my_key", 0, ListDESC, ""))
	require.Equal(t, []string{"my_key/3", "my_key/2"}, scan("my", 2, ListDESC, ""))
	require.Equal(t, []string{"my_key/1", "my_key/2"}, scan("my_key", 0, ListASC, "my_key/2"))
	require.Nil(t, scan("none", 0, ListASC, ""))
}

func testAll(t *testing.T, db DB) {
	testDBGetSet(t, db)
	testDBBatch(t, db)
	testDBIterator(t, db)
	require.NotNil(t, db.Stats())
}

func TestGoMemDB(t *testing.T) {
	db, err := NewDB("test", MemDBBackendStr, "", 0)
	require.NoError(t, err)
	defer db.Close()
	testAll(t, db)
}

func TestGoLevelDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "goleveldb")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := NewDB("test", GoLevelDBBackendStr, dir, 16)
	require.NoError(t, err)
	defer db.Close()
	testAll(t, db)
}

func TestGoBadgerDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "badger")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := NewDB("test", BadgerBackendStr, dir, 16)
	require.NoError(t, err)
	defer db.Close()
	testAll(t, db)
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "cleveldb", "", 0)
	require.NotNil(t, err)
}
