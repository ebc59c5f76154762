// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 键值数据库接口以及 memdb / goleveldb / badger 后端
package db

import (
	"bytes"
	"errors"
	"sort"

	pkgerr "github.com/pkg/errors"
)

//ErrNotFoundInDb 数据库中不存在该 key
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV 执行器看到的状态接口, Set 的 value 为 nil 表示删除
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Begin()
	Commit() error
	Rollback()
}

//KVDB 只读写, 不带事务
type KVDB interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

//DB 数据库后端
type DB interface {
	KVDB
	Delete([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Iterator(prefix []byte, reverse bool) Iterator
	Stats() map[string]string
}

//Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 前缀迭代器, 使用前需要 Rewind
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Key() []byte
	Value() []byte
	Error() error
	Close()
}

//const
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
	BadgerBackendStr     = "badger"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 按后端名称创建数据库
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, pkgerr.Errorf("unknown db backend %q", backend)
	}
	db, err := creator(name, dir, cache)
	if err != nil {
		return nil, pkgerr.Wrapf(err, "open %s db %s", backend, name)
	}
	return db, nil
}

// CopyBytes Returns an exact copy of the provided bytes
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}

type kv struct{ k, v []byte }

// sliceIt 在一个有序快照上迭代, 各个后端都把前缀扫描结果装进它
type sliceIt struct {
	kvs     []kv
	index   int
	reverse bool
	err     error
}

func newSliceIt(kvs []kv, reverse bool, err error) *sliceIt {
	sort.Slice(kvs, func(i, j int) bool {
		return bytes.Compare(kvs[i].k, kvs[j].k) < 0
	})
	return &sliceIt{kvs: kvs, reverse: reverse, err: err}
}

func (it *sliceIt) Rewind() bool {
	if it.reverse {
		it.index = len(it.kvs) - 1
	} else {
		it.index = 0
	}
	return it.Valid()
}

func (it *sliceIt) Next() bool {
	if it.reverse {
		it.index--
	} else {
		it.index++
	}
	return it.Valid()
}

func (it *sliceIt) Valid() bool {
	return it.err == nil && it.index >= 0 && it.index < len(it.kvs)
}

func (it *sliceIt) Key() []byte {
	return it.kvs[it.index].k
}

func (it *sliceIt) Value() []byte {
	return it.kvs[it.index].v
}

func (it *sliceIt) Error() error {
	return it.err
}

func (it *sliceIt) Close() {
	it.kvs = nil
}
