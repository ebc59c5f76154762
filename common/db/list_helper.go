// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	log "github.com/inconshreveable/log15"
)

//IteratorDB 可迭代的数据库
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

//ListHelper ...
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//IteratorCallback 按前缀迭代, fn 返回 true 时停止, count <= 0 表示不限制数目
func (db *ListHelper) IteratorCallback(prefix []byte, count, direction int32, fn func(key, value []byte) bool) error {
	it := db.db.Iterator(prefix, direction == ListDESC)
	defer it.Close()

	var i int32
	for it.Rewind(); it.Valid(); it.Next() {
		if fn(CopyBytes(it.Key()), CopyBytes(it.Value())) {
			break
		}
		i++
		if i == count {
			break
		}
	}
	if it.Error() != nil {
		listlog.Error("IteratorCallback", "error", it.Error())
		return it.Error()
	}
	return nil
}
