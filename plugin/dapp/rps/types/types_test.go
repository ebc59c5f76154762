// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveBytes(t *testing.T) {
	b, ok := MoveBytes(Rock)
	assert.True(t, ok)
	assert.Equal(t, "526f636b", common.Bytes2Hex(b))
	b, ok = MoveBytes(Paper)
	assert.True(t, ok)
	assert.Equal(t, "5061706572", common.Bytes2Hex(b))
	b, ok = MoveBytes(Scissors)
	assert.True(t, ok)
	assert.Equal(t, "53636973736f7273", common.Bytes2Hex(b))
	_, ok = MoveBytes(Unrevealed)
	assert.False(t, ok)
	assert.False(t, IsConcreteMove(-1))
}

func TestParseMove(t *testing.T) {
	move, err := ParseMove("scissors")
	require.NoError(t, err)
	assert.Equal(t, Scissors, move)
	_, err = ParseMove("lizard")
	assert.Equal(t, ErrInvalidOp, err)
	assert.Equal(t, "Paper", MoveName(Paper))
	assert.Equal(t, "Unrevealed", MoveName(Unrevealed))
}

func TestCommitDigest(t *testing.T) {
	secret := []byte("secret")
	digest, err := CommitDigest("addr", Paper, secret, "")
	require.NoError(t, err)
	assert.Equal(t, common.Sha256([]byte("addrPapersecret")), digest)
	assert.Len(t, digest, DigestLen)

	digest2, err := CommitDigest("addr", Paper, secret, HashTypeSha256)
	require.NoError(t, err)
	assert.Equal(t, digest, digest2)

	keccak, err := CommitDigest("addr", Paper, secret, HashTypeKeccak256)
	require.NoError(t, err)
	assert.Equal(t, common.ShaKeccak256([]byte("addrPapersecret")), keccak)
	assert.NotEqual(t, digest, keccak)

	_, err = CommitDigest("addr", Paper, secret, "md5")
	assert.Equal(t, ErrHashType, err)
	_, err = CommitDigest("addr", Unrevealed, secret, "")
	assert.Equal(t, ErrInvalidOp, err)
}

func TestCreateTx(t *testing.T) {
	tx := CreateRevealTx(SlotTwo, Rock, []byte("s"))
	assert.Equal(t, ExecerRPS, tx.Execer)
	var action RPSAction
	require.NoError(t, types.Decode(tx.Payload, &action))
	assert.Equal(t, int32(RPSActionReveal), action.Ty)
	assert.Equal(t, SlotTwo, action.GetReveal().GetSlot())
	assert.Equal(t, Rock, action.GetReveal().GetMove())

	tx1 := CreateEvaluateTx()
	tx2 := CreateEvaluateTx()
	assert.NotEqual(t, tx1.Hash(), tx2.Hash())
}
