package crypto_test

import (
	"testing"

	"github.com/33cn/rps/common/crypto"
	"github.com/33cn/rps/common/crypto/secp256k1"
	"github.com/stretchr/testify/require"
)

func TestSecp256k1(t *testing.T) {
	require := require.New(t)

	c, err := crypto.New(secp256k1.Name)
	require.Nil(err)
	require.Equal(secp256k1.Name, crypto.GetName(secp256k1.ID))
	require.Equal(int32(secp256k1.ID), crypto.GetType(secp256k1.Name))

	priv, err := c.GenKey()
	require.Nil(err)

	priv2, err := c.PrivKeyFromBytes(priv.Bytes())
	require.Nil(err)
	require.True(priv.Equals(priv2))

	pub := priv.PubKey()
	pub2, err := c.PubKeyFromBytes(pub.Bytes())
	require.Nil(err)
	require.True(pub.Equals(pub2))

	msg := []byte("hello world")
	sign1 := priv.Sign(msg)
	sign2, err := c.SignatureFromBytes(sign1.Bytes())
	require.Nil(err)
	require.True(sign2.Equals(sign1))
	require.True(pub.VerifyBytes(msg, sign1))
	require.True(pub2.VerifyBytes(msg, sign2))
	require.False(pub.VerifyBytes([]byte("hello worle"), sign1))

	other, err := c.GenKey()
	require.Nil(err)
	require.False(other.PubKey().VerifyBytes(msg, sign1))
}

func TestFromBytesErrors(t *testing.T) {
	c, err := crypto.New(secp256k1.Name)
	require.Nil(t, err)
	_, err = c.PrivKeyFromBytes([]byte{1, 2})
	require.NotNil(t, err)
	_, err = c.PubKeyFromBytes([]byte{1, 2})
	require.NotNil(t, err)

	_, err = crypto.New("unknown")
	require.NotNil(t, err)
}
