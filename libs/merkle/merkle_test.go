package merkle_test

import (
	"encoding/hex"
	"testing"

	"github.com/brave-intl/airdrop-go/libs/merkle"
	testutils "github.com/brave-intl/airdrop-go/libs/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeccak256(t *testing.T) {
	assert.Equal(t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(merkle.Keccak256()),
		"empty input must hash to the well known empty keccak digest")

	assert.Equal(t,
		"4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		hex.EncodeToString(merkle.Keccak256([]byte("abc"))))

	assert.Equal(t,
		hex.EncodeToString(merkle.Keccak256([]byte("abc"))),
		hex.EncodeToString(merkle.Keccak256([]byte("a"), []byte("bc"))),
		"chunking must not change the digest")
}

func TestNewTreeRejectsEmpty(t *testing.T) {
	_, err := merkle.NewTree(nil)
	assert.ErrorIs(t, err, merkle.ErrNoLeaves)
}

func TestSingleLeafTree(t *testing.T) {
	leaf := []byte("only leaf")
	tree, err := merkle.NewTree([][]byte{leaf})
	require.NoError(t, err)

	proof, err := tree.Proof(0)
	require.NoError(t, err)
	assert.Len(t, proof, 0)

	assert.Equal(t, merkle.Keccak256(leaf), tree.Root())
	assert.True(t, merkle.Verify(tree.Root(), leaf, proof))
}

func TestVerifyAllLeaves(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8, 9} {
		leaves := make([][]byte, n)
		for i := range leaves {
			leaves[i] = testutils.RandomBytes(64)
		}
		tree, err := merkle.NewTree(leaves)
		require.NoError(t, err)
		require.Equal(t, n, tree.NumLeaves())

		root := tree.Root()
		for i, leaf := range leaves {
			proof, err := tree.Proof(i)
			require.NoError(t, err)
			assert.True(t, merkle.Verify(root, leaf, proof),
				"leaf %d of %d must verify", i, n)
		}
	}
}

func TestVerifyRejectsTamperedLeaf(t *testing.T) {
	leaves := [][]byte{[]byte("alice"), []byte("bob"), []byte("carol")}
	tree, err := merkle.NewTree(leaves)
	require.NoError(t, err)

	proof, err := tree.Proof(1)
	require.NoError(t, err)

	assert.True(t, merkle.Verify(tree.Root(), []byte("bob"), proof))
	assert.False(t, merkle.Verify(tree.Root(), []byte("mallory"), proof))
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	leaves := [][]byte{[]byte("alice"), []byte("bob"), []byte("carol"), []byte("dan")}
	tree, err := merkle.NewTree(leaves)
	require.NoError(t, err)

	proof, err := tree.Proof(0)
	require.NoError(t, err)
	require.NotEmpty(t, proof)

	proof[0][0] ^= 0xff
	assert.False(t, merkle.Verify(tree.Root(), []byte("alice"), proof))
}

func TestVerifyRejectsWrongRoot(t *testing.T) {
	leaves := [][]byte{[]byte("alice"), []byte("bob")}
	tree, err := merkle.NewTree(leaves)
	require.NoError(t, err)

	proof, err := tree.Proof(0)
	require.NoError(t, err)

	badRoot := testutils.RandomBytes(merkle.HashSize)
	assert.False(t, merkle.Verify(badRoot, []byte("alice"), proof))
	assert.False(t, merkle.Verify(nil, []byte("alice"), proof), "roots must be 32 bytes")
}

func TestProofForLeaf(t *testing.T) {
	leaves := [][]byte{[]byte("alice"), []byte("bob"), []byte("carol")}
	tree, err := merkle.NewTree(leaves)
	require.NoError(t, err)

	proof, err := tree.ProofForLeaf([]byte("carol"))
	require.NoError(t, err)
	assert.True(t, merkle.Verify(tree.Root(), []byte("carol"), proof))

	_, err = tree.ProofForLeaf([]byte("mallory"))
	assert.ErrorIs(t, err, merkle.ErrLeafNotFound)
}

func TestProofOutOfRange(t *testing.T) {
	tree, err := merkle.NewTree([][]byte{[]byte("alice")})
	require.NoError(t, err)

	_, err = tree.Proof(-1)
	assert.ErrorIs(t, err, merkle.ErrLeafNotFound)
	_, err = tree.Proof(1)
	assert.ErrorIs(t, err, merkle.ErrLeafNotFound)
}
