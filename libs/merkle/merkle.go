// Package merkle implements the keccak-256 merkle commitments the
// distributor verifies claims against. Pairs are hashed in bytewise
// ascending order so inclusion proofs carry sibling hashes only, no
// position bits.
package merkle

import (
	"bytes"
	"errors"

	"golang.org/x/crypto/sha3"
)

// HashSize - size in bytes of a node hash
const HashSize = 32

var (
	// ErrNoLeaves - a tree needs at least one leaf
	ErrNoLeaves = errors.New("merkle: tree must have at least one leaf")
	// ErrLeafNotFound - requested leaf is not committed to by this tree
	ErrLeafNotFound = errors.New("merkle: leaf not present in tree")
)

// Keccak256 calculates and returns the Keccak256 hash of the input data.
// Copied from https://github.com/ethereum/go-ethereum/, licensed under the GNU General Public License v3.0
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		_, err := d.Write(b)
		if err != nil {
			panic(err)
		}
	}
	return d.Sum(nil)
}

// hashPair hashes two nodes, smaller first
func hashPair(a []byte, b []byte) []byte {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	return Keccak256(a, b)
}

// Tree is an immutable commitment to a set of leaves. Leaves are
// hashed once on entry; an unpaired node at the end of a level is
// promoted to the next level unchanged.
type Tree struct {
	// levels[0] holds the leaf hashes, levels[len-1] the root
	levels [][][]byte
}

// NewTree builds a tree over the raw leaf encodings in the order given.
func NewTree(leaves [][]byte) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}

	level := make([][]byte, len(leaves))
	for i, leaf := range leaves {
		level[i] = Keccak256(leaf)
	}

	levels := [][][]byte{level}
	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, hashPair(level[i], level[i+1]))
			} else {
				next = append(next, level[i])
			}
		}
		levels = append(levels, next)
		level = next
	}

	return &Tree{levels: levels}, nil
}

// Root returns the root hash committing to all leaves.
func (t *Tree) Root() []byte {
	root := t.levels[len(t.levels)-1][0]
	out := make([]byte, HashSize)
	copy(out, root)
	return out
}

// NumLeaves returns the number of committed leaves.
func (t *Tree) NumLeaves() int {
	return len(t.levels[0])
}

// Proof returns the inclusion proof for the leaf at index i, ordered
// from the leaf level upward.
func (t *Tree) Proof(i int) ([][]byte, error) {
	if i < 0 || i >= len(t.levels[0]) {
		return nil, ErrLeafNotFound
	}

	proof := make([][]byte, 0, len(t.levels)-1)
	for _, level := range t.levels[:len(t.levels)-1] {
		sibling := i ^ 1
		if sibling < len(level) {
			h := make([]byte, HashSize)
			copy(h, level[sibling])
			proof = append(proof, h)
		}
		i /= 2
	}
	return proof, nil
}

// ProofForLeaf returns the inclusion proof for the first leaf whose
// encoding matches leaf.
func (t *Tree) ProofForLeaf(leaf []byte) ([][]byte, error) {
	target := Keccak256(leaf)
	for i, h := range t.levels[0] {
		if bytes.Equal(h, target) {
			return t.Proof(i)
		}
	}
	return nil, ErrLeafNotFound
}

// Verify folds the proof siblings against the hash of the raw leaf
// encoding and reports whether the result equals root. The leaf bytes
// must be the exact encoding used when the tree was built.
func Verify(root []byte, leaf []byte, proof [][]byte) bool {
	if len(root) != HashSize {
		return false
	}
	computed := Keccak256(leaf)
	for _, sibling := range proof {
		if len(sibling) != HashSize {
			return false
		}
		computed = hashPair(computed, sibling)
	}
	return bytes.Equal(computed, root)
}
