package native

import (
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

	"github.com/veridpc/utxocircuit/internal/dpc/params"
)

// MerkleRecompute reconstructs a tree root from a leaf, its uid (leaf
// position), and a sibling path of fixed depth, mirroring
// gadgets.MerkleRecompute. At level k, bit k of uid (LSB first) selects
// whether the running hash is the left or right child when combined with
// siblings[k].
func MerkleRecompute(uid uint64, leaf fr.Element, siblings [params.TreeDepth]fr.Element) fr.Element {
	cur := leaf
	for level := 0; level < params.TreeDepth; level++ {
		bit := (uid >> uint(level)) & 1
		sib := siblings[level]
		var left, right fr.Element
		if bit == 0 {
			left, right = cur, sib
		} else {
			left, right = sib, cur
		}
		cur = Hash(left, right)
	}
	return cur
}
