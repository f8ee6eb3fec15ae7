package gadgets

import (
	"github.com/consensys/gnark/frontend"

	"github.com/veridpc/utxocircuit/internal/dpc/params"
)

// MerkleRecompute reconstructs a tree root from a leaf, a uid, and a
// sibling path of fixed depth TreeDepth, matching native.MerkleRecompute
// bit-for-bit. uid is decomposed into bits (LSB first); at level k, bit k
// selects whether the running hash is placed left or right of
// siblings[k] before hashing up one level.
func MerkleRecompute(api frontend.API, uid frontend.Variable, leaf frontend.Variable, siblings [params.TreeDepth]frontend.Variable) frontend.Variable {
	bits := api.ToBinary(uid, params.TreeDepth)

	cur := leaf
	for level := 0; level < params.TreeDepth; level++ {
		sib := siblings[level]
		bit := bits[level]
		left := api.Select(bit, sib, cur)
		right := api.Select(bit, cur, sib)
		cur = Hash(api, left, right)
	}
	return cur
}
