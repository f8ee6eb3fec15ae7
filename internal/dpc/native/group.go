package native

import (
	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
)

// AddAuthKeys aggregates a list of embedded-curve points, mirroring the
// in-circuit fold in gadgets.AddUnified / circuit.build step 3. It uses
// the curve's complete (unified) addition so the neutral point needs no
// special-casing, matching the off-circuit behavior the in-circuit
// AddUnified gadget must agree with.
func AddAuthKeys(points ...bls12377.G1Affine) bls12377.G1Affine {
	var acc bls12377.G1Jac
	acc.FromAffine(&bls12377.G1Affine{}) // neutral point
	for _, p := range points {
		var pj bls12377.G1Jac
		pj.FromAffine(&p)
		acc.AddAssign(&pj)
	}
	var out bls12377.G1Affine
	out.FromJacobian(&acc)
	return out
}

// NeutralPoint returns the identity element of the embedded curve group.
func NeutralPoint() bls12377.G1Affine {
	return bls12377.G1Affine{}
}
