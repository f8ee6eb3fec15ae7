package gadgets

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/sw_bls12377"
)

// NeutralPoint returns the in-circuit identity element of the embedded
// curve, represented as (0, 0), matching native.NeutralPoint.
func NeutralPoint() sw_bls12377.G1Affine {
	return sw_bls12377.G1Affine{X: 0, Y: 0}
}

// AddUnified folds acc and p with the curve's complete addition formula,
// so the neutral point never needs special-casing — required by the
// authorization-key aggregation step of the top-level circuit.
func AddUnified(api frontend.API, acc, p sw_bls12377.G1Affine) sw_bls12377.G1Affine {
	sum := new(sw_bls12377.G1Affine)
	sum.AddUnified(api, acc, p)
	return *sum
}

// AssertEqual asserts two embedded-curve points are equal coordinate by
// coordinate.
func AssertEqual(api frontend.API, a, b sw_bls12377.G1Affine) {
	api.AssertIsEqual(a.X, b.X)
	api.AssertIsEqual(a.Y, b.Y)
}
