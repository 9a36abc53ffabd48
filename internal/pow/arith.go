package pow

import "github.com/holiman/uint256"

// foldAverage folds sample into the running average of i samples. uint256 has no sign, so the
// increase and decrease cases must stay separate branches.
func foldAverage(prev, sample *uint256.Int, i uint64) *uint256.Int {
	n := uint256.NewInt(i)
	delta := new(uint256.Int)
	if !sample.Lt(prev) {
		delta.Sub(sample, prev)
		delta.Div(delta, n)
		return delta.Add(delta, prev)
	}
	delta.Sub(prev, sample)
	delta.Div(delta, n)
	return new(uint256.Int).Sub(prev, delta)
}

// mulDiv returns x*num/den, saturating at limit when the product does not fit in 256 bits.
func mulDiv(x *uint256.Int, num, den uint64, limit *uint256.Int) *uint256.Int {
	product, overflow := new(uint256.Int).MulOverflow(x, uint256.NewInt(num))
	if overflow {
		return new(uint256.Int).Set(limit)
	}
	return product.Div(product, uint256.NewInt(den))
}

// clamp caps target at limit.
func clamp(target, limit *uint256.Int) *uint256.Int {
	if target.Gt(limit) {
		return new(uint256.Int).Set(limit)
	}
	return target
}
