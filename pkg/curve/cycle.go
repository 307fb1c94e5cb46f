package curve

// FieldToCycleScalar reinterprets a FieldElement(C) as a Scalar(CC), where
// CC is C's cycle partner (CC.ORDER == C.PRIME_MODULUS). This is the single
// bridging operation between the two curves of the cycle (spec.md §4.3,
// §9): it is used whenever a coordinate of a base-curve point must be
// committed on the cycle curve.
func FieldToCycleScalar(f *FieldElement) *Scalar {
	cc := f.params.CyclePartner()
	return cc.NewScalar(f.val)
}

// ScalarToCycleField reinterprets a Scalar(CC) as a FieldElement(C), the
// inverse direction of FieldToCycleScalar.
func ScalarToCycleField(s *Scalar) *FieldElement {
	c := s.params.CyclePartner()
	return c.NewField(s.val)
}
