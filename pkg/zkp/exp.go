package zkp

import (
	"context"
	"io"

	"github.com/luxfi/threshold-core/internal/pool"
	"github.com/luxfi/threshold-core/pkg/curve"
	"github.com/luxfi/threshold-core/pkg/multimult"
	"github.com/luxfi/threshold-core/pkg/pedersen"
	"github.com/luxfi/threshold-core/pkg/transcript"
)

const expHashID = "exp-proof"

// PointExpSecrets is what a prover knows: a scalar Exp and the base-curve
// point Point it claims equals Exp*Base (or Exp*Base-Q when Q is set).
type PointExpSecrets struct {
	Exp   *curve.Scalar
	Point *curve.AffinePoint
	Q     *curve.AffinePoint // optional public offset, nil if absent
}

// expTrialSetup is the prover's per-trial state generated before the
// challenge is known, independent across trials (spec.md §5).
type expTrialSetup struct {
	alpha, r *curve.Scalar
	t        *curve.AffinePoint
	a        *curve.ProjectivePoint
	ctx, cty *pedersen.Commitment
}

// ExpTrial is one cut-and-choose trial of an ExpProof, either an Odd
// opening (reveals the trial's own randomness) or an Even opening (reveals
// a mask tying the trial to the committed exponent, plus a PointAddProof
// linking the claimed point to the trial's point).
type ExpTrial struct {
	A        *curve.ProjectivePoint
	CTx, CTy *curve.ProjectivePoint
	Odd      bool

	// Odd fields.
	Alpha, R *curve.Scalar
	TxR, TyR *curve.Scalar

	// Even fields.
	Z, Rp                  *curve.Scalar
	CZx, CZy, CAddX, CAddY *curve.ProjectivePoint
	AddProof               *PointAddProof
}

// ExpProof is a cut-and-choose proof that a committed point equals a
// committed scalar times a base point, optionally minus a public offset
// (spec.md §4.15).
type ExpProof struct {
	CX     *curve.ProjectivePoint
	Trials []*ExpTrial
}

func expBaseOrDefault(baseGen *pedersen.Generator, base *curve.ProjectivePoint) *curve.ProjectivePoint {
	if base != nil {
		return base
	}
	return baseGen.G()
}

func addendPoint(base *curve.ProjectivePoint, q *curve.AffinePoint, z *curve.Scalar) *curve.ProjectivePoint {
	zg := curve.ScalarMul(z, base)
	if q == nil {
		return zg
	}
	return q.ToProjective().Add(zg)
}

// ConstructExp builds an ExpProof with security parameter lambda that
// secrets.Point equals secrets.Exp*base (or minus secrets.Q, if set). base
// defaults to baseGen.G() when nil; ZkAttestProof passes a ring member's
// public key instead. The commitment to secrets.Exp (Exp*base + r*H) is
// returned alongside the proof so the caller can forward its public point
// to a verifier while keeping its randomness secret.
func ConstructExp(ctx context.Context, rng io.Reader, workers *pool.Pool, baseGen, cycleGen *pedersen.Generator, base *curve.ProjectivePoint, secrets PointExpSecrets, lambda int) (*ExpProof, *pedersen.Commitment, error) {
	if lambda <= 0 {
		return nil, nil, ErrSecurityLevelNotAchieved
	}
	expBase := expBaseOrDefault(baseGen, base)

	// Exp is committed against expBase rather than G so that the even-trial
	// relation z*base + CX + r'*H == A also closes for a non-default base.
	cxR, err := baseGen.Params().RandomScalar(rng)
	if err != nil {
		return nil, nil, err
	}
	cx := &pedersen.Commitment{C: curve.DoubleScalarMul(secrets.Exp, expBase, cxR, baseGen.H()), R: cxR}

	setups, err := pool.Run(ctx, workers, lambda, func(_ context.Context, _ int) (expTrialSetup, error) {
		alpha, err := baseGen.Params().RandomScalar(rng)
		if err != nil {
			return expTrialSetup{}, err
		}
		for alpha.IsZero() {
			alpha, err = baseGen.Params().RandomScalar(rng)
			if err != nil {
				return expTrialSetup{}, err
			}
		}
		r, err := baseGen.Params().RandomScalar(rng)
		if err != nil {
			return expTrialSetup{}, err
		}
		tProj := curve.ScalarMul(alpha, expBase)
		if tProj.IsIdentity() {
			return expTrialSetup{}, ErrIntermediateIsIdentity
		}
		t := tProj.ToAffine()
		a := tProj.Add(curve.ScalarMul(r, baseGen.H()))
		ctx_, err := cycleGen.Commit(curve.FieldToCycleScalar(t.X), rng)
		if err != nil {
			return expTrialSetup{}, err
		}
		cty, err := cycleGen.Commit(curve.FieldToCycleScalar(t.Y), rng)
		if err != nil {
			return expTrialSetup{}, err
		}
		return expTrialSetup{alpha: alpha, r: r, t: t, a: a, ctx: ctx_, cty: cty}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	tr := transcript.New(expHashID, cycleGen.Params())
	tr.AppendPoint(cx.Point())
	for _, s := range setups {
		tr.AppendPoint(s.a).AppendPoint(s.ctx.Point()).AppendPoint(s.cty.Point())
	}
	bits := tr.ChallengeBits(lambda)

	trials := make([]*ExpTrial, lambda)
	for i, s := range setups {
		trial := &ExpTrial{A: s.a, CTx: s.ctx.Point(), CTy: s.cty.Point()}
		if bits[i] {
			trial.Odd = true
			trial.Alpha = s.alpha
			trial.R = s.r
			trial.TxR = s.ctx.Randomness()
			trial.TyR = s.cty.Randomness()
		} else {
			z := s.alpha.Sub(secrets.Exp)
			rp := s.r.Sub(cx.Randomness())
			addend := addendPoint(expBase, secrets.Q, z)

			czx, err := cycleGen.Commit(curve.FieldToCycleScalar(secrets.Point.X), rng)
			if err != nil {
				return nil, nil, err
			}
			czy, err := cycleGen.Commit(curve.FieldToCycleScalar(secrets.Point.Y), rng)
			if err != nil {
				return nil, nil, err
			}
			addendAffine := addend.ToAffine()
			caddx := cycleGen.CommitWithRandomness(curve.FieldToCycleScalar(addendAffine.X), cycleGen.Params().ScalarZero())
			caddy := cycleGen.CommitWithRandomness(curve.FieldToCycleScalar(addendAffine.Y), cycleGen.Params().ScalarZero())

			addCommitments := &PointAddCommitments{Px: czx, Py: czy, Qx: caddx, Qy: caddy, Rx: s.ctx, Ry: s.cty}
			addProof, err := ConstructPointAdd(rng, cycleGen, addCommitments, secrets.Point, addendAffine, s.t)
			if err != nil {
				return nil, nil, err
			}

			trial.Z = z
			trial.Rp = rp
			trial.CZx, trial.CZy = czx.Point(), czy.Point()
			trial.CAddX, trial.CAddY = caddx.Point(), caddy.Point()
			trial.AddProof = addProof
		}
		trials[i] = trial
	}

	return &ExpProof{CX: cx.Point(), Trials: trials}, cx, nil
}

// Verify checks p against base (defaulting to baseGen.G()) and the optional
// public offset q over every trial in p, with the odd-trial openings run
// through workers (spec.md §4.15, §5). The commitments to the claimed point
// are not an input: each even trial carries its own (CZx, CZy).
func (p *ExpProof) Verify(ctx context.Context, rng io.Reader, workers *pool.Pool, baseGen, cycleGen *pedersen.Generator, base *curve.ProjectivePoint, q *curve.AffinePoint) error {
	if len(p.Trials) == 0 {
		return ErrSecurityLevelNotAchieved
	}
	expBase := expBaseOrDefault(baseGen, base)

	tr := transcript.New(expHashID, cycleGen.Params())
	tr.AppendPoint(p.CX)
	for _, trial := range p.Trials {
		tr.AppendPoint(trial.A).AppendPoint(trial.CTx).AppendPoint(trial.CTy)
	}
	bits := tr.ChallengeBits(len(p.Trials))

	// Per-trial checks that touch no shared state run concurrently through
	// workers; every even trial's linear relation and its PointAddProof are
	// then drained into two shared multimults (one per curve of the cycle)
	// and evaluated once each, instead of one evaluation per trial
	// (spec.md §5, following the batched verifier of exp.rs). Each trial's
	// linear relation is scaled by its own random coefficient.
	_, err := pool.Run(ctx, workers, len(p.Trials), func(_ context.Context, i int) (struct{}, error) {
		trial := p.Trials[i]
		if trial.Odd != bits[i] {
			return struct{}{}, ErrProofInvalid
		}
		if !trial.Odd {
			return struct{}{}, nil
		}
		tProj := curve.ScalarMul(trial.Alpha, expBase)
		if tProj.IsIdentity() {
			return struct{}{}, ErrIntermediateIsIdentity
		}
		wantA := tProj.Add(curve.ScalarMul(trial.R, baseGen.H()))
		if !wantA.Equal(trial.A) {
			return struct{}{}, ErrProofInvalid
		}
		t := tProj.ToAffine()
		if !cycleGen.Open(curve.FieldToCycleScalar(t.X), trial.TxR).Equal(trial.CTx) {
			return struct{}{}, ErrProofInvalid
		}
		if !cycleGen.Open(curve.FieldToCycleScalar(t.Y), trial.TyR).Equal(trial.CTy) {
			return struct{}{}, ErrProofInvalid
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}

	mmBase := multimult.New(baseGen.Params())
	mmCycle := multimult.New(cycleGen.Params())
	for _, trial := range p.Trials {
		if trial.Odd {
			continue
		}

		lambda, err := baseGen.Params().RandomScalar(rng)
		if err != nil {
			return err
		}
		mmBase.Insert(expBase, lambda.Mul(trial.Z))
		mmBase.Insert(p.CX, lambda)
		mmBase.Insert(baseGen.H(), lambda.Mul(trial.Rp))
		mmBase.Insert(trial.A, lambda.Neg())

		addend := addendPoint(expBase, q, trial.Z)
		addendAffine := addend.ToAffine()
		wantAddX := cycleGen.CommitWithRandomness(curve.FieldToCycleScalar(addendAffine.X), cycleGen.Params().ScalarZero()).Point()
		wantAddY := cycleGen.CommitWithRandomness(curve.FieldToCycleScalar(addendAffine.Y), cycleGen.Params().ScalarZero()).Point()
		if !wantAddX.Equal(trial.CAddX) || !wantAddY.Equal(trial.CAddY) {
			return ErrProofInvalid
		}

		if err := trial.AddProof.Drain(rng, cycleGen, trial.CZx, trial.CZy, trial.CAddX, trial.CAddY, trial.CTx, trial.CTy, mmCycle); err != nil {
			return err
		}
	}

	if !mmBase.Evaluate().IsIdentity() {
		return ErrProofInvalid
	}
	if !mmCycle.Evaluate().IsIdentity() {
		return ErrProofInvalid
	}
	return nil
}
