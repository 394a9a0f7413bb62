// SPDX-License-Identifier: MIT

// Package quantum: projective measurement in the computational basis.
// Measurement is the only nondeterministic operation in the package; its
// random source is injected via WithRand so collapse outcomes are fully
// reproducible under a seeded source.

package quantum

// Measurement reports a single projective collapse: the observed basis
// index, its Born probability, and the post-measurement basis state.
type Measurement struct {
	Outcome     int
	Probability float64
	Collapsed   *StateVector
}

// Measure performs a probabilistic projective collapse of v in the
// computational basis. Outcome i is selected with probability
// |cᵢ|²/‖v‖² by walking the cumulative distribution against one draw
// from the random source (WithRand; a time-seeded source is used when
// none is injected). Returns ErrInvalidOperation for the zero vector,
// which has no outcome distribution.
func (v *StateVector) Measure(opts ...Option) (*Measurement, error) {
	o := gatherOptions(opts...)

	total, _ := v.normSq().Float64()
	if total <= 0 {
		return nil, ErrInvalidOperation
	}

	probs := make([]float64, v.dim)
	for i, c := range v.comps {
		p, _ := c.AbsSq().Float64()
		probs[i] = p / total
	}

	// Walk the cumulative distribution; the final index absorbs any
	// floating-point shortfall so a draw near 1.0 cannot fall through.
	r := o.randSource().Float64()
	outcome := v.dim - 1
	cum := 0.0
	for i, p := range probs {
		cum += p
		if r < cum {
			outcome = i

			break
		}
	}

	collapsed, err := NewBasisState(v.dim, outcome, WithPrecision(v.prec))
	if err != nil {
		return nil, err
	}

	o.logger.Debug().
		Int("outcome", outcome).
		Float64("probability", probs[outcome]).
		Msg("projective measurement")
	o.emit(OpMeasure, collapsed.ContentHash)

	return &Measurement{
		Outcome:     outcome,
		Probability: probs[outcome],
		Collapsed:   collapsed,
	}, nil
}
