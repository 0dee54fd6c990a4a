// SPDX-License-Identifier: MIT

package stats

// DefaultDDOF is the delta degrees of freedom used when WithDDOF is absent:
// the unbiased sample estimator.
const DefaultDDOF = 1

// Option configures the variance-family reductions.
type Option func(*options)

type options struct {
	ddof int
}

// WithDDOF sets the delta degrees of freedom: 0 gives the population
// estimator, 1 the sample estimator. Negative values make the reduction fail
// with ErrNegativeDDOF.
func WithDDOF(k int) Option {
	return func(o *options) { o.ddof = k }
}

func gatherOptions(user ...Option) options {
	o := options{ddof: DefaultDDOF}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o options) validate() error {
	if o.ddof < 0 {
		return ErrNegativeDDOF
	}
	return nil
}
