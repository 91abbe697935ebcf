package dataset

// Option configures a Generator at construction time.
type Option func(*Config)

// WithNumCols sets the number of feature columns.
func WithNumCols(n int) Option {
	return func(c *Config) {
		c.NumCols = n
	}
}

// WithNumRows sets the default number of rows per generated dataset.
func WithNumRows(n int) Option {
	return func(c *Config) {
		c.NumRows = n
	}
}

// WithNumImportant sets how many leading columns receive a synthesized
// effect. The final important set may differ once effect overrides are
// merged in.
func WithNumImportant(n int) Option {
	return func(c *Config) {
		c.NumImportant = n
	}
}

// WithNumInteractionTerms designates the last n columns as interaction
// terms.
func WithNumInteractionTerms(n int) Option {
	return func(c *Config) {
		c.NumInteractionTerms = n
	}
}

// WithInteractions supplies explicit interaction entries. They replace
// synthesized entries for the same columns, and the final interaction-term
// set is the key set after the merge.
func WithInteractions(interactions map[int]Interaction) Option {
	return func(c *Config) {
		c.Interactions = interactions
	}
}

// WithMonotonic forces all synthesized effect signs to +1.
func WithMonotonic(monotonic bool) Option {
	return func(c *Config) {
		c.Monotonic = monotonic
	}
}

// WithImportanceRanking selects the ground-truth ranking mode, one of
// RankingConstant or RankingScaled.
func WithImportanceRanking(mode string) Option {
	return func(c *Config) {
		c.ImportanceRanking = mode
	}
}

// WithEffects supplies explicit effect entries. They replace synthesized
// entries for the same columns; a nonzero override promotes its column to
// important even if it was not selected.
func WithEffects(effects map[int]Effect) Option {
	return func(c *Config) {
		c.Effects = effects
	}
}

// WithEffectTypes selects the effect catalog, one of EffectTypesAll,
// EffectTypesLinear or EffectTypesConstant.
func WithEffectTypes(types string) Option {
	return func(c *Config) {
		c.EffectTypes = types
	}
}

// WithFrequencies fixes the Bernoulli frequency of selected columns.
// Unspecified columns get a uniform random frequency drawn at construction.
func WithFrequencies(frequencies map[int]float64) Option {
	return func(c *Config) {
		c.Frequencies = frequencies
	}
}

// WithCorrelationScale sets the scale parameter of the correlation
// distribution.
func WithCorrelationScale(scale float64) Option {
	return func(c *Config) {
		c.CorrelationScale = scale
	}
}

// WithCorrelationDistribution selects the correlation distribution, one of
// DistUniform, DistNormal or DistBeta.
func WithCorrelationDistribution(distribution string) Option {
	return func(c *Config) {
		c.CorrelationDistribution = distribution
	}
}

// WithTarget names the target column.
func WithTarget(name string) Option {
	return func(c *Config) {
		c.Target = name
	}
}

// WithIntercept sets the constant added to every target value.
func WithIntercept(intercept float64) Option {
	return func(c *Config) {
		c.Intercept = intercept
	}
}

// WithNoiseDistribution selects the noise distribution, one of DistUniform,
// DistNormal or DistGamma.
func WithNoiseDistribution(distribution string) Option {
	return func(c *Config) {
		c.NoiseDistribution = distribution
	}
}

// WithNoiseScale sets the noise scale relative to the maximum absolute
// deterministic signal. Zero disables noise entirely.
func WithNoiseScale(scale float64) Option {
	return func(c *Config) {
		c.NoiseScale = scale
	}
}

// WithSeed fixes the RNG seed. Without this option the seed is drawn
// randomly at construction and recorded, so any run can still be
// reproduced afterwards.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
		c.seedSet = true
	}
}

// GenerateOption overrides one stored configuration value for a single
// GenerateData call. The stored configuration itself is never mutated.
type GenerateOption func(*generateParams)

type generateParams struct {
	numRows           int
	frequencies       []float64
	effects           []Effect
	interactions      map[int]Interaction
	target            string
	intercept         float64
	noiseDistribution string
	noiseScale        float64
}

// Rows overrides the number of rows for this call.
func Rows(n int) GenerateOption {
	return func(p *generateParams) {
		p.numRows = n
	}
}

// Frequencies overrides the Bernoulli frequency of selected columns for
// this call; unspecified columns keep their stored frequency.
func Frequencies(frequencies map[int]float64) GenerateOption {
	return func(p *generateParams) {
		for col, freq := range frequencies {
			if col >= 0 && col < len(p.frequencies) {
				p.frequencies[col] = freq
			}
		}
	}
}

// Effects replaces the effects mapping for this call. The slice must have
// one entry per column.
func Effects(effects []Effect) GenerateOption {
	return func(p *generateParams) {
		p.effects = effects
	}
}

// Interactions replaces the interaction mapping for this call.
func Interactions(interactions map[int]Interaction) GenerateOption {
	return func(p *generateParams) {
		p.interactions = interactions
	}
}

// TargetName overrides the target column name for this call.
func TargetName(name string) GenerateOption {
	return func(p *generateParams) {
		p.target = name
	}
}

// Intercept overrides the intercept for this call.
func Intercept(intercept float64) GenerateOption {
	return func(p *generateParams) {
		p.intercept = intercept
	}
}

// NoiseDistribution overrides the noise distribution for this call.
func NoiseDistribution(distribution string) GenerateOption {
	return func(p *generateParams) {
		p.noiseDistribution = distribution
	}
}

// NoiseScale overrides the noise scale for this call.
func NoiseScale(scale float64) GenerateOption {
	return func(p *generateParams) {
		p.noiseScale = scale
	}
}
