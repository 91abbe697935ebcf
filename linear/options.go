package linear

// Option is a function that configures LinearRegression
type Option func(*LinearRegression)

// WithAlpha sets the L2 (ridge) penalty strength. Zero means ordinary
// least squares.
func WithAlpha(alpha float64) Option {
	return func(lr *LinearRegression) {
		lr.alpha = alpha
	}
}

// WithFitIntercept sets whether to calculate the intercept
func WithFitIntercept(fit bool) Option {
	return func(lr *LinearRegression) {
		lr.fitIntercept = fit
	}
}
