package analytics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ARIMAForecaster fits an ARIMA(1,1,1) model with the two-stage
// Hannan-Rissanen least-squares procedure: an AR(1) fit on the differenced
// series supplies residuals, then the differenced series is regressed on its
// own lag and the lagged residual. Series too short for the second regression
// fall back to a drift forecast over the differenced mean.
type ARIMAForecaster struct{}

func (ARIMAForecaster) ForecastNext(series []float64) (float64, error) {
	n := len(series)
	if n < 3 {
		return 0, errors.New("arima: need at least 3 observations")
	}

	// First difference (the I term).
	w := make([]float64, n-1)
	for i := 1; i < n; i++ {
		w[i-1] = series[i] - series[i-1]
	}
	m := len(w)

	drift := series[n-1] + stat.Mean(w, nil)
	if m < 4 {
		return drift, nil
	}

	// Stage one: AR(1) on the differenced series, for residual estimates.
	alpha, beta := stat.LinearRegression(w[:m-1], w[1:], nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return drift, nil
	}
	resid := make([]float64, m)
	for t := 1; t < m; t++ {
		resid[t] = w[t] - alpha - beta*w[t-1]
	}

	// Stage two: regress w_t on [1, w_{t-1}, e_{t-1}].
	rows := m - 1
	design := mat.NewDense(rows, 3, nil)
	response := mat.NewDense(rows, 1, nil)
	for t := 1; t < m; t++ {
		design.Set(t-1, 0, 1)
		design.Set(t-1, 1, w[t-1])
		design.Set(t-1, 2, resid[t-1])
		response.Set(t-1, 0, w[t])
	}

	var qr mat.QR
	qr.Factorize(design)
	var coef mat.Dense
	if err := qr.SolveTo(&coef, false, response); err != nil {
		return drift, nil
	}
	c, phi, theta := coef.At(0, 0), coef.At(1, 0), coef.At(2, 0)

	wNext := c + phi*w[m-1] + theta*resid[m-1]
	forecast := series[n-1] + wNext
	if math.IsNaN(forecast) || math.IsInf(forecast, 0) {
		return drift, nil
	}
	return forecast, nil
}
