package ranking

// recencyHorizon is the number of years over which the recency weight
// decays linearly from 1 to 0.
const recencyHorizon = 5

// RecencyWeight maps a publication year to a decay weight in [0, 1].
// A nil year weighs 0. Future years clamp to zero lag, i.e. full weight.
// Weight falls linearly to 0 at recencyHorizon years before referenceYear.
func RecencyWeight(year *int, referenceYear int) float64 {
	if year == nil {
		return 0
	}
	lag := referenceYear - *year
	if lag < 0 {
		lag = 0
	}
	if lag >= recencyHorizon {
		return 0
	}
	return float64(recencyHorizon-lag) / recencyHorizon
}
