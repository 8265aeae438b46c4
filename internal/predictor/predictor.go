package predictor

// Predictor maps a (location, cuisine) pair to a point price estimate.
// The estimation engine treats it as an opaque collaborator and must
// keep working when it fails, so implementations are swappable with a
// stub in tests.
type Predictor interface {
	Predict(location, cuisine string) (float64, error)
}
