package density

import (
	"errors"
	"fmt"
)

// ErrInvalidK is returned by KnnLog when k < 1 (§4.6: "Fails if k = 0").
var ErrInvalidK = errors.New("density: k must be >= 1")

// ErrInvalidBandwidth is returned by the KDE variants when bandwidth2 is
// not strictly positive (§4.6: "Fails if h^2 <= 0").
var ErrInvalidBandwidth = errors.New("density: bandwidth2 must be > 0")

// Kind selects which estimator Estimate runs (§4.6, §6).
type Kind int

const (
	// KnnLog is the k-NN log-density estimator.
	KnnLog Kind = iota
	// KdeGaussianKnn is the Gaussian KDE estimator over a k-NN neighbor set.
	KdeGaussianKnn
	// KdeGaussianFullBrute is the Gaussian KDE estimator over all pairs.
	KdeGaussianFullBrute
)

// Spec configures Estimate. Only the fields relevant to Kind are read:
// KnnLog uses K and Eps; KdeGaussianKnn uses K and Bandwidth2;
// KdeGaussianFullBrute uses only Bandwidth2.
type Spec struct {
	Kind       Kind
	K          int
	Eps        float64
	Bandwidth2 float64
}

// KnnLogSpec builds a Spec for the k-NN log-density estimator.
func KnnLogSpec(k int, eps float64) Spec {
	return Spec{Kind: KnnLog, K: k, Eps: eps}
}

// KdeGaussianKnnSpec builds a Spec for the Gaussian KDE-over-k-NN estimator.
func KdeGaussianKnnSpec(k int, bandwidth2 float64) Spec {
	return Spec{Kind: KdeGaussianKnn, K: k, Bandwidth2: bandwidth2}
}

// KdeGaussianFullBruteSpec builds a Spec for the Gaussian KDE-over-all-pairs
// estimator.
func KdeGaussianFullBruteSpec(bandwidth2 float64) Spec {
	return Spec{Kind: KdeGaussianFullBrute, Bandwidth2: bandwidth2}
}

func unknownKindError(k Kind) error {
	return fmt.Errorf("density: unknown spec kind %d", k)
}
