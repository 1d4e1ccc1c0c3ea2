package geolayer

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrShortLine is recorded for roads with fewer than two distinct points.
var ErrShortLine = errors.New("line needs at least two points")

// FeatureError ties a per-feature failure to the feature's index in the
// collection.
type FeatureError struct {
	Index int
	Err   error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("feature %d: %v", e.Index, e.Err)
}

func (e *FeatureError) Unwrap() error {
	return e.Err
}

// SkippedFeatures flattens an error returned by GeoLayer.Skipped into the
// individual feature errors.
func SkippedFeatures(err error) []*FeatureError {
	var out []*FeatureError
	for _, e := range multierr.Errors(err) {
		var fe *FeatureError
		if errors.As(e, &fe) {
			out = append(out, fe)
		}
	}
	return out
}
