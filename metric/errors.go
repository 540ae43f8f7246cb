package metric

import "errors"

// ErrUnknownMetric indicates an unrecognized metric name or value.
var ErrUnknownMetric = errors.New("metric: unknown metric")
