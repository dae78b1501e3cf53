package diamond

import (
	"errors"
)

// ErrEmptyMetric is returned by NewMetric for a metric without values.
var ErrEmptyMetric = errors.New("diamond: empty metric")

// Metric is a named series of values, one per entity.
//
// Metric is immutable: NewMetric copies the input and Data returns a copy.
type Metric struct {
	data []float64
	name string
	desc string
}

// NewMetric returns a metric with the given values, name and description.
// NaN values are allowed and count as zero when charted.
func NewMetric(data []float64, name, desc string) (Metric, error) {
	if len(data) == 0 {
		return Metric{}, ErrEmptyMetric
	}
	return Metric{
		data: append([]float64(nil), data...),
		name: name,
		desc: desc,
	}, nil
}

// Data returns a copy of the metric values.
func (m Metric) Data() []float64 {
	return append([]float64(nil), m.data...)
}

// Name returns the metric name, shown in bold in the metric's panel.
func (m Metric) Name() string { return m.name }

// Desc returns the metric description.
func (m Metric) Desc() string { return m.desc }

// Len returns the number of values.
func (m Metric) Len() int { return len(m.data) }
