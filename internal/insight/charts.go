// Package insight turns computed analysis output into renderable
// chart specifications. Builders are pure functions; rendering is the
// presentation layer's job.
package insight

import "strconv"

// palette is applied to categorical charts, cycling when there are
// more labels than colors.
var palette = []string{"#6366F1", "#EC4899", "#8B5CF6", "#06B6D4", "#10B981"}

// ChartSpec is a renderer-agnostic chart description.
type ChartSpec struct {
	Type   string     `json:"type"` // bar, pie, gauge
	Title  string     `json:"title"`
	Labels []string   `json:"labels,omitempty"`
	Values []float64  `json:"values,omitempty"`
	Colors []string   `json:"colors,omitempty"`
	Hole   float64    `json:"hole,omitempty"`
	Gauge  *GaugeSpec `json:"gauge,omitempty"`
}

// GaugeSpec describes a gauge dial with colored bands.
type GaugeSpec struct {
	Value     float64 `json:"value"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	BarColor  string  `json:"bar_color"`
	Bands     []Band  `json:"bands"`
	Threshold float64 `json:"threshold"`
}

// Band is a colored value range on a gauge axis.
type Band struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// Topic is a weighted topic cluster for the pie chart.
type Topic struct {
	ID     int     `json:"topic_id"`
	Weight float64 `json:"weight"`
}

// EntityChart builds a bar chart of entity occurrence counts. Labels
// and counts are parallel; zero-count entries are skipped.
func EntityChart(labels []string, counts []int) ChartSpec {
	spec := ChartSpec{
		Type:  "bar",
		Title: "Named Entities Distribution",
	}
	for i, label := range labels {
		if i >= len(counts) || counts[i] == 0 {
			continue
		}
		spec.Labels = append(spec.Labels, label)
		spec.Values = append(spec.Values, float64(counts[i]))
	}
	spec.Colors = cycle(len(spec.Labels))
	return spec
}

// TopicChart builds a donut chart of topic weights.
func TopicChart(topics []Topic) ChartSpec {
	spec := ChartSpec{
		Type:  "pie",
		Title: "Topic Distribution",
		Hole:  0.3,
	}
	for _, topic := range topics {
		spec.Labels = append(spec.Labels, topicLabel(topic.ID))
		spec.Values = append(spec.Values, topic.Weight)
	}
	return spec
}

// KeyPhrasesChart builds a bar chart of phrase importance scores.
func KeyPhrasesChart(phrases []string, scores []float64) ChartSpec {
	spec := ChartSpec{
		Type:  "bar",
		Title: "Key Phrases Importance",
	}
	for i, phrase := range phrases {
		if i >= len(scores) {
			break
		}
		spec.Labels = append(spec.Labels, phrase)
		spec.Values = append(spec.Values, scores[i])
	}
	spec.Colors = cycle(len(spec.Labels))
	return spec
}

// SentimentGauge builds a [-1, 1] gauge for a sentiment score, with
// red/yellow/green bands around the neutral zone.
func SentimentGauge(score float64) ChartSpec {
	if score < -1 {
		score = -1
	}
	if score > 1 {
		score = 1
	}
	return ChartSpec{
		Type:  "gauge",
		Title: "Sentiment Score",
		Gauge: &GaugeSpec{
			Value:    score,
			Min:      -1,
			Max:      1,
			BarColor: "darkblue",
			Bands: []Band{
				{From: -1, To: -0.1, Color: "lightcoral"},
				{From: -0.1, To: 0.1, Color: "lightyellow"},
				{From: 0.1, To: 1, Color: "lightgreen"},
			},
			Threshold: score,
		},
	}
}

func topicLabel(id int) string {
	return "Topic " + strconv.Itoa(id)
}

func cycle(n int) []string {
	if n == 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out
}
