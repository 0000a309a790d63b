//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package vis renders the offline topic-overview chart. The output is a
// standalone HTML file under the artifact directory; the server only ever
// serves it, never rebuilds it.
package vis

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

const (
	CHRTWIDTH  = "1200px"
	CHRTHEIGHT = "600px"
)

// BuildTopicOverview reads the trend and label artifacts and writes the
// overview page: a line chart of per-year topic intensities above a bar
// chart of each topic's mean intensity across all years.
func BuildTopicOverview(lay store.Layout) error {
	trends, err := store.ReadTrends(lay.Trends())
	if err != nil {
		return fmt.Errorf("topic overview needs the trend table: %w", err)
	}
	labels, err := store.ReadLabels(lay.Labels())
	if err != nil {
		labels = make(map[int]string)
	}

	k := 0
	if len(trends) > 0 {
		k = len(trends[0].Means)
	}
	if k > vv.TOPICSSHOWN {
		k = vv.TOPICSSHOWN
	}

	names := make([]string, k)
	for i := 0; i < k; i++ {
		if l, ok := labels[i]; ok && l != "" {
			names[i] = l
		} else {
			names[i] = fmt.Sprintf("Topic %d", i+1)
		}
	}

	p := components.NewPage()
	p.AddCharts(trendlines(trends, names), meanbars(trends, names))

	f, err := os.Create(lay.TopicOverview())
	if err != nil {
		return fmt.Errorf("topic overview: %w", err)
	}
	defer f.Close()
	return p.Render(f)
}

// trendlines - one line per topic over the year axis
func trendlines(trends []store.TrendRow, names []string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: "Topic intensity by year"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
	)

	years := make([]string, len(trends))
	for i, r := range trends {
		years[i] = fmt.Sprintf("%d", r.Year)
	}
	line.SetXAxis(years)

	for t, name := range names {
		series := make([]opts.LineData, len(trends))
		for i, r := range trends {
			series[i] = opts.LineData{Value: r.Means[t]}
		}
		line.AddSeries(name, series)
	}
	return line
}

// meanbars - each topic's average intensity across the whole axis
func meanbars(trends []store.TrendRow, names []string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: "Mean topic intensity"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(names)
	means := make([]opts.BarData, len(names))
	for t := range names {
		sum := 0.0
		for _, r := range trends {
			sum += r.Means[t]
		}
		v := 0.0
		if len(trends) > 0 {
			v = sum / float64(len(trends))
		}
		means[t] = opts.BarData{Value: v}
	}
	bar.AddSeries("mean intensity", means)
	return bar
}
