package adapters

import (
	"github.com/de-tools/story-atlas/pkg/models/api"
	"github.com/de-tools/story-atlas/pkg/models/domain"
)

func MapDomainStoryToApi(story domain.Story) api.Story {
	scenes := make([]api.Scene, 0, len(story.Scenes))
	for _, scene := range story.Scenes {
		scenes = append(scenes, MapDomainSceneToApi(scene))
	}
	return api.Story{
		Title:       story.Title,
		RecordCount: story.RecordCount,
		Scenes:      scenes,
	}
}

func MapDomainSceneToApi(scene domain.SceneDescriptor) api.Scene {
	kpis := make([]api.KPI, 0, len(scene.KPIs))
	for _, kpi := range scene.KPIs {
		kpis = append(kpis, api.KPI{
			Label:  kpi.Label,
			Value:  kpi.Value,
			Accent: string(kpi.Accent),
		})
	}
	return api.Scene{
		ID:       scene.ID,
		Title:    scene.Title,
		Subtitle: scene.Subtitle,
		KPIs:     kpis,
		Chart:    MapDomainChartToApi(scene.Chart),
		NoData:   scene.IsNoData(),
	}
}

// MapDomainChartToApi converts decimals to float64; the JSON surface is for plotting only.
func MapDomainChartToApi(chart domain.ChartSpec) api.Chart {
	series := make([]api.ChartSeries, 0, len(chart.Series))
	for _, s := range chart.Series {
		out := api.ChartSeries{Name: s.Name, Color: s.Color}
		for _, p := range s.Data {
			out.Data = append(out.Data, api.ChartPoint{Label: p.Label, Value: p.Value.InexactFloat64()})
		}
		for _, p := range s.Points {
			point := api.ScatterPoint{X: p.X.InexactFloat64(), Y: p.Y.InexactFloat64()}
			if len(p.Hover) > 0 {
				point.Hover = make(map[string]string, len(p.Hover))
				for _, h := range p.Hover {
					point.Hover[h.Key] = h.Value
				}
			}
			out.Points = append(out.Points, point)
		}
		series = append(series, out)
	}

	return api.Chart{
		Kind:        string(chart.Kind),
		Title:       chart.Title,
		XKey:        chart.XKey,
		YKeys:       chart.YKeys,
		ColorKey:    chart.ColorKey,
		HoverKeys:   chart.HoverKeys,
		XLabel:      chart.XLabel,
		YLabel:      chart.YLabel,
		LegendTitle: chart.LegendTitle,
		Series:      series,
		Style: api.ChartStyle{
			Template:    chart.Style.Template,
			TitleAlign:  chart.Style.TitleAlign,
			Transparent: chart.Style.Transparent,
			Markers:     chart.Style.Markers,
			BarMode:     chart.Style.BarMode,
		},
	}
}
