package structural

import (
	"regexp"

	"github.com/dtnitsch/blog-analyzer/models"
)

var (
	svgTagRe    = regexp.MustCompile(`(?i)<svg\b`)
	figureTagRe = regexp.MustCompile(`(?i)<figure\b`)
)

// AnalyzeCharts counts chart markup. SVG and figure tags usually wrap the
// same visual, so the chart count is the max of the two, not the sum.
func AnalyzeCharts(raw string) *models.ChartInfo {
	info := &models.ChartInfo{
		SVGCount:    len(svgTagRe.FindAllString(raw, -1)),
		FigureCount: len(figureTagRe.FindAllString(raw, -1)),
	}
	info.ChartCount = info.SVGCount
	if info.FigureCount > info.ChartCount {
		info.ChartCount = info.FigureCount
	}
	return info
}
