package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/opsboard/opsboard/internal/model"
)

const histogramHeight = 6

var bucketStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Background(lipgloss.Color("39")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Background(lipgloss.Color("45")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Background(lipgloss.Color("81")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Background(lipgloss.Color("208")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(lipgloss.Color("196")),
}

// renderPriceHistogram draws the fixed price buckets as a bar chart with a
// per-bucket legend alongside.
func renderPriceHistogram(buckets []model.PriceBucket, width int) string {
	if len(buckets) == 0 {
		return helpStyle.Render("Sin datos")
	}

	legendWidth := 22
	chartWidth := width - legendWidth - 2
	if chartWidth < 20 {
		chartWidth = 20
	}

	bc := barchart.New(chartWidth, histogramHeight,
		barchart.WithBarGap(1),
		barchart.WithNoAxis(),
	)
	for i, b := range buckets {
		style := bucketStyles[i%len(bucketStyles)]
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: b.Label, Value: float64(b.Count), Style: style},
			},
		})
	}
	bc.Draw()

	legendLines := make([]string, 0, len(buckets))
	for i, b := range buckets {
		style := lipgloss.NewStyle().Foreground(bucketStyles[i%len(bucketStyles)].GetForeground())
		legendLines = append(legendLines, style.Render(fmt.Sprintf("%-14s %5d", b.Label, b.Count)))
	}

	chartLines := strings.Split(bc.View(), "\n")
	height := max(len(chartLines), len(legendLines))

	var out []string
	for i := 0; i < height; i++ {
		chartLine := ""
		legendLine := ""
		if i < len(chartLines) {
			chartLine = chartLines[i]
		}
		if i < len(legendLines) {
			legendLine = legendLines[i]
		}
		pad := chartWidth - lipgloss.Width(chartLine)
		if pad > 0 {
			chartLine += strings.Repeat(" ", pad)
		}
		out = append(out, chartLine+"  "+legendLine)
	}
	return strings.Join(out, "\n")
}
