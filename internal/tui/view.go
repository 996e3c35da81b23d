package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/opsboard/opsboard/internal/format"
	"github.com/opsboard/opsboard/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m *DashboardModel) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())

	if m.searching {
		sections = append(sections, sectionStyle.Render("Buscar: "+m.search.View()))
	} else if m.query != "" {
		sections = append(sections, labelStyle.Render(fmt.Sprintf("Filtro: %q (esc limpia)", m.query)))
	}

	if m.err != nil {
		sections = append(sections, errorStyle.Render("Error: "+m.err.Error()))
	}

	switch {
	case m.stats != nil:
		sections = append(sections,
			m.renderQuotationStats(),
			m.renderHistogram(),
			m.renderTopLists(),
			m.renderEventStats(),
		)
	case m.loading:
		frame := spinnerFrames[time.Now().UnixMilli()/120%int64(len(spinnerFrames))]
		sections = append(sections, helpStyle.Render(frame+" Cargando..."))
	}

	sections = append(sections, helpStyle.Render("r recargar · / buscar · q salir"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m *DashboardModel) renderHeader() string {
	title := titleStyle.Render("OpsBoard")
	if m.stats == nil {
		return title
	}

	var parts []string
	for _, name := range []string{"quotations", "events"} {
		p, ok := m.stats.health.Pipelines[name]
		if !ok || !p.Loaded {
			parts = append(parts, fmt.Sprintf("%s: sin datos", name))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %d filas (%s)", name, p.Rows, p.Source))
	}
	return title + "  " + labelStyle.Render(strings.Join(parts, " · "))
}

func (m *DashboardModel) renderQuotationStats() string {
	s := m.stats.quotations.Statistics
	lines := []string{
		statLine("Cotizaciones", format.Count(s.TotalItems)),
		statLine("Proveedores", format.Count(s.TotalProviders)),
		statLine("Precio promedio", format.CLP(s.AvgPrice)),
		statLine("Valor total", format.CLP(s.TotalValue)),
		statLine("Precio máximo", format.CLP(s.MaxPrice)),
		statLine("Precio mínimo", format.CLP(s.MinPrice)),
	}
	content := sectionTitleStyle.Render("Cotizaciones") + "\n" + strings.Join(lines, "\n")
	return sectionStyle.Render(content)
}

func (m *DashboardModel) renderEventStats() string {
	s := m.stats.events.Statistics
	lines := []string{
		statLine("Eventos", format.Count(s.TotalEvents)),
		statLine("Completados", format.Count(s.CompletedEvents)),
		statLine("Pendientes", format.Count(s.PendingEvents)),
		statLine("En progreso", format.Count(s.InProgressEvents)),
		statLine("Costo total", format.CLP(s.TotalCost)),
	}
	content := sectionTitleStyle.Render("Eventos") + "\n" + strings.Join(lines, "\n")
	return sectionStyle.Render(content)
}

func renderTopList(title string, items []model.TopCount) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, statLine(it.Value, format.Count(it.Count)))
	}
	if len(lines) == 0 {
		lines = append(lines, helpStyle.Render("Sin datos"))
	}
	return sectionTitleStyle.Render(title) + "\n" + strings.Join(lines, "\n")
}

func (m *DashboardModel) renderTopLists() string {
	providers := renderTopList("Top proveedores", m.stats.quotations.TopProviders)
	brands := renderTopList("Top marcas", m.stats.quotations.TopBrands)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		sectionStyle.Render(providers), " ", sectionStyle.Render(brands))
}

func (m *DashboardModel) renderHistogram() string {
	content := sectionTitleStyle.Render("Distribución de precios") + "\n" +
		renderPriceHistogram(m.stats.quotations.Histogram, m.chartWidth())
	return sectionStyle.Render(content)
}

func (m *DashboardModel) chartWidth() int {
	if m.width > 80 {
		return 72
	}
	if m.width > 40 {
		return m.width - 8
	}
	return 40
}

func statLine(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-18s", label)) + valueStyle.Render(value)
}
