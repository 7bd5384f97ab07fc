package assemble

import (
	"fmt"
	"html/template"
	"strings"

	"growthplan-backend/plan/blocks"
	"growthplan-backend/plan/steps"
	"growthplan-backend/plan/view"
)

// Fixed page overhead around the step sections: title, situation and
// overview up front, two closing pages at the end.
const (
	leadPages    = 3
	closingPages = 2
	// stepIntroPages precede each step's content blocks.
	stepIntroPages = 1
)

// Page is one rendered document page, ready for the external rasterizer.
type Page struct {
	Number int    `json:"number"`
	Total  int    `json:"total"`
	HTML   string `json:"html"`
}

// EstimateTotalPages computes the document length from the step list and the
// declared block page counts. It runs in a single pass before rendering and
// must agree with the page sequence Assemble produces.
func EstimateTotalPages(list []steps.Step) int {
	total := leadPages + closingPages
	for _, step := range list {
		total += stepIntroPages
		for _, id := range step.Blocks {
			total += blocks.PageCount(id)
		}
	}
	return total
}

// Assemble renders the full page sequence: title, situation, overview, each
// step's intro and content blocks, and the closing section. Every page is
// wrapped in chrome carrying the "N / total" marker.
func Assemble(m view.Model, list []steps.Step) []Page {
	total := EstimateTotalPages(list)
	pages := make([]Page, 0, total)

	add := func(body string) {
		n := len(pages) + 1
		pages = append(pages, Page{Number: n, Total: total, HTML: chrome(body, n, total)})
	}

	add(titlePage(m))
	add(situationPage(m))
	add(overviewPage(m, list))

	for i, step := range list {
		add(stepIntroPage(i+1, step))
		for _, id := range step.Blocks {
			bodies, ok := blocks.Render(id, m)
			if !ok {
				// Unregistered ids contribute zero pages; the blocks
				// registry test keeps this branch unreachable for ids the
				// selector emits.
				continue
			}
			for _, body := range bodies {
				add(body)
			}
		}
	}

	add(closingSummaryPage(m, list))
	add(closingFarewellPage(m))

	return pages
}

func chrome(body string, page, total int) string {
	var b strings.Builder
	b.WriteString(`<div class="page">` + "\n")
	fmt.Fprintf(&b, `<header class="page-header"><span class="brand">План роста</span><span class="pageno">%d / %d</span></header>`+"\n", page, total)
	b.WriteString(body)
	b.WriteString("\n" + `<footer class="page-footer">Персональный план развития мастера</footer>` + "\n</div>")
	return b.String()
}

func titlePage(m view.Model) string {
	return fmt.Sprintf(`<section class="title">
  <h1>Персональный план роста</h1>
  <p class="for">для мастера: %s</p>
  <p class="date">составлен %s</p>
</section>`, esc(m.Profile.Name), esc(m.GeneratedAt))
}

func situationPage(m view.Model) string {
	return fmt.Sprintf(`<section class="situation">
  <h2>Ваша ситуация</h2>
  <ul>
    <li>Формат работы: %s</li>
    <li>Город: %s</li>
    <li>Рабочее место: %s</li>
    <li>Возвращаемость клиентов: %d%%</li>
  </ul>
  <p class="income">Текущий доход: <strong>%s ₽/мес</strong></p>
</section>`, esc(m.WorkModeName), esc(m.CityName), esc(m.WorkPlaceName), m.Profile.RepeatRate, esc(m.MonthlyProfitFmt))
}

func overviewPage(m view.Model, list []steps.Step) string {
	var b strings.Builder
	b.WriteString("<section class=\"overview\">\n  <h2>Ваши шаги</h2>\n  <ol>\n")
	for _, step := range list {
		fmt.Fprintf(&b, "    <li><strong>%s</strong> — %s</li>\n", esc(step.Title), esc(step.Metric))
	}
	b.WriteString("  </ol>\n</section>")
	return b.String()
}

func stepIntroPage(n int, step steps.Step) string {
	return fmt.Sprintf(`<section class="step-intro">
  <p class="step-no">Шаг %d</p>
  <h2>%s</h2>
  <p>%s</p>
  <p class="metric">Ориентир: %s</p>
</section>`, n, esc(step.Title), esc(step.Detail), esc(step.Metric))
}

func closingSummaryPage(m view.Model, list []steps.Step) string {
	return fmt.Sprintf(`<section class="closing">
  <h2>Что дальше</h2>
  <p>У вас %d %s и понятный порядок. Начните с первого — остальные обопрутся на него.</p>
  <p>Возвращайтесь к плану раз в неделю и отмечайте, что сделано.</p>
</section>`, len(list), stepsWord(len(list)))
}

func closingFarewellPage(m view.Model) string {
	return fmt.Sprintf(`<section class="farewell">
  <h2>%s, у вас получится</h2>
  <p>Этот план собран по вашим собственным цифрам. Они уже показывают, куда расти — дальше дело за регулярностью.</p>
</section>`, esc(m.Profile.Name))
}

func stepsWord(n int) string {
	switch {
	case n == 1:
		return "шаг"
	case n >= 2 && n <= 4:
		return "шага"
	default:
		return "шагов"
	}
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}
