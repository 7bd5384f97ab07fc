package steps

import (
	"fmt"

	"growthplan-backend/plan/blocks"
	"growthplan-backend/plan/finance"
	"growthplan-backend/plan/model"
)

// Price-band thresholds for the private price step.
const (
	nearMarketFactor  = 1.05
	aboveMarketFactor = 1.15
)

// Retention bands for the private retention step.
const (
	retentionLowCeiling  = 40
	retentionGoodCeiling = 55
)

// maxComfortableSources: with more acquisition channels than this, the
// diversification step adds little.
const maxComfortableSources = 2

var privateRules = []rule{
	{when: always, build: func(ruleContext) Step {
		return Step{
			ID:     "plan-30-days",
			Title:  "Пройти план на 30 дней",
			Detail: "Четыре недели, каждая со своим фокусом: база, цены, возвращаемость, новые клиенты.",
			Metric: "30 дней",
			Blocks: []blocks.ID{blocks.Plan30Days, blocks.MoneyTracking},
		}
	}},
	{
		when: func(ctx ruleContext) bool {
			price := ctx.profile.PrivatePrice
			return price > 0 && float64(price) < float64(ctx.benchmark.AvgPrice)*belowMarketFactor
		},
		build: raiseToMarketStep,
	},
	{
		when: func(ctx ruleContext) bool {
			price := float64(ctx.profile.PrivatePrice)
			avg := float64(ctx.benchmark.AvgPrice)
			return ctx.profile.PrivatePrice > 0 && price >= avg*belowMarketFactor && price < avg*nearMarketFactor
		},
		build: func(ctx ruleContext) Step {
			target := finance.RoundHalfUp(float64(ctx.benchmark.AvgPrice) * aboveMarketFactor)
			gain := finance.RoundHalfUp(float64(target-ctx.profile.PrivatePrice) * float64(ctx.profile.PrivateClients) * 4)
			return Step{
				ID:     "raise-above-market",
				Title:  fmt.Sprintf("Выйти на цену выше рынка: %s ₽", finance.FormatMoney(target)),
				Detail: "Вы уже в рынке. Следующий шаг — цена выше средней, подкреплённая сервисом и портфолио.",
				Metric: "+" + finance.FormatMoney(gain) + " ₽/мес",
				Data:   Data{TargetPrice: target, GainMonthly: gain},
				Blocks: []blocks.ID{blocks.PriceRaiseAbove, blocks.PriceValueFraming},
			}
		},
	},
	{
		when: func(ctx ruleContext) bool { return ctx.profile.RepeatRate < retentionLowCeiling },
		build: func(ruleContext) Step {
			return Step{
				ID:     "fix-low-retention",
				Title:  "Починить возвращаемость",
				Detail: "Меньше 40% клиентов приходят снова — практика течёт. Сначала закрываем эту дыру, потом растём.",
				Metric: "возвращаемость 50%+",
				Blocks: []blocks.ID{blocks.RetentionFixLow, blocks.RemindersSystem},
			}
		},
	},
	{
		when: func(ctx ruleContext) bool {
			r := ctx.profile.RepeatRate
			return r >= retentionLowCeiling && r < retentionGoodCeiling
		},
		build: func(ruleContext) Step {
			return Step{
				ID:     "push-retention-55",
				Title:  "Дожать возвращаемость до 55%+",
				Detail: "База уже есть — осталось выстроить повторную запись прямо на визите и напоминания.",
				Metric: "возвращаемость 55%+",
				Blocks: []blocks.ID{blocks.RetentionPush55, blocks.RemindersSystem},
			}
		},
	},
	{
		when: func(ctx ruleContext) bool { return len(ctx.profile.Sources) <= maxComfortableSources },
		build: func(ruleContext) Step {
			return Step{
				ID:     "diversify-sources",
				Title:  "Расширить источники клиентов",
				Detail: "Один-два канала — это риск: просадка любого из них сразу бьёт по записи.",
				Metric: "+2 новых канала",
				Blocks: []blocks.ID{blocks.SourcesDiversify, blocks.SourceMatrix},
			}
		},
	},
	{when: always, build: salesScriptStep},
	{
		when: func(ctx ruleContext) bool { return !ctx.profile.HasCRM },
		build: func(ruleContext) Step {
			return Step{
				ID:     "setup-crm",
				Title:  "Завести учёт клиентов",
				Detail: "Записная книжка не напомнит клиенту о визите. Простая CRM делает это за вас.",
				Metric: "запуск за неделю",
				Blocks: []blocks.ID{blocks.CRMSetup, blocks.CRMTools},
			}
		},
	},
	{
		when: func(ctx ruleContext) bool { return ctx.profile.ScalingInterest == model.ScalingTeach },
		build: func(ruleContext) Step {
			return Step{
				ID:     "start-teaching",
				Title:  "Начать обучать",
				Detail: "Ваш опыт — второй продукт: мастер-классы и мини-курсы монетизируют его без новых часов у кресла.",
				Metric: "первый поток за 2 месяца",
				Blocks: []blocks.ID{blocks.TeachStart, blocks.TeachFormats},
			}
		},
	},
	{
		when: func(ctx ruleContext) bool {
			return ctx.profile.ScalingInterest == model.ScalingSpace && hasOwnSpace(ctx.profile.WorkPlace)
		},
		build: func(ruleContext) Step {
			return Step{
				ID:     "expand-with-team",
				Title:  "Расширяться командой",
				Detail: "Помещение уже есть — следующий рычаг не ваши руки, а мастера, которые работают рядом.",
				Metric: "первый мастер за 3 месяца",
				Blocks: []blocks.ID{blocks.SpaceTeam, blocks.SpaceEconomics},
			}
		},
	},
	{
		when: func(ctx ruleContext) bool {
			return ctx.profile.ScalingInterest == model.ScalingSpace && !hasOwnSpace(ctx.profile.WorkPlace)
		},
		build: func(ruleContext) Step {
			return Step{
				ID:     "open-own-space",
				Title:  "Открыть собственное пространство",
				Detail: "Своя студия снимает потолок аренды кресла и даёт место под команду и обучение.",
				Metric: "план открытия за 6 месяцев",
				Blocks: []blocks.ID{blocks.SpaceOpenOwn, blocks.SpaceEconomics},
			}
		},
	},
}

func hasOwnSpace(workPlace string) bool {
	return workPlace == "rent-studio" || workPlace == "own"
}
