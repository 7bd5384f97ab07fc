package steps

import (
	"fmt"

	"growthplan-backend/plan/blocks"
	"growthplan-backend/plan/finance"
)

// belowMarketFactor gates the price-raise rule: a private price under 85% of
// the city benchmark is considered clearly underpriced.
const belowMarketFactor = 0.85

var hybridExitRules = []rule{
	{when: underpricedPrivate, build: raiseToMarketStep},
	{
		when: func(ctx ruleContext) bool { return ctx.perClient > 0 },
		build: func(ctx ruleContext) Step {
			target := finance.CeilDiv(float64(ctx.breakdown.Total), float64(ctx.perClient)*4)
			return Step{
				ID:     "reach-target-clients",
				Title:  fmt.Sprintf("Выйти на %d своих клиентов в неделю", target),
				Detail: "С таким числом записей собственная практика полностью замещает текущий суммарный доход.",
				Metric: fmt.Sprintf("%d клиентов/нед", target),
				Data:   Data{TargetClients: target},
				Blocks: []blocks.ID{blocks.TargetClientsMath, blocks.ExitIncomeCompare},
			}
		},
	},
	{when: always, build: channelsStep},
	{when: always, build: salesScriptStep},
	{when: lowRetention, build: retentionImproveStep},
}

var hybridGrowRules = []rule{
	{when: underpricedPrivate, build: raiseToMarketStep},
	{when: always, build: func(ctx ruleContext) Step {
		gain := ctx.perClient * 3 * 4
		return Step{
			ID:     "add-private-clients",
			Title:  "Добавить 3–5 своих клиентов в неделю",
			Detail: "Свободные окна между салонными сменами — самый дешёвый способ поднять доход без смены формата.",
			Metric: "+" + finance.FormatMoney(gain) + " ₽/мес",
			Data:   Data{TargetClients: 3, GainMonthly: gain},
			Blocks: []blocks.ID{blocks.AddPrivateClients, blocks.HybridBalance},
		}
	}},
	{when: always, build: channelsStep},
	{when: always, build: salesScriptStep},
	{when: lowRetention, build: retentionImproveStep},
}

// underpricedPrivate requires a non-zero price: a zero price means the
// private branch is not actually running yet, and a raise target built on it
// would be meaningless.
func underpricedPrivate(ctx ruleContext) bool {
	price := ctx.profile.PrivatePrice
	return price > 0 && float64(price) < float64(ctx.benchmark.AvgPrice)*belowMarketFactor
}

func raiseToMarketStep(ctx ruleContext) Step {
	target := ctx.benchmark.AvgPrice
	gain := finance.RoundHalfUp(float64(target-ctx.profile.PrivatePrice) * float64(ctx.profile.PrivateClients) * 4)
	return Step{
		ID:     "raise-to-market",
		Title:  fmt.Sprintf("Поднять цену до %s ₽", finance.FormatMoney(target)),
		Detail: fmt.Sprintf("Ваша цена заметно ниже средней по городу (%s ₽). Рынок уже готов платить больше.", finance.FormatMoney(ctx.benchmark.AvgPrice)),
		Metric: "+" + finance.FormatMoney(gain) + " ₽/мес",
		Data:   Data{TargetPrice: target, GainMonthly: gain},
		Blocks: []blocks.ID{blocks.PriceRaiseMarket, blocks.PriceCommunication},
	}
}

func channelsStep(ruleContext) Step {
	return Step{
		ID:     "build-channels",
		Title:  "Развить каналы привлечения",
		Detail: "Запись не должна зависеть от одного источника: соцсети, Авито и рекомендации страхуют друг друга.",
		Metric: "3 работающих канала",
		Blocks: []blocks.ID{blocks.ChannelsOverview, blocks.ChannelSocial, blocks.ChannelAvito, blocks.ChannelPartners},
	}
}
