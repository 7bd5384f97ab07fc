package steps

import (
	"fmt"

	"growthplan-backend/plan/blocks"
	"growthplan-backend/plan/finance"
	"growthplan-backend/plan/model"
)

// exitPriceFactor is the assumed starting private price for a master leaving
// a salon: 85% of the current salon price tag.
const exitPriceFactor = 0.85

// percentCeiling caps the negotiated mastercut target.
const percentCeiling = 60

var salonExitRules = []rule{
	{when: always, build: func(ruleContext) Step {
		return Step{
			ID:     "choose-workplace",
			Title:  "Выбрать рабочее место",
			Detail: "Сравните аренду кресла, коворкинг и работу на дому: что из этого окупается при вашей загрузке.",
			Metric: "1–2 недели на выбор",
			Blocks: []blocks.ID{blocks.WorkplaceOptions, blocks.WorkplaceCosts, blocks.WorkplaceChecklist},
		}
	}},
	{when: always, build: func(ruleContext) Step {
		return Step{
			ID:     "build-channels",
			Title:  "Запустить несколько каналов записи",
			Detail: "Соцсети, Авито и сарафан работают вместе: один канал не даст стабильной записи на старте.",
			Metric: "3 канала за месяц",
			Blocks: []blocks.ID{blocks.ChannelsOverview, blocks.ChannelSocial, blocks.ChannelAvito, blocks.ChannelReferral},
		}
	}},
	{when: always, build: salesScriptStep},
	{
		// Division by the assumed private price: a zero salon price means
		// the target is undefined, so the step is skipped entirely.
		when: func(ctx ruleContext) bool { return ctx.profile.SalonPrice > 0 },
		build: func(ctx ruleContext) Step {
			assumedPrice := float64(ctx.profile.SalonPrice) * exitPriceFactor
			target := finance.CeilDiv(float64(ctx.breakdown.Total), assumedPrice*4)
			gain := finance.RoundHalfUp(assumedPrice*float64(ctx.profile.SalonClients)*4) - ctx.breakdown.Total
			if gain < 0 {
				gain = 0
			}
			return Step{
				ID:     "reach-target-clients",
				Title:  fmt.Sprintf("Выйти на %d своих клиентов в неделю", target),
				Detail: "Столько записей в неделю по собственной цене закрывают ваш текущий салонный доход.",
				Metric: "+" + finance.FormatMoney(gain) + " ₽/мес после ухода",
				Data:   Data{TargetClients: target, GainMonthly: gain},
				Blocks: []blocks.ID{blocks.TargetClientsMath, blocks.ExitIncomeCompare},
			}
		},
	},
	{when: always, build: func(ruleContext) Step {
		return Step{
			ID:     "collect-reviews",
			Title:  "Собрать 10 отзывов",
			Detail: "Отзывы — главный аргумент для клиента, который видит вас впервые вне салона.",
			Metric: "10 отзывов за 3 недели",
			Blocks: []blocks.ID{blocks.ReviewsCollect, blocks.ReviewsUsage},
		}
	}},
	{when: always, build: func(ruleContext) Step {
		return Step{
			ID:     "exit-readiness",
			Title:  "Пройти чек-лист готовности к уходу",
			Detail: "Финансовая подушка, база контактов и загрузка: проверьте, что всё готово до заявления.",
			Metric: "чек-лист из 12 пунктов",
			Blocks: []blocks.ID{blocks.ExitReadiness},
		}
	}},
}

var salonGrowRules = []rule{
	{
		when: func(ctx ruleContext) bool {
			src := ctx.profile.SalonClientSource
			return src == model.SourceAdminEqual || src == model.SourceTakeLeftovers
		},
		build: func(ruleContext) Step {
			return Step{
				ID:     "build-loyalty",
				Title:  "Сделать так, чтобы клиенты просили именно вас",
				Detail: "Пока записи распределяет администратор, ваш доход зависит от чужих решений. Личные клиенты — ваш рычаг.",
				Metric: "5 именных записей в неделю",
				Blocks: []blocks.ID{blocks.LoyaltyBasics, blocks.ServiceQuality, blocks.LoyaltyPersonalBrand},
			}
		},
	},
	{
		when: func(ctx ruleContext) bool {
			p := ctx.profile
			return p.SalonClientSource == model.SourceClientsAsk && p.SalonPercentFair == "low"
		},
		build: func(ctx ruleContext) Step {
			p := ctx.profile
			target := p.SalonPercent + 10
			if target > percentCeiling {
				target = percentCeiling
			}
			gain := finance.RoundHalfUp(float64(p.SalonPrice) * float64(p.SalonClients) * 4 * float64(target-p.SalonPercent) / 100)
			if gain < 0 {
				gain = 0
			}
			return Step{
				ID:     "negotiate-percent-now",
				Title:  fmt.Sprintf("Договориться о %d%% уже в этом месяце", target),
				Detail: "Клиенты записываются к вам по имени — это сильная переговорная позиция, и вы сами считаете процент заниженным.",
				Metric: "+" + finance.FormatMoney(gain) + " ₽/мес",
				Data:   Data{TargetPercent: target, GainMonthly: gain},
				Blocks: []blocks.ID{blocks.PercentNegotiationNow, blocks.PercentArguments},
			}
		},
	},
	{
		when: func(ctx ruleContext) bool {
			p := ctx.profile
			negotiateNow := p.SalonClientSource == model.SourceClientsAsk && p.SalonPercentFair == "low"
			return !negotiateNow && p.SalonPercent < 50
		},
		build: func(ruleContext) Step {
			return Step{
				ID:     "prepare-percent-arguments",
				Title:  "Подготовить аргументы для пересмотра процента",
				Detail: "Меньше половины от чека — повод собрать цифры: загрузку, возвраты, средний чек, и выйти на разговор.",
				Metric: "разговор через 2–4 недели",
				Blocks: []blocks.ID{blocks.PercentNegotiationPrep, blocks.PercentArguments},
			}
		},
	},
	{when: lowRetention, build: retentionImproveStep},
	{when: always, build: func(ruleContext) Step {
		return Step{
			ID:     "build-client-base",
			Title:  "Собрать собственную базу клиентов",
			Detail: "Контакты, история визитов и предпочтения — актив, который останется с вами при любом сценарии.",
			Metric: "база за 1 месяц",
			Blocks: []blocks.ID{blocks.ClientBaseBuild, blocks.ClientBaseContacts},
		}
	}},
}

func salesScriptStep(ruleContext) Step {
	return Step{
		ID:     "sales-script",
		Title:  "Освоить скрипт записи и продажи",
		Detail: "Готовые ответы на «сколько стоит» и «я подумаю» переводят интерес в запись без ощущения навязывания.",
		Metric: "конверсия в запись +20%",
		Blocks: []blocks.ID{blocks.ScriptBasics, blocks.ScriptPriceTalk, blocks.ScriptObjections},
	}
}

func lowRetention(ctx ruleContext) bool {
	return ctx.profile.RepeatRate < 40
}

func retentionImproveStep(ruleContext) Step {
	return Step{
		ID:     "improve-retention",
		Title:  "Поднять возвращаемость клиентов",
		Detail: "Меньше 40% повторных визитов — значит, каждый месяц вы заново ищете большую часть клиентов.",
		Metric: "возвращаемость 50%+",
		Blocks: []blocks.ID{blocks.RetentionBasics, blocks.RemindersSystem},
	}
}
