package steps

import "growthplan-backend/plan/blocks"

// Universal fallback steps keep a sparse plan useful: any profile gets at
// least one step, and scenarios whose conditions all evaluate false are
// topped up toward MinSteps.

func universalRetentionStep() Step {
	return Step{
		ID:     "universal-retention",
		Title:  "Укрепить возвращаемость клиентов",
		Detail: "Стабильная запись строится на тех, кто уже был у вас: повторная запись на визите и напоминания.",
		Metric: "возвращаемость +10 п.п.",
		Blocks: []blocks.ID{blocks.RetentionBasics, blocks.RemindersSystem},
	}
}

func universalReviewsStep() Step {
	return Step{
		ID:     "universal-reviews",
		Title:  "Запросить отзывы у постоянных клиентов",
		Detail: "Свежие отзывы с фото работ — самый быстрый способ усилить любой канал привлечения.",
		Metric: "10 отзывов за месяц",
		Blocks: []blocks.ID{blocks.ReviewsCollect, blocks.PhotoPortfolio},
	}
}
