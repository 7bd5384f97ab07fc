package blocks

func init() {
	register(PriceRaiseMarket,
		`<section class="block">
  <h2>Цена: догнать рынок</h2>
  <p>Средний чек по вашему городу — {{.BenchmarkFmt}} ₽, ваша цена заметно ниже. Низкая цена не удерживает клиентов — она удерживает вас: в длинном дне и коротких деньгах.</p>
  <p>Рынок уже проголосовал за этот уровень цен. Вопрос не «можно ли поднять», а «как поднять аккуратно».</p>
</section>`,
		`<section class="block">
  <h2>Как поднимать</h2>
  <ol>
    <li>Новым клиентам — новая цена с сегодняшнего дня.</li>
    <li>Постоянным — с предупреждением за один визит: «со следующего месяца у меня новые цены».</li>
    <li>Никаких оправданий в сообщении: дата, цена, спасибо.</li>
  </ol>
  <p>Типовая потеря при аккуратном повышении — один-два самых чувствительных к цене клиента. Их окна тут же занимают новые, по новой цене.</p>
</section>`)

	register(PriceRaiseAbove,
		`<section class="block">
  <h2>Цена выше рынка</h2>
  <p>Вы уже в рыночном диапазоне ({{.BenchmarkFmt}} ₽ в среднем по городу). Следующая ступень — цена выше средней. Она держится не на смелости, а на обвязке: портфолио, сервис, стабильный результат.</p>
</section>`,
		`<section class="block">
  <h2>Чем подкрепить</h2>
  <ul>
    <li>Портфолио уровня «до/после», снятое при одном свете.</li>
    <li>Опыт визита: время начала — ваше обещание, напитки, уход после процедуры.</li>
    <li>Специализация: «мастер по сложному блонду» стоит дороже «парикмахера».</li>
  </ul>
</section>`)

	register(PriceCommunication,
		`<section class="block">
  <h2>Как говорить о новой цене</h2>
  <p>Одно сообщение, три элемента: дата, новая цена, благодарность. Без извинений и объяснений себестоимости — клиент платит за результат, а не за вашу аренду.</p>
</section>`)

	register(PriceValueFraming,
		`<section class="block">
  <h2>Цена через ценность</h2>
  <p>Выше рынка продаёт не услуга, а решение: не «окрашивание», а «цвет, который держится восемь недель и не требует тонирования каждые две». Сформулируйте, какую проблему закрываете лучше других.</p>
</section>`)

	register(Plan30Days,
		`<section class="block">
  <h2>План на 30 дней: неделя 1–2</h2>
  <p><strong>Неделя 1 — порядок в базе.</strong> Все клиенты в одном месте, у каждого — дата последнего визита и следующий шаг. Это фундамент всех остальных недель.</p>
  <p><strong>Неделя 2 — деньги.</strong> Посчитайте фактическую выручку и расходы за прошлый месяц. Ваш ориентир сейчас: {{.MonthlyProfitFmt}} ₽ в месяц. Решение по ценам — из этой цифры, не из ощущений.</p>
</section>`,
		`<section class="block">
  <h2>План на 30 дней: неделя 3</h2>
  <p><strong>Возвращаемость.</strong> Предлагайте повторную запись каждому клиенту в кресле, отправьте напоминания всем, кто «пересидел» свой цикл. К концу недели у половины активной базы должна стоять следующая дата.</p>
</section>`,
		`<section class="block">
  <h2>План на 30 дней: неделя 4</h2>
  <p><strong>Новые клиенты.</strong> Только теперь, с работающим удержанием, включайте привлечение: обновите витрину, попросите отзывы, запустите один новый канал.</p>
  <p>Итог месяца измерим: база в порядке, цены посчитаны, у активных клиентов стоит следующая запись, появился новый источник заявок.</p>
</section>`)

	register(SourcesDiversify,
		`<section class="block">
  <h2>Расширить источники клиентов</h2>
  <p>Сейчас ваша запись держится на {{len .Profile.Sources}} каналах. Любая просадка — смена алгоритмов, сезон, переезд пары постоянных клиентов — сразу бьёт по доходу.</p>
  <p>Устойчивая практика стоит минимум на трёх независимых источниках: один тёплый (база, сарафан), один витринный (соцсети), один холодный (агрегаторы).</p>
</section>`,
		`<section class="block">
  <h2>Какой канал добавить первым</h2>
  <p>Добавляйте канал, который не похож на уже работающие. Если заявки идут из соцсетей — подключайте агрегатор; если весь поток сарафанный — стройте витрину, на которую рекомендации будут ссылаться.</p>
</section>`)

	register(SourceMatrix,
		`<section class="block">
  <h2>Матрица каналов</h2>
  <p>Оценивайте каждый канал по двум осям: стоимость заявки и скорость запуска. Начинайте с дешёвых и быстрых (база, сарафан), заканчивайте дорогими и медленными (платная реклама).</p>
</section>`)

	register(CRMSetup,
		`<section class="block">
  <h2>Учёт клиентов</h2>
  <p>Записная книжка помнит имена, но не напоминает о визитах, не показывает «спящих» и не считает возвращаемость. Простая CRM делает это автоматически и освобождает вам голову.</p>
  <p>Минимальный набор: карточка клиента, история визитов, автонапоминание о следующем.</p>
</section>`,
		`<section class="block">
  <h2>Запуск за неделю</h2>
  <ol>
    <li>День 1–2: выберите инструмент и перенесите активных клиентов.</li>
    <li>День 3–5: заполните истории по памяти — последний визит и услуга.</li>
    <li>День 6–7: включите напоминания и проверьте на трёх ближайших записях.</li>
  </ol>
</section>`)

	register(CRMTools,
		`<section class="block">
  <h2>Чем вести учёт</h2>
  <p>Подойдёт любой инструмент, который вы реально будете открывать каждый день: специализированный сервис для мастеров, общая CRM или настроенная таблица. Критерий один — напоминания должны приходить сами.</p>
</section>`)

	register(TeachStart,
		`<section class="block">
  <h2>Начать обучать</h2>
  <p>Обучение — способ продать ваш опыт ещё раз, без новых часов у кресла. Начинается не с курса, а с проверки спроса: один мастер-класс по теме, о которой вас чаще всего спрашивают коллеги.</p>
</section>`,
		`<section class="block">
  <h2>Первый поток</h2>
  <ol>
    <li>Тема — самый частый вопрос от коллег, не «всё обо всём».</li>
    <li>Формат — один день, малая группа, работа на моделях.</li>
    <li>Продажа — по своей аудитории и коллегам, без рекламы.</li>
    <li>После — отзывы участников как фундамент следующего потока.</li>
  </ol>
</section>`)

	register(TeachFormats,
		`<section class="block">
  <h2>Форматы обучения</h2>
  <p>Лестница форматов: разбор работ — мастер-класс — мини-курс — наставничество. Каждая ступень дороже предыдущей и продаётся тем, кто прошёл предыдущую. Перепрыгивать ступени — терять доверие.</p>
</section>`)

	register(SpaceTeam,
		`<section class="block">
  <h2>Расти командой</h2>
  <p>Помещение уже есть — значит, ваш потолок теперь не квадратные метры, а ваши собственные руки. Второй мастер в вашем пространстве — это доход с кресла, в котором вы не стоите.</p>
</section>`,
		`<section class="block">
  <h2>Первый мастер</h2>
  <ol>
    <li>Модель: аренда места или процент — посчитайте обе на ваших цифрах.</li>
    <li>Кандидат: мастер с собственной записью, которому тесно на текущем месте.</li>
    <li>Правила: письменные договорённости о клиентах, расходниках и графике до первого рабочего дня.</li>
  </ol>
</section>`)

	register(SpaceOpenOwn,
		`<section class="block">
  <h2>Собственное пространство</h2>
  <p>Своя студия убирает арендную неопределённость и открывает то, что невозможно в чужом кресле: команду, обучение, свой бренд. Но это отдельный бизнес со своей экономикой — заходите в него с цифрами, не с мечтой об интерьере.</p>
</section>`,
		`<section class="block">
  <h2>Экономика до договора</h2>
  <p>Посчитайте точку безубыточности: аренда, ремонт в пересчёте на месяц, коммунальные, расходники. Сколько рабочих кресел и какая загрузка её закрывают? Если ответ — «все кресла при полной записи», помещение не тянет.</p>
</section>`,
		`<section class="block">
  <h2>Дорожная карта на полгода</h2>
  <ol>
    <li>Месяцы 1–2: финансовая модель и подбор помещения.</li>
    <li>Месяцы 3–4: договор, ремонт, закупка.</li>
    <li>Месяц 5: переезд собственной записи — она финансирует старт.</li>
    <li>Месяц 6: первый приглашённый мастер.</li>
  </ol>
</section>`)

	register(SpaceEconomics,
		`<section class="block">
  <h2>Экономика пространства</h2>
  <p>Главное правило: ваша личная запись должна покрывать все постоянные расходы пространства. Доход от команды — рост, а не затыкание аренды.</p>
</section>`)

	register(AddPrivateClients,
		`<section class="block">
  <h2>Плюс 3–5 своих клиентов в неделю</h2>
  <p>Каждый собственный клиент приносит вам {{.PerClientFmt}} ₽ чистыми — без салонного процента. Три таких клиента в неделю заметно меняют месяц, не меняя вашу жизнь.</p>
</section>`)

	register(HybridBalance,
		`<section class="block">
  <h2>Баланс салона и своих клиентов</h2>
  <p>Держите границы: свои клиенты — в фиксированные окна, а не «когда получится». Салон даёт стабильность, своя запись — рост; смешивание расписаний убивает и то, и другое.</p>
</section>`)

	register(MoneyTracking,
		`<section class="block">
  <h2>Считать деньги</h2>
  <p>Одна таблица, три колонки: дата, выручка, расходы. Пять минут в конце дня. Через месяц у вас впервые будут настоящие цифры практики — все решения из этого плана опираются на них.</p>
</section>`)

	register(ServiceQuality,
		`<section class="block">
  <h2>Сервис как причина вернуться</h2>
  <p>Клиент запоминает не только результат, но и то, как прошёл час в кресле: вовремя ли начали, спросили ли про прошлый раз, удобно ли было записаться. Эти мелочи и есть причина просить именно вас.</p>
</section>`)

	register(PhotoPortfolio,
		`<section class="block">
  <h2>Портфолио</h2>
  <p>Снимайте каждую удачную работу: один ракурс, дневной свет, до и после. Тридцать таких пар фотографий продают лучше любого текста — и именно их спрашивают новые клиенты.</p>
</section>`)
}
