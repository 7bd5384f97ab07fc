package blocks

func init() {
	register(WorkplaceOptions,
		`<section class="block">
  <h2>Где работать после салона</h2>
  <p>Три рабочих варианта для старта собственной практики — у каждого свой порог входа и своя экономика.</p>
  <ul>
    <li><strong>Дома.</strong> Минимальные расходы, но не каждый клиент поедет, и сложнее держать цену.</li>
    <li><strong>Аренда кресла.</strong> Готовое место и поток салона рядом; платите фиксированно или процентом.</li>
    <li><strong>Коворкинг для мастеров.</strong> Почасовая оплата — расходы растут только вместе с записью.</li>
  </ul>
</section>`,
		`<section class="block">
  <h2>Как выбирать</h2>
  <p>Отталкивайтесь от вашей текущей загрузки — {{.Profile.SalonClients}} клиентов в неделю. Посчитайте каждый вариант по одной формуле: выручка минус аренда минус расходники.</p>
  <p>Правило первого месяца: выбирайте вариант, который окупается уже при половине вашей сегодняшней записи. Запас по загрузке важнее красивого интерьера.</p>
</section>`)

	register(WorkplaceCosts,
		`<section class="block">
  <h2>Сколько съедает место</h2>
  <p>Для формата «{{.WorkPlaceName}}» закладывайте порядка типовой доли расходов от выручки. В вашем городе ({{.CityName}}) средний чек — {{.BenchmarkFmt}} ₽, от него и считайте аренду: она не должна превышать четверти выручки при целевой загрузке.</p>
  <p>Отдельной строкой — расходники и амортизация инструмента: они растут вместе с числом клиентов, аренда — нет.</p>
</section>`)

	register(WorkplaceChecklist,
		`<section class="block">
  <h2>Чек-лист выбора места</h2>
  <ol>
    <li>Доступность для ваших постоянных клиентов — не дальше 30 минут от прежнего салона.</li>
    <li>Договор с понятными условиями выхода.</li>
    <li>Свет, вода, кресло — всё включено или считается отдельно?</li>
    <li>Можно ли принимать в выходные и вечером.</li>
    <li>Кто ещё работает рядом: соседи-мастера — это и конкуренция, и сарафан.</li>
  </ol>
</section>`)

	register(ChannelsOverview,
		`<section class="block">
  <h2>Каналы записи: общая картина</h2>
  <p>Стабильная запись — это минимум три независимых источника. Если один просел, остальные держат загрузку.</p>
  <p>База — ваши текущие клиенты и их рекомендации. Поверх неё: соцсети для витрины работ, агрегаторы для холодного потока, партнёрства для обмена аудиторией.</p>
</section>`,
		`<section class="block">
  <h2>С чего начать</h2>
  <p>Первые две недели — только тёплые контакты: личные сообщения постоянным клиентам с новым адресом и условиями. Это самый дешёвый и самый конверсионный канал.</p>
  <p>Параллельно заводите витрину: один канал с портфолио, ценами и кнопкой записи. Остальные каналы ведут на неё.</p>
</section>`)

	register(ChannelSocial,
		`<section class="block">
  <h2>Соцсети</h2>
  <p>Профиль-витрина решает три задачи: показать работы, снять вопрос цены, дать записаться в два касания. Публикуйте работы до/после, закрепите прайс, отвечайте на заявки в течение часа.</p>
</section>`)

	register(ChannelAvito,
		`<section class="block">
  <h2>Авито и агрегаторы</h2>
  <p>Холодный поток для старта: люди приходят с конкретным запросом и сравнивают по цене и отзывам. Заполните профиль полностью, соберите первые отзывы — без них объявление не работает.</p>
</section>`)

	register(ChannelReferral,
		`<section class="block">
  <h2>Сарафан управляемый</h2>
  <p>Рекомендации случаются сами, но их можно ускорить: бонус за приведённого друга, карточки с вашим контактом после визита, просьба отметить вас в соцсетях.</p>
</section>`)

	register(ChannelPartners,
		`<section class="block">
  <h2>Партнёрства</h2>
  <p>Смежные мастера — маникюр, брови, косметологи — работают с вашей же аудиторией. Взаимные рекомендации обходятся бесплатно и конвертируются лучше рекламы.</p>
</section>`)

	register(ScriptBasics,
		`<section class="block">
  <h2>Скрипт записи</h2>
  <p>Задача скрипта — провести человека от «сколько стоит?» до конкретного времени визита, не передавливая.</p>
  <p>Структура ответа: цена — что в неё входит — уточняющий вопрос — предложение двух окон на выбор. Вопрос в конце каждого сообщения удерживает диалог.</p>
</section>`,
		`<section class="block">
  <h2>Типовые диалоги</h2>
  <p>«Сколько стоит?» — называйте цену сразу, без «напишу в личку»: скрытая цена теряет половину заявок.</p>
  <p>«Я подумаю» — зафиксируйте интерес: «Конечно. Придержать для вас окно на субботу до вечера?» Мягкий дедлайн возвращает каждого третьего.</p>
</section>`)

	register(ScriptPriceTalk,
		`<section class="block">
  <h2>Разговор о цене</h2>
  <p>Цена звучит уверенно, когда за ней стоит состав услуги. Не «стрижка {{.PerClientFmt}} ₽», а что именно клиент получает: диагностика, работа, укладка, рекомендации по уходу.</p>
</section>`)

	register(ScriptObjections,
		`<section class="block">
  <h2>Работа с возражениями</h2>
  <p>«Дорого» — не просьба о скидке, а запрос ценности. Отвечайте составом и результатом, скидку предлагайте только в форме: та же цена — больше объёма.</p>
</section>`)

	register(TargetClientsMath,
		`<section class="block">
  <h2>Математика вашей цели</h2>
  <p>Сейчас ваш месячный доход — {{.MonthlyProfitFmt}} ₽. Чтобы собственная практика его закрыла, нужна стабильная недельная запись по вашей цене — расчёт на странице шага.</p>
  <p>Считаем по честной четырёхнедельной загрузке, без «идеальных» месяцев. Каждый клиент сверх цели — уже рост, а не компенсация.</p>
</section>`)

	register(ExitIncomeCompare,
		`<section class="block">
  <h2>До и после</h2>
  <p>В салоне с каждого чека вы получаете свой процент. В собственной практике — весь чек минус расходы на место. При том же числе клиентов разница и есть цена вашей самостоятельности.</p>
</section>`)

	register(ReviewsCollect,
		`<section class="block">
  <h2>10 отзывов</h2>
  <p>Просите отзыв в момент, когда клиент доволен — сразу после визита, с прямой ссылкой. Формула просьбы: что было — что получилось — где оставить. Девять из десяти довольных клиентов соглашаются, если им не нужно думать, куда писать.</p>
</section>`)

	register(ReviewsUsage,
		`<section class="block">
  <h2>Куда ставить отзывы</h2>
  <p>Отзыв работает там, где его видит новый клиент: закреплённые истории, карточка на агрегаторе, ответ на вопрос о цене. Скриншоты с именем убедительнее безликих цитат.</p>
</section>`)

	register(ExitReadiness,
		`<section class="block">
  <h2>Чек-лист готовности к уходу</h2>
  <ol>
    <li>Финансовая подушка на 2–3 месяца расходов.</li>
    <li>База контактов клиентов — выгружена и принадлежит вам.</li>
    <li>Минимум 10 клиентов, которые придут к вам куда угодно.</li>
    <li>Выбранное и посчитанное рабочее место.</li>
    <li>Работающий канал записи с отзывами.</li>
  </ol>
</section>`,
		`<section class="block">
  <h2>Как уходить</h2>
  <p>Не сжигайте мосты: салон — это поток, который может вернуться к вам партнёрством. Предупредите заранее, доработайте записанных клиентов, уходите на подготовленное место, а не «в никуда».</p>
  <p>Первый месяц после ухода — самый тяжёлый по записи. Именно его закрывает подушка и тёплая база.</p>
</section>`)
}
