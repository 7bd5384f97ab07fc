package blocks

func init() {
	register(LoyaltyBasics,
		`<section class="block">
  <h2>Клиенты, которые просят именно вас</h2>
  <p>Пока запись распределяет администратор, вы — взаимозаменяемый ресурс салона. Именные клиенты меняют позицию: они приходят к мастеру, а не в заведение.</p>
  <p>Именная запись строится на трёх вещах: клиент знает ваше имя, у него есть ваш прямой контакт, и у него есть причина вернуться к вам конкретно.</p>
</section>`,
		`<section class="block">
  <h2>Практика на месяц</h2>
  <ol>
    <li>Представляйтесь каждому новому клиенту и проговаривайте, что к вам можно записаться напрямую.</li>
    <li>Запоминайте детали: чем закончили в прошлый раз, что понравилось, что беспокоит.</li>
    <li>Планируйте следующий визит прямо в кресле: «через шесть недель будет пора, записать вас?»</li>
  </ol>
</section>`)

	register(LoyaltyPersonalBrand,
		`<section class="block">
  <h2>Имя как актив</h2>
  <p>Личный профиль с работами — это ваш портфель, который не принадлежит салону. Ведите его параллельно салонной работе: когда придёт время договариваться о проценте или уходить, он станет главным аргументом.</p>
</section>`)

	register(PercentNegotiationNow,
		`<section class="block">
  <h2>Разговор о проценте: сейчас</h2>
  <p>У вас сильная позиция: клиенты записываются к вам по имени, и текущий процент вы сами оцениваете как заниженный. Это не просьба о прибавке — это пересмотр условий под ваш фактический вклад.</p>
  <p>Ваш сегодняшний оборот для салона: {{.SalonMonthlyFmt}} ₽ вашей доли в месяц при проценте {{.Profile.SalonPercent}}%.</p>
</section>`,
		`<section class="block">
  <h2>Структура разговора</h2>
  <ol>
    <li>Факты: сколько именных записей, какая загрузка, какой средний чек.</li>
    <li>Предложение: конкретный новый процент, без вилок.</li>
    <li>Выгода салона: вы остаётесь, кресло загружено, поток стабилен.</li>
    <li>Пауза. Не заполняйте молчание уступками.</li>
  </ol>
</section>`)

	register(PercentNegotiationPrep,
		`<section class="block">
  <h2>Подготовка к разговору о проценте</h2>
  <p>Меньше половины чека при устойчивой записи — повод для пересмотра, но разговор без цифр проигрывается до начала. Две-четыре недели собирайте факты: записи по дням, повторные визиты, клиенты «по имени».</p>
</section>`,
		`<section class="block">
  <h2>Что усиливает позицию</h2>
  <ul>
    <li>Журнал именных записей — клиенты, которые пришли к вам, а не «к мастеру».</li>
    <li>Полная запись на неделю вперёд.</li>
    <li>Отзывы, где названо ваше имя.</li>
    <li>Спокойная альтернатива: вы знаете условия соседних салонов.</li>
  </ul>
</section>`)

	register(PercentArguments,
		`<section class="block">
  <h2>Аргументы и контраргументы</h2>
  <p>«У всех такой процент» — у всех нет вашей записи. «Салон вкладывается в рекламу» — ваши именные клиенты пришли не с рекламы. Держите разговор на фактах вашей загрузки, а не на общих правилах.</p>
</section>`)

	register(ClientBaseBuild,
		`<section class="block">
  <h2>Собственная база клиентов</h2>
  <p>База — это не список телефонов, а история отношений: кто, когда, на что приходил, что планировали в следующий раз. Такой актив превращает разовые визиты в расписание.</p>
  <p>Начните с простого: один файл или приложение, три поля — контакт, последний визит, следующий шаг.</p>
</section>`,
		`<section class="block">
  <h2>Порядок на месяц</h2>
  <ol>
    <li>Неделя 1: внесите всех, кого помните, с последним визитом.</li>
    <li>Неделя 2: дополняйте каждого нового клиента сразу после визита.</li>
    <li>Неделя 3: пройдитесь по «спящим» — кто не был дольше двух циклов.</li>
    <li>Неделя 4: назначьте следующий шаг каждому активному клиенту.</li>
  </ol>
</section>`)

	register(ClientBaseContacts,
		`<section class="block">
  <h2>Прямой контакт</h2>
  <p>Канал связи, который принадлежит вам, — условие выживания практики. Соберите личные контакты клиентов до того, как они понадобятся: потом будет поздно.</p>
</section>`)

	register(RetentionBasics,
		`<section class="block">
  <h2>Возвращаемость: база</h2>
  <p>Повторный клиент обходится в ноль рублей привлечения и приходит с доверием. Возвращаемость ниже 40% означает, что практика каждый месяц строится заново.</p>
  <p>Сейчас к вам возвращаются {{.Profile.RepeatRate}}% клиентов. Каждые +10 процентных пунктов — это записи, за которые не нужно платить рекламой.</p>
</section>`,
		`<section class="block">
  <h2>Три механики возврата</h2>
  <ol>
    <li>Повторная запись в кресле: предложить дату следующего визита до того, как клиент ушёл.</li>
    <li>Напоминание за 2–3 дня до «пора»: короткое личное сообщение, не рассылка.</li>
    <li>Возврат «спящих»: одно сообщение тем, кто пропустил цикл, с конкретным окном.</li>
  </ol>
</section>`)

	register(RetentionFixLow,
		`<section class="block">
  <h2>Починить возвращаемость</h2>
  <p>Ниже 40% повторных визитов — это дыра, в которую утекают и деньги, и силы. Прежде чем наращивать поток новых клиентов, разберитесь, почему уходят текущие.</p>
  <p>Честная диагностика: спросите у пяти не вернувшихся клиентов, что было не так. Ответы обычно про сервис и забытость, не про качество работы.</p>
</section>`,
		`<section class="block">
  <h2>Две недели на систему</h2>
  <ol>
    <li>Дни 1–3: канал напоминаний и шаблон сообщения.</li>
    <li>Дни 4–7: предложение повторной записи каждому клиенту в кресле.</li>
    <li>Неделя 2: сообщения всем, кто не был дольше своего цикла.</li>
  </ol>
</section>`)

	register(RetentionPush55,
		`<section class="block">
  <h2>От хорошего к отличному: 55%+</h2>
  <p>Ваши {{.Profile.RepeatRate}}% — рабочая база. Дожать до 55%+ помогают абонементы на цикл процедур, фиксированное «своё» время у постоянных клиентов и план ухода между визитами.</p>
</section>`)

	register(RemindersSystem,
		`<section class="block">
  <h2>Система напоминаний</h2>
  <p>Правило простое: у каждого клиента в базе есть дата «пора» — и за два-три дня до неё уходит личное сообщение. Пятнадцать минут в день, и расписание заполняется без рекламы.</p>
</section>`)
}
