package refdata

// Display-name dictionaries for the fixed output locale. Unknown keys fall
// back to a generic label rather than rendering blank.

var cityNames = map[string]string{
	"moscow":   "Москва",
	"spb":      "Санкт-Петербург",
	"million":  "город-миллионник",
	"regional": "региональный город",
}

var workPlaceNames = map[string]string{
	"home":        "дома",
	"coworking":   "в коворкинге",
	"rent-chair":  "аренда кресла",
	"rent-studio": "аренда студии",
	"own":         "собственное помещение",
}

var workModeNames = map[string]string{
	"salon-only":   "работа в салоне",
	"hybrid":       "салон + свои клиенты",
	"private-only": "только свои клиенты",
}

var clientSourceNames = map[string]string{
	"admin-equal":    "администратор распределяет поровну",
	"take-leftovers": "беру, что остаётся",
	"clients-ask":    "клиенты записываются ко мне",
}

// CityName returns the display name for a city key.
func CityName(key string) string {
	if name, ok := cityNames[key]; ok {
		return name
	}
	return cityNames[DefaultCity]
}

// WorkPlaceName returns the display name for a workplace key.
func WorkPlaceName(key string) string {
	if name, ok := workPlaceNames[key]; ok {
		return name
	}
	return "рабочее место"
}

// WorkModeName returns the display name for a work mode.
func WorkModeName(key string) string {
	if name, ok := workModeNames[key]; ok {
		return name
	}
	return "формат работы"
}

// ClientSourceName returns the display name for a salon client source.
func ClientSourceName(key string) string {
	if name, ok := clientSourceNames[key]; ok {
		return name
	}
	return "источник клиентов"
}
