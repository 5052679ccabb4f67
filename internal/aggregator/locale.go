package aggregator

import "strings"

// Locale traz as abreviações usadas nos rótulos dos buckets
type Locale struct {
	Tag       string
	Weekdays  [7]string  // domingo primeiro
	Months    [12]string // janeiro primeiro
	WeekLabel string
}

var (
	LocaleEsMX = Locale{
		Tag:       "es-MX",
		Weekdays:  [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		Months:    [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		WeekLabel: "Semana",
	}

	LocaleEnUS = Locale{
		Tag:       "en-US",
		Weekdays:  [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Months:    [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		WeekLabel: "Week",
	}

	LocalePtBR = Locale{
		Tag:       "pt-BR",
		Weekdays:  [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
		Months:    [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
		WeekLabel: "Semana",
	}
)

var locales = map[string]Locale{
	"es-mx": LocaleEsMX,
	"es":    LocaleEsMX,
	"en-us": LocaleEnUS,
	"en":    LocaleEnUS,
	"pt-br": LocalePtBR,
	"pt":    LocalePtBR,
}

// LocaleFor devolve o locale pela tag (ex.: "es-MX"); tags desconhecidas usam en-US
func LocaleFor(tag string) Locale {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if locale, ok := locales[normalized]; ok {
		return locale
	}

	return LocaleEnUS
}
