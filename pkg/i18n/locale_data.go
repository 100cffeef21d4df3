package i18n

// localeData holds the calendar, clock and relative-time vocabulary of a
// locale. Number symbols come from golang.org/x/text.
type localeData struct {
	months        [12]string
	monthsShort   [12]string
	weekdays      [7]string // Sunday first
	weekdaysShort [7]string

	// Numeric dates: component order ("mdy", "dmy", "ymd") and separator.
	dateOrder  string
	dateSep    string
	padNumeric bool

	// Textual date patterns. {d} day, {M} month name, {y} year,
	// {D} the date and {W} the weekday.
	datePattern      string
	monthDayPattern  string
	monthYearPattern string
	weekdayPattern   string

	hour12      bool
	am, pm      string
	hourSuffix  string
	dateTimeSep string

	currencyAfter bool
	plural        PluralRule
	relative      map[string]relativeUnit
}

type relativeUnit struct {
	past   map[string]string // plural form to pattern, {0} is the count
	future map[string]string
	named  map[int]string
}

func rel(pastOne, pastOther, futureOne, futureOther string, named map[int]string) relativeUnit {
	return relativeUnit{
		past:   map[string]string{PluralOne: pastOne, PluralOther: pastOther},
		future: map[string]string{PluralOne: futureOne, PluralOther: futureOther},
		named:  named,
	}
}

func derive(base *localeData, fn func(*localeData)) *localeData {
	d := *base
	fn(&d)
	return &d
}

var en = &localeData{
	months:        [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	monthsShort:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	weekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},

	dateOrder: "mdy",
	dateSep:   "/",

	datePattern:      "{M} {d}, {y}",
	monthDayPattern:  "{M} {d}",
	monthYearPattern: "{M} {y}",
	weekdayPattern:   "{W}, {D}",

	hour12:      true,
	am:          "AM",
	pm:          "PM",
	dateTimeSep: ", ",

	plural: EnglishPluralRule,
	relative: map[string]relativeUnit{
		"second": rel("{0} second ago", "{0} seconds ago", "in {0} second", "in {0} seconds", map[int]string{0: "now"}),
		"minute": rel("{0} minute ago", "{0} minutes ago", "in {0} minute", "in {0} minutes", nil),
		"hour":   rel("{0} hour ago", "{0} hours ago", "in {0} hour", "in {0} hours", nil),
		"day":    rel("{0} day ago", "{0} days ago", "in {0} day", "in {0} days", map[int]string{-1: "yesterday", 0: "today", 1: "tomorrow"}),
		"month":  rel("{0} month ago", "{0} months ago", "in {0} month", "in {0} months", map[int]string{-1: "last month", 0: "this month", 1: "next month"}),
		"year":   rel("{0} year ago", "{0} years ago", "in {0} year", "in {0} years", map[int]string{-1: "last year", 0: "this year", 1: "next year"}),
	},
}

var de = &localeData{
	months:        [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	monthsShort:   [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	weekdays:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	weekdaysShort: [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},

	dateOrder: "dmy",
	dateSep:   ".",

	datePattern:      "{d}. {M} {y}",
	monthDayPattern:  "{d}. {M}",
	monthYearPattern: "{M} {y}",
	weekdayPattern:   "{W}, {D}",

	hourSuffix:  " Uhr",
	dateTimeSep: ", ",

	currencyAfter: true,
	plural:        GermanicPluralRule,
	relative: map[string]relativeUnit{
		"second": rel("vor {0} Sekunde", "vor {0} Sekunden", "in {0} Sekunde", "in {0} Sekunden", map[int]string{0: "jetzt"}),
		"minute": rel("vor {0} Minute", "vor {0} Minuten", "in {0} Minute", "in {0} Minuten", nil),
		"hour":   rel("vor {0} Stunde", "vor {0} Stunden", "in {0} Stunde", "in {0} Stunden", nil),
		"day":    rel("vor {0} Tag", "vor {0} Tagen", "in {0} Tag", "in {0} Tagen", map[int]string{-2: "vorgestern", -1: "gestern", 0: "heute", 1: "morgen", 2: "übermorgen"}),
		"month":  rel("vor {0} Monat", "vor {0} Monaten", "in {0} Monat", "in {0} Monaten", map[int]string{-1: "letzten Monat", 0: "diesen Monat", 1: "nächsten Monat"}),
		"year":   rel("vor {0} Jahr", "vor {0} Jahren", "in {0} Jahr", "in {0} Jahren", map[int]string{-1: "letztes Jahr", 0: "dieses Jahr", 1: "nächstes Jahr"}),
	},
}

var fr = &localeData{
	months:        [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	monthsShort:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	weekdays:      [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	weekdaysShort: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},

	dateOrder:  "dmy",
	dateSep:    "/",
	padNumeric: true,

	datePattern:      "{d} {M} {y}",
	monthDayPattern:  "{d} {M}",
	monthYearPattern: "{M} {y}",
	weekdayPattern:   "{W} {D}",

	hourSuffix:  " h",
	dateTimeSep: " ",

	currencyAfter: true,
	plural:        RomancePluralRule,
	relative: map[string]relativeUnit{
		"second": rel("il y a {0} seconde", "il y a {0} secondes", "dans {0} seconde", "dans {0} secondes", map[int]string{0: "maintenant"}),
		"minute": rel("il y a {0} minute", "il y a {0} minutes", "dans {0} minute", "dans {0} minutes", nil),
		"hour":   rel("il y a {0} heure", "il y a {0} heures", "dans {0} heure", "dans {0} heures", nil),
		"day":    rel("il y a {0} jour", "il y a {0} jours", "dans {0} jour", "dans {0} jours", map[int]string{-2: "avant-hier", -1: "hier", 0: "aujourd’hui", 1: "demain", 2: "après-demain"}),
		"month":  rel("il y a {0} mois", "il y a {0} mois", "dans {0} mois", "dans {0} mois", map[int]string{-1: "le mois dernier", 0: "ce mois-ci", 1: "le mois prochain"}),
		"year":   rel("il y a {0} an", "il y a {0} ans", "dans {0} an", "dans {0} ans", map[int]string{-1: "l’année dernière", 0: "cette année", 1: "l’année prochaine"}),
	},
}

var es = &localeData{
	months:        [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	monthsShort:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	weekdays:      [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	weekdaysShort: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},

	dateOrder: "dmy",
	dateSep:   "/",

	datePattern:      "{d} de {M} de {y}",
	monthDayPattern:  "{d} de {M}",
	monthYearPattern: "{M} de {y}",
	weekdayPattern:   "{W}, {D}",

	dateTimeSep: ", ",

	currencyAfter: true,
	plural:        SpanishPluralRule,
	relative: map[string]relativeUnit{
		"second": rel("hace {0} segundo", "hace {0} segundos", "dentro de {0} segundo", "dentro de {0} segundos", map[int]string{0: "ahora"}),
		"minute": rel("hace {0} minuto", "hace {0} minutos", "dentro de {0} minuto", "dentro de {0} minutos", nil),
		"hour":   rel("hace {0} hora", "hace {0} horas", "dentro de {0} hora", "dentro de {0} horas", nil),
		"day":    rel("hace {0} día", "hace {0} días", "dentro de {0} día", "dentro de {0} días", map[int]string{-2: "anteayer", -1: "ayer", 0: "hoy", 1: "mañana", 2: "pasado mañana"}),
		"month":  rel("hace {0} mes", "hace {0} meses", "dentro de {0} mes", "dentro de {0} meses", map[int]string{-1: "el mes pasado", 0: "este mes", 1: "el próximo mes"}),
		"year":   rel("hace {0} año", "hace {0} años", "dentro de {0} año", "dentro de {0} años", map[int]string{-1: "el año pasado", 0: "este año", 1: "el próximo año"}),
	},
}

var ja = &localeData{
	months:        [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
	monthsShort:   [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
	weekdays:      [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
	weekdaysShort: [7]string{"日", "月", "火", "水", "木", "金", "土"},

	dateOrder: "ymd",
	dateSep:   "/",

	datePattern:      "{y}年{M}{d}日",
	monthDayPattern:  "{M}{d}日",
	monthYearPattern: "{y}年{M}",
	weekdayPattern:   "{D}{W}",

	hourSuffix:  "時",
	dateTimeSep: " ",

	plural: AsianPluralRule,
	relative: map[string]relativeUnit{
		"second": rel("{0} 秒前", "{0} 秒前", "{0} 秒後", "{0} 秒後", map[int]string{0: "今"}),
		"minute": rel("{0} 分前", "{0} 分前", "{0} 分後", "{0} 分後", nil),
		"hour":   rel("{0} 時間前", "{0} 時間前", "{0} 時間後", "{0} 時間後", nil),
		"day":    rel("{0} 日前", "{0} 日前", "{0} 日後", "{0} 日後", map[int]string{-1: "昨日", 0: "今日", 1: "明日"}),
		"month":  rel("{0} か月前", "{0} か月前", "{0} か月後", "{0} か月後", map[int]string{-1: "先月", 0: "今月", 1: "来月"}),
		"year":   rel("{0} 年前", "{0} 年前", "{0} 年後", "{0} 年後", map[int]string{-1: "昨年", 0: "今年", 1: "来年"}),
	},
}

var locales = map[string]*localeData{
	"en": en,
	"en-GB": derive(en, func(d *localeData) {
		d.dateOrder = "dmy"
		d.padNumeric = true
		d.datePattern = "{d} {M} {y}"
		d.monthDayPattern = "{d} {M}"
		d.weekdayPattern = "{W} {D}"
		d.hour12 = false
	}),
	"en-AU": derive(en, func(d *localeData) {
		d.dateOrder = "dmy"
		d.padNumeric = true
		d.datePattern = "{d} {M} {y}"
		d.monthDayPattern = "{d} {M}"
	}),
	"de": de,
	"fr": fr,
	"es": es,
	"ja": ja,
}
