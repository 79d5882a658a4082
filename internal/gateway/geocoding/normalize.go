package geocoding

import (
	"regexp"
	"strings"
)

type abbreviation struct {
	re   *regexp.Regexp
	full string
}

func abbr(short, full string) abbreviation {
	return abbreviation{re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(short)), full: full}
}

var abbreviations = []abbreviation{
	abbr("R.", "Rua"),
	abbr("Av.", "Avenida"),
	abbr("Ver.", "Vereador"),
	abbr("Pres.", "Presidente"),
	abbr("Sen.", "Senador"),
	abbr("Dep.", "Deputado"),
	abbr("Dr.", "Doutor"),
	abbr("Profa.", "Professora"),
	abbr("Prof.", "Professor"),
	abbr("Rod.", "Rodovia"),
	abbr("Trav.", "Travessa"),
	abbr("Pç.", "Praça"),
	abbr("Al.", "Alameda"),
	abbr("Estr.", "Estrada"),
	abbr("Vl.", "Vila"),
	abbr("Jd.", "Jardim"),
	abbr("Res.", "Residencial"),
}

// Normalize expands common street-type and title abbreviations and
// collapses whitespace.
func Normalize(address string) string {
	s := address
	for _, a := range abbreviations {
		s = a.re.ReplaceAllLiteralString(s, a.full)
	}
	return strings.Join(strings.Fields(s), " ")
}

// qualify appends the country name unless the address already carries it.
func qualify(address, country string) string {
	if country == "" || strings.Contains(strings.ToLower(address), strings.ToLower(country)) {
		return address
	}
	return address + ", " + country
}

// coarse returns the trailing comma-separated segment, usually "City - UF".
func coarse(address string) (string, bool) {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return "", false
	}
	last := strings.TrimSpace(parts[len(parts)-1])
	return last, last != ""
}
