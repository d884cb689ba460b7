package extract

import "strings"

// BrandRule maps lowercase keyword substrings to a canonical vendor name and
// category. The table is scanned in order and the first match wins, so more
// specific entries must come before the generic ones they overlap with
// ("uber eats" before "uber", "amazon business" before "amazon").
type BrandRule struct {
	Keywords []string
	Vendor   string
	Category string
}

var brandRules = []BrandRule{
	// food
	{[]string{"mercadona"}, "Mercadona", "food"},
	{[]string{"carrefour"}, "Carrefour", "food"},
	{[]string{"lidl"}, "Lidl", "food"},
	{[]string{"aldi"}, "Aldi", "food"},
	{[]string{"eroski"}, "Eroski", "food"},
	{[]string{"alcampo"}, "Alcampo", "food"},
	{[]string{"consum "}, "Consum", "food"},
	{[]string{"uber eats"}, "Uber Eats", "food"},
	{[]string{"glovo"}, "Glovo", "food"},
	{[]string{"just eat", "justeat"}, "Just Eat", "food"},
	{[]string{"mcdonald"}, "McDonald's", "food"},
	{[]string{"burger king"}, "Burger King", "food"},
	{[]string{"telepizza"}, "Telepizza", "food"},
	{[]string{"domino's", "dominos pizza"}, "Domino's Pizza", "food"},
	{[]string{"starbucks"}, "Starbucks", "food"},
	{[]string{"100 montaditos"}, "100 Montaditos", "food"},

	// transport
	{[]string{"repsol"}, "Repsol", "transport"},
	{[]string{"cepsa"}, "Cepsa", "transport"},
	{[]string{"galp"}, "Galp", "transport"},
	{[]string{"shell"}, "Shell", "transport"},
	{[]string{"bp gasolinera", "bp oil"}, "BP", "transport"},
	{[]string{"renfe"}, "Renfe", "transport"},
	{[]string{"cabify"}, "Cabify", "transport"},
	{[]string{"uber"}, "Uber", "transport"},
	{[]string{"free now", "freenow"}, "FreeNow", "transport"},
	{[]string{"metro de madrid"}, "Metro de Madrid", "transport"},
	{[]string{"alsa"}, "ALSA", "transport"},

	// accommodation
	{[]string{"booking.com", "booking "}, "Booking.com", "accommodation"},
	{[]string{"airbnb"}, "Airbnb", "accommodation"},
	{[]string{"nh hoteles", "hotel nh"}, "Hotel NH", "accommodation"},
	{[]string{"melia", "meliá"}, "Meliá Hotels", "accommodation"},
	{[]string{"paradores"}, "Paradores", "accommodation"},
	{[]string{"ibis "}, "Ibis", "accommodation"},

	// office
	{[]string{"amazon business"}, "Amazon Business", "office"},
	{[]string{"staples"}, "Staples", "office"},
	{[]string{"bureau vallee", "bureau vallée"}, "Bureau Vallee", "office"},
	{[]string{"office depot"}, "Office Depot", "office"},
	{[]string{"correos express"}, "Correos Express", "office"},

	// tech
	{[]string{"mediamarkt", "media markt"}, "MediaMarkt", "tech"},
	{[]string{"fnac"}, "FNAC", "tech"},
	{[]string{"apple store", "apple.com"}, "Apple Store", "tech"},
	{[]string{"pccomponentes", "pc componentes"}, "PC Componentes", "tech"},
	{[]string{"worten"}, "Worten", "tech"},
	{[]string{"microsoft"}, "Microsoft", "tech"},

	// health
	{[]string{"sanitas"}, "Sanitas", "health"},
	{[]string{"adeslas"}, "Adeslas", "health"},
	{[]string{"quironsalud", "quirónsalud"}, "Quirónsalud", "health"},

	// travel
	{[]string{"iberia"}, "Iberia", "travel"},
	{[]string{"vueling"}, "Vueling", "travel"},
	{[]string{"ryanair"}, "Ryanair", "travel"},
	{[]string{"air europa"}, "Air Europa", "travel"},
	{[]string{"halcon viajes", "halcón viajes"}, "Halcón Viajes", "travel"},

	// shopping
	{[]string{"el corte ingles", "el corte inglés"}, "El Corte Inglés", "shopping"},
	{[]string{"zara"}, "Zara", "shopping"},
	{[]string{"primark"}, "Primark", "shopping"},
	{[]string{"decathlon"}, "Decathlon", "shopping"},
	{[]string{"leroy merlin"}, "Leroy Merlin", "shopping"},
	{[]string{"ikea"}, "IKEA", "shopping"},
	{[]string{"amazon"}, "Amazon", "shopping"},

	// services
	{[]string{"movistar", "telefonica", "telefónica"}, "Movistar", "services"},
	{[]string{"vodafone"}, "Vodafone", "services"},
	{[]string{"orange "}, "Orange", "services"},
	{[]string{"endesa"}, "Endesa", "services"},
	{[]string{"iberdrola"}, "Iberdrola", "services"},
	{[]string{"naturgy"}, "Naturgy", "services"},
	{[]string{"holaluz"}, "Holaluz", "services"},
	{[]string{"mapfre"}, "Mapfre", "services"},

	// other
	{[]string{"correos"}, "Correos", "other"},
}

// matchBrand scans the brand table in fixed order over the lowercased text.
// Returns the rule on the first keyword hit, nil when nothing matched.
func matchBrand(lowered string) *BrandRule {
	for i := range brandRules {
		for _, kw := range brandRules[i].Keywords {
			if strings.Contains(lowered, kw) {
				return &brandRules[i]
			}
		}
	}
	return nil
}
