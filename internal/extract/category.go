package extract

import "strings"

// Category is one of the ten fixed expense categories.
// Display names are Spanish because the review UI is Spanish-first.
type Category struct {
	ID    string
	Name  string
	Emoji string
	Color string
}

var Categories = []Category{
	{ID: "food", Name: "Comida", Emoji: "🍽️", Color: "#f97316"},
	{ID: "transport", Name: "Transporte", Emoji: "🚗", Color: "#3b82f6"},
	{ID: "accommodation", Name: "Alojamiento", Emoji: "🏠", Color: "#8b5cf6"},
	{ID: "office", Name: "Oficina", Emoji: "💼", Color: "#6366f1"},
	{ID: "tech", Name: "Tecnologia", Emoji: "📱", Color: "#06b6d4"},
	{ID: "health", Name: "Salud", Emoji: "🏥", Color: "#ef4444"},
	{ID: "travel", Name: "Viajes", Emoji: "✈️", Color: "#14b8a6"},
	{ID: "shopping", Name: "Compras", Emoji: "🛍️", Color: "#ec4899"},
	{ID: "services", Name: "Servicios", Emoji: "⚡", Color: "#84cc16"},
	{ID: "other", Name: "Otros", Emoji: "📄", Color: "#6b7280"},
}

// CategoryByID returns the category for an id, falling back to "other".
func CategoryByID(id string) Category {
	for _, c := range Categories {
		if c.ID == id {
			return c
		}
	}
	return Categories[len(Categories)-1]
}

// categoryKeywords is the fallback classifier, consulted only when no brand
// rule matched. Order matters: the first category with any keyword present
// in the lowercased text wins. "other" is the default and has no keywords.
var categoryKeywords = []struct {
	ID       string
	Keywords []string
}{
	{"food", []string{"restaurante", "restaurant", "cafeteria", "cafetería", "bar ", "menu del dia", "menú del día", "supermercado", "panaderia", "panadería", "comida", "bebida", "cerveza", "pizzeria", "pizzería", "hamburguesa", "desayuno", "almuerzo", "cena"}},
	{"transport", []string{"gasolinera", "gasolina", "diesel", "gasoleo", "gasóleo", "combustible", "parking", "aparcamiento", "peaje", "autopista", "taxi", "vtc", "billete", "metro", "autobus", "autobús", "tren"}},
	{"accommodation", []string{"hotel", "hostal", "apartamento", "alojamiento", "noche", "habitacion", "habitación", "check-in", "check out"}},
	{"office", []string{"papeleria", "papelería", "material de oficina", "toner", "tóner", "folios", "archivador", "mensajeria", "mensajería", "coworking"}},
	{"tech", []string{"informatica", "informática", "ordenador", "portatil", "portátil", "monitor", "teclado", "raton", "ratón", "software", "licencia", "movil", "móvil", "smartphone", "tablet", "electronica", "electrónica"}},
	{"health", []string{"farmacia", "parafarmacia", "clinica", "clínica", "dental", "dentista", "medico", "médico", "optica", "óptica", "fisioterapia", "hospital"}},
	{"travel", []string{"vuelo", "aerolinea", "aerolínea", "aeropuerto", "boarding", "embarque", "agencia de viajes", "maleta", "equipaje"}},
	{"shopping", []string{"ropa", "calzado", "zapatos", "moda", "tienda", "boutique", "regalo", "jugueteria", "juguetería", "perfumeria", "perfumería"}},
	{"services", []string{"factura mensual", "telefonia", "telefonía", "fibra", "internet", "electricidad", "luz", "gas natural", "agua", "seguro", "suscripcion", "suscripción", "asesoria", "asesoría", "gestoria", "gestoría", "limpieza", "mantenimiento"}},
}

// matchCategoryKeywords classifies lowered text by keyword table order.
// Returns "other" when nothing matches.
func matchCategoryKeywords(lowered string) string {
	for _, entry := range categoryKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(lowered, kw) {
				return entry.ID
			}
		}
	}
	return "other"
}
