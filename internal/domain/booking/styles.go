package booking

// Horas ocupadas por estilo. Só usada para calcular spillover;
// a reserva persiste apenas o nome do estilo.
var styleDurations = map[string]int{
	"Big Box braids":   3,
	"Small Box braids": 4,
	"Knotless braids":  3,
	"Fulani braids":    3,
	"Cornrows":         2,
	"Twists":           2,
	"Silk press":       1,
	"Wig install":      1,
}

// StyleDurationHours devolve a duração do estilo; estilo
// desconhecido ocupa 1 hora.
func StyleDurationHours(style string) int {
	if d, ok := styleDurations[style]; ok {
		return d
	}
	return 1
}
