package timeutil

import "time"

// Portugal national and Braga municipal holidays for 2024, keyed by
// YYYY-MM-DD.
var holidays = map[string]bool{
	// National
	"2024-01-01": true, // Ano Novo
	"2024-02-13": true, // Carnaval
	"2024-03-29": true, // Sexta-feira Santa
	"2024-03-31": true, // Páscoa
	"2024-04-25": true, // Dia da Liberdade
	"2024-05-01": true, // Dia do Trabalhador
	"2024-06-10": true, // Dia de Portugal
	"2024-06-20": true, // Corpo de Deus
	"2024-08-15": true, // Assunção de Nossa Senhora
	"2024-10-05": true, // Implantação da República
	"2024-11-01": true, // Dia de Todos os Santos
	"2024-12-01": true, // Restauração da Independência
	"2024-12-08": true, // Dia da Imaculada Conceição
	"2024-12-25": true, // Natal
	// Braga
	"2024-06-24": true, // São João
}

// IsHoliday reports whether t's calendar date falls on a configured
// holiday. Invalid input returns false.
func IsHoliday(t time.Time) bool {
	if !IsValidDate(t) {
		return false
	}
	return holidays[t.Format("2006-01-02")]
}
