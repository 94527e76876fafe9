package quiz

// Question is one multiple-choice item. Correct indexes Answers.
type Question struct {
	Text        string
	Answers     []string
	Correct     int
	Explanation string
}

// Bank returns the fixed, ordered internet-safety question bank. Each call
// returns a fresh copy so callers cannot mutate the shared definition.
func Bank() []Question {
	out := make([]Question, len(bank))
	for i, q := range bank {
		q.Answers = append([]string(nil), q.Answers...)
		out[i] = q
	}
	return out
}

var bank = []Question{
	{
		Text: "Jakie hasło jest najbezpieczniejsze?",
		Answers: []string{
			"123456",
			"haslo123",
			"MojeP@sw0rd!2024#Bezpieczne",
			"qwerty",
		},
		Correct:     2,
		Explanation: "Silne hasło powinno być długie i zawierać wielkie i małe litery, cyfry oraz znaki specjalne.",
	},
	{
		Text: "Co zrobić, jeśli otrzymasz podejrzany e-mail z linkiem?",
		Answers: []string{
			"Kliknąć w link, żeby sprawdzić co to jest",
			"Odpisać na e-mail z pytaniem",
			"Nie klikać i usunąć wiadomość",
			"Przesłać link znajomym",
		},
		Correct:     2,
		Explanation: "Podejrzane e-maile mogą być próbami phishingu. Nigdy nie należy klikać w nieznane linki.",
	},
	{
		Text: "Które dane osobowe NIE powinny być udostępniane w internecie?",
		Answers: []string{
			"Ulubiony kolor",
			"Adres zamieszkania",
			"Imię psa",
			"Zainteresowania",
		},
		Correct:     1,
		Explanation: "Adres zamieszkania to wrażliwe dane osobowe, które mogą zostać wykorzystane przez przestępców.",
	},
	{
		Text: "Co oznacza skrót 2FA?",
		Answers: []string{
			"Two Factor Authentication",
			"Two Fast Access",
			"To File Access",
			"Two Form Application",
		},
		Correct:     0,
		Explanation: "2FA (Two Factor Authentication) to dwuetapowe uwierzytelnianie, które dodaje dodatkową warstwę bezpieczeństwa.",
	},
	{
		Text: "Jak często należy aktualizować oprogramowanie?",
		Answers: []string{
			"Nigdy, jeśli działa",
			"Raz w roku",
			"Jak najszybciej po pojawieniu się aktualizacji",
			"Tylko gdy komputer działa wolno",
		},
		Correct:     2,
		Explanation: "Aktualizacje często zawierają poprawki bezpieczeństwa chroniące przed nowymi zagrożeniami.",
	},
	{
		Text: "Czym jest phishing?",
		Answers: []string{
			"Nową grą komputerową",
			"Metodą łowienia ryb",
			"Próbą wyłudzenia danych poprzez podszywanie się",
			"Rodzajem antywirusa",
		},
		Correct:     2,
		Explanation: "Phishing to oszustwo polegające na podszywaniu się pod zaufane źródła w celu wyłudzenia danych.",
	},
	{
		Text: "Które zachowanie jest bezpieczne w mediach społecznościowych?",
		Answers: []string{
			"Akceptowanie wszystkich zaproszeń do znajomych",
			"Udostępnianie swojej lokalizacji w czasie rzeczywistym",
			"Ustawienie profilu na prywatny",
			"Podawanie numeru telefonu w postach",
		},
		Correct:     2,
		Explanation: "Prywatny profil ogranicza dostęp do Twoich danych tylko do zaakceptowanych przez Ciebie osób.",
	},
	{
		Text: "Co zrobić, jeśli ktoś Cię nęka w internecie?",
		Answers: []string{
			"Odpowiadać tym samym",
			"Ignorować i nic nie robić",
			"Zablokować osobę i zgłosić to dorosłemu/platformie",
			"Usunąć swoje konto",
		},
		Correct:     2,
		Explanation: "Cyberprzemoc należy zgłaszać. Zablokowanie sprawcy i powiadomienie dorosłych to właściwe kroki.",
	},
	{
		Text: "Dlaczego nie należy używać tego samego hasła do wszystkich kont?",
		Answers: []string{
			"Bo trudno je zapamiętać",
			"Bo w przypadku wycieku, wszystkie konta są zagrożone",
			"Bo system tego nie pozwala",
			"To nieprawda, można używać tego samego hasła",
		},
		Correct:     1,
		Explanation: "Jeśli jedno konto zostanie zhakowane, wszystkie inne konta z tym samym hasłem również są zagrożone.",
	},
	{
		Text: "Kiedy można bezpiecznie podać hasło?",
		Answers: []string{
			"Gdy o to poprosi support techniczny przez e-mail",
			"Gdy o to poprosi znajomy",
			"Nigdy - hasła są tylko dla Ciebie",
			"Gdy wygrasz w loterii",
		},
		Correct:     2,
		Explanation: "Nikt legitymy nie będzie prosił o Twoje hasło. Nigdy go nie podawaj, nawet pozornie zaufanym źródłom.",
	},
}
