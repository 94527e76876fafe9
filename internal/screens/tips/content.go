package tips

// tip is one section of the tips page.
type tip struct {
	id    string
	title string
	body  []string
}

var tipSections = []tip{
	{
		id:    "hasla",
		title: "🔑 Silne hasła",
		body: []string{
			"Używaj haseł składających się z co najmniej 12 znaków.",
			"Łącz wielkie i małe litery, cyfry oraz znaki specjalne.",
			"Nie używaj tego samego hasła w kilku serwisach.",
			"Korzystaj z menedżera haseł, aby niczego nie zapominać.",
			"Włącz uwierzytelnianie dwuskładnikowe wszędzie, gdzie to możliwe.",
		},
	},
	{
		id:    "phishing",
		title: "🎣 Phishing",
		body: []string{
			"Nie klikaj w linki z podejrzanych wiadomości e-mail i SMS.",
			"Sprawdzaj adres nadawcy i adres strony przed zalogowaniem.",
			"Bank nigdy nie poprosi Cię o podanie hasła w wiadomości.",
			"Presja czasu i groźby to typowe sygnały oszustwa.",
			"W razie wątpliwości skontaktuj się z firmą inną drogą.",
		},
	},
	{
		id:    "prywatnosc",
		title: "🔒 Prywatność",
		body: []string{
			"Zastanów się, zanim opublikujesz zdjęcie lub informację o sobie.",
			"Ustaw profile w mediach społecznościowych jako prywatne.",
			"Nie podawaj adresu, numeru telefonu ani szkoły obcym osobom.",
			"Sprawdzaj, jakie uprawnienia mają zainstalowane aplikacje.",
			"Pamiętaj, że to, co trafi do sieci, zostaje w niej na długo.",
		},
	},
	{
		id:    "cyberprzemoc",
		title: "🛑 Cyberprzemoc",
		body: []string{
			"Nie odpowiadaj na obraźliwe wiadomości.",
			"Zachowaj dowody: zrzuty ekranu, linki, daty.",
			"Zablokuj osobę, która Cię nęka, i zgłoś ją w serwisie.",
			"Porozmawiaj z zaufaną osobą dorosłą.",
			"Możesz zadzwonić na bezpłatny telefon zaufania 116 111.",
		},
	},
	{
		id:    "aktualizacje",
		title: "🔄 Aktualizacje i Wi-Fi",
		body: []string{
			"Instaluj aktualizacje systemu i aplikacji bez zwłoki.",
			"Pobieraj aplikacje tylko z oficjalnych sklepów.",
			"Unikaj logowania do banku w publicznych sieciach Wi-Fi.",
			"Używaj programu antywirusowego i zapory sieciowej.",
			"Rób regularne kopie zapasowe ważnych plików.",
		},
	},
}
