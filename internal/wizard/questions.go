package wizard

// Canonical question per step, by language. Index matches Steps.
var questionsTR = []string{
	"Merhaba! Önce seni tanıyalım. Adını ve soyadını yazabilir misin? Sana nasıl hitap edeyim?",
	"Doğum yılın nedir?",
	"Doğrulamak için soruyorum. Cinsiyet belirtebilirsen sevinirim: kadın, erkek veya belirtmek istemiyorum.",
	"Ne zaman işe başlayabilirsin? 'Yarın', '3 Gün İçinde' veya '1 Hafta İçinde' yazman yeterli.",
	"Hangi vardiyalarda çalışmak istersin? Sabah, Öğle, Akşam; hatta birden fazlasını da söyleyebilirsin.",
	"İş yerinden hangi yan hakları beklersin? Örneğin Yemek, Ulaşım, Özel Gün İzni.",
	"Seni en iyi anlatan özelliklerden 2 tanesini yazar mısın? Örneğin: insan ilişkileri iyi, sorun çözen, konuşkan, titiz, çabuk öğrenen, zamanında işe gelen.",
	"Aylık maaş beklentin nedir? Bir maaş aralığını rakamla yazarsan sevinirim.",
	"Bahşiş nasıl olsun istersin? 'Bahşiş Çalışana Ait', 'Ortak Bahşiş' veya 'Bahşiş Yok' diyebilirsin.",
	"Kısaca deneyiminden bahseder misin? Nerede, ne kadar süre çalıştın, neler yaptın, uzmanlıkların neler?",
	"Son olarak, topladığım tüm bu bilgileri kullanarak senin için profesyonel bir biyografi oluşturacağım. 'Tamam, oluştur' demen yeterli mi?",
}

var questionsEN = []string{
	"Hi! Let’s get to know you. Could you write your first and last name? How should I address you?",
	"What is your year of birth?",
	"Just to confirm, could you share your gender: female, male or prefer not to say?",
	"When can you start working? Typing 'Tomorrow', 'Within 3 Days' or 'Within 1 Week' is enough.",
	"Which shifts would you like to work? Morning, Noon, Evening; you can also mention more than one.",
	"Which benefits do you expect from the workplace? For example: Meal, Transportation, Special Day Off.",
	"Could you write 2 traits that describe you best? For example: good with people, problem solver, talkative, tidy, fast learner, always on time.",
	"What is your monthly salary expectation? It would be great if you could write a numeric range.",
	"How would you like the tip policy to be? You can say 'Tips Belong to Employee', 'Shared Tips' or 'No Tips'.",
	"Can you briefly describe your experience? Where did you work, for how long, what did you do, what are your specialties?",
	"Finally, I’ll use all this information to create a professional biography for you. Is it okay if I go ahead and create it now? Just say 'Yes, create it'.",
}

// Question returns the canonical question for a step, or the all-done
// message when the index is out of range.
func Question(lang string, step int) string {
	questions := questionsTR
	if lang == "en" {
		questions = questionsEN
	}
	if step < 0 || step >= len(questions) {
		return message("questions-done", lang)
	}
	return questions[step]
}
