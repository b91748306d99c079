package i18n

var fr = Translations{
	Locale: "fr",
	Email: Email{
		FromEmail:      "support@tutorlux.com",
		FromName:       "TutorLux",
		AppName:        "TutorLux",
		WelcomeSubject: "Bienvenue sur TutorLux !",
		WelcomeText: `Bonjour {name},

Bienvenue sur {appName} ! Nous sommes ravis de vous compter parmi nous.

{appName} vous aide à rester organisé et à maîtriser vos tâches. Vous pouvez commencer à ajouter des tâches immédiatement et les gérer efficacement.

Si vous avez des questions ou besoin d'aide, n'hésitez pas à nous contacter.

Cordialement,
L'équipe {appName}`,
		WelcomeHeading:        "Bienvenue sur {appName} ! 🎉",
		Greeting:              "Bonjour",
		WelcomeMessage:        "Nous sommes ravis de vous compter parmi nous !",
		DescriptionMessage:    "{appName} vous aide à rester organisé et à maîtriser vos tâches. Vous pouvez commencer à ajouter des tâches immédiatement et les gérer efficacement.",
		GettingStartedHeading: "Pour Commencer",
		Steps: []string{
			"Connectez-vous à votre compte",
			"Ajoutez votre première tâche",
			"Restez organisé et productif",
		},
		HelpMessage:    "Si vous avez des questions ou besoin d'aide, n'hésitez pas à nous contacter.",
		ClosingMessage: "Cordialement,",
		Signature:      "L'équipe {appName}",
	},
	Contact: Contact{
		Subject:    "{userName} souhaite réserver un cours",
		Postscript: "Ce message a été envoyé via TutorLux, l'annuaire de tuteurs pour élèves et parents. Répondez à cet email pour lui écrire directement.",
	},
}
