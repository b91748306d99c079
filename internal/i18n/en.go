package i18n

var en = Translations{
	Locale: "en",
	Email: Email{
		FromEmail:      "noreply@tigermom.app",
		FromName:       "TigerMom",
		AppName:        "TigerMom",
		WelcomeSubject: "Welcome to TigerMom!",
		WelcomeText: `Hi {name},

Welcome to {appName}! We're excited to have you on board.

{appName} helps you stay organized and on top of your tasks. You can start adding tasks right away and manage them efficiently.

If you have any questions or need help, feel free to reach out to us.

Best regards,
The {appName} Team`,
		WelcomeHeading:        "Welcome to {appName}! 🎉",
		Greeting:              "Hi",
		WelcomeMessage:        "We're excited to have you on board!",
		DescriptionMessage:    "{appName} helps you stay organized and on top of your tasks. You can start adding tasks right away and manage them efficiently.",
		GettingStartedHeading: "Getting Started",
		Steps: []string{
			"Sign in to your account",
			"Add your first task",
			"Stay organized and productive",
		},
		HelpMessage:    "If you have any questions or need help, feel free to reach out to us.",
		ClosingMessage: "Best regards,",
		Signature:      "The {appName} Team",
	},
	Contact: Contact{
		Subject:    "{userName} would like to book a lesson",
		Postscript: "This message was sent through TutorLux, the tutor directory for students and parents. Reply to this email to answer directly.",
	},
}
