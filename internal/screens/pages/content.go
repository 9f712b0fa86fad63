package pages

const aboutBody = `Quizly turns any topic you type into a twenty-question multiple-choice quiz, written on the spot by a language model and pitched at grade 11 or 12.

Answer each question, read the explanation, and see your score at the end. Finished quizzes land on the dashboard so you can watch a topic improve over time.

Nothing is stored outside this process. Close the app and the slate is clean.`

const privacyBody = `Quizly keeps your quiz history in memory for the current run only. No accounts, no tracking, no files written with your answers.

The topic you type is sent to the language-model provider configured in your environment so it can write the quiz. Consult that provider's privacy policy for how they handle API traffic.`

const termsBody = `Quizly is provided as-is, without warranty of any kind.

Generated questions come from a language model and can be wrong, outdated, or oddly phrased. Treat them as practice material, not as an authoritative source. Double-check anything that matters for an exam.`

// About returns the about page.
func About() *PageScreen {
	return New("About Quizly", aboutBody)
}

// Privacy returns the privacy page.
func Privacy() *PageScreen {
	return New("Privacy", privacyBody)
}

// Terms returns the terms page.
func Terms() *PageScreen {
	return New("Terms of Use", termsBody)
}
