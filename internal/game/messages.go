package game

const (
	msgPressToStart    = "Press enter to question"
	msgOutOfQuestions  = "Seems like you have ran out of questions\n"
	msgRoundQuestion   = "Round %d\nQuestion: %s\n\nPress enter once answered"
	msgAnswerOutcome   = "Answer: %s\n\nDid the player get it correct? [Y/n, s to skip] "
	msgInvalidOutcome  = "Invalid response, is the answer correct? [Y/n, s to skip] "
	msgAttributionMenu = "Options:\n%s\n\nWho answered the question: "
	msgMenuEntry       = "  [%d] %s"
	msgInvalidPlayer   = "Invalid selection, please re-enter: "
)
