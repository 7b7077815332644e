package game

// Operator is the person at the keyboard running the game.
type Operator interface {
	// ReadLine blocks until a line is entered and returns it without the line ending.
	ReadLine() (string, error)
	// Print writes text as-is, without adding a newline.
	Print(text string)
}

// ScreenClearer is implemented by operators that can wipe the terminal.
type ScreenClearer interface {
	ClearScreen()
}
