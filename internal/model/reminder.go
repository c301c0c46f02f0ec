package model

// Reminder fires either MinuteOffset minutes before the task's due time,
// or at the absolute Due. Exactly one of the two is set.
type Reminder struct {
	ID           string
	TaskID       string
	Type         string // "relative" or "absolute"
	MinuteOffset *int
	Due          *Due
}
