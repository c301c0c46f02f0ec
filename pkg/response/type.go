package response

// Envelope is the success document printed for every command.
type Envelope struct {
	OK          bool         `json:"ok"`
	Command     string       `json:"command"`
	Result      any          `json:"result"`
	NextActions []NextAction `json:"next_actions,omitempty"`
}

// NextAction suggests a follow-up command.
type NextAction struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// Failure is the document printed when a command fails.
type Failure struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
