package models

// Envelope is the uniform response wrapper. All three keys are serialized on
// every response, as null where unpopulated.
type Envelope struct {
	Meta   interface{}   `json:"meta"`
	Data   interface{}   `json:"data"`
	Errors []ErrorDetail `json:"errors"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Source  string `json:"source"`
}

// MessageData is the data variant used by mutation responses.
type MessageData struct {
	Message string `json:"message"`
}

func SuccessEnvelope(data interface{}) Envelope {
	return Envelope{Data: data}
}

func MessageEnvelope(message string) Envelope {
	return Envelope{Data: MessageData{Message: message}}
}

func ErrorEnvelope(message, source string) Envelope {
	return Envelope{Errors: []ErrorDetail{{Message: message, Source: source}}}
}
