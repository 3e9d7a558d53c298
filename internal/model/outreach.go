package model

type CreateAssistantRequest struct {
	Email string `json:"email" form:"email"`
}

type CreateAssistantResponse struct {
	AssistantID string `json:"assistant_id"`
	FormLink    string `json:"form_link"`
	EmailSent   bool   `json:"email_sent"`
}

type MakeOutreachCallRequest struct {
	AssistantID  string `json:"assistant_id" form:"assistant_id"`
	PhoneNumber  string `json:"phone_number" form:"phone_number"`
	Requirements string `json:"requirements" form:"requirements"`
}

type MakeOutreachCallResponse struct {
	Success bool   `json:"success"`
	CallID  string `json:"call_id"`
	Status  string `json:"status"`
}

const (
	OutreachEventAssistantCreated = "assistant_created"
	OutreachEventCallPlaced       = "call_placed"
)

// OutreachEvent is published to the outreach topic, keyed by assistant id.
type OutreachEvent struct {
	Type        string `json:"type"`
	AssistantID string `json:"assistant_id"`
	Email       string `json:"email,omitempty"`
	CallID      string `json:"call_id,omitempty"`
	Status      string `json:"status,omitempty"`
	At          string `json:"at"`
}

type OutreachFormRequest struct {
	AssistantID string `json:"assistant_id" form:"assistant_id"`
	Name        string `json:"name" form:"name"`
	PhoneNumber string `json:"phone_number" form:"phone_number"`
}
