package vapi

type Voice struct {
	VoiceID  string `json:"voiceId"`
	Provider string `json:"provider"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Model struct {
	Provider    string    `json:"provider"`
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Messages    []Message `json:"messages"`
}

type Transcriber struct {
	Model       string `json:"model"`
	Language    string `json:"language"`
	Provider    string `json:"provider"`
	Endpointing int    `json:"endpointing"`
}

type StartSpeakingPlan struct {
	WaitSeconds             float64 `json:"waitSeconds"`
	SmartEndpointingEnabled string  `json:"smartEndpointingEnabled"`
}

type VoicemailDetection struct {
	Provider string `json:"provider"`
}

// Assistant is the configuration of a vendor-hosted calling persona.
type Assistant struct {
	Name                       string             `json:"name"`
	Voice                      Voice              `json:"voice"`
	Model                      Model              `json:"model"`
	FirstMessage               string             `json:"firstMessage"`
	VoicemailMessage           string             `json:"voicemailMessage"`
	EndCallMessage             string             `json:"endCallMessage"`
	EndCallPhrases             []string           `json:"endCallPhrases"`
	ClientMessages             []string           `json:"clientMessages"`
	ServerMessages             []string           `json:"serverMessages"`
	Transcriber                Transcriber        `json:"transcriber"`
	StartSpeakingPlan          StartSpeakingPlan  `json:"startSpeakingPlan"`
	VoicemailDetection         VoicemailDetection `json:"voicemailDetection"`
	BackgroundDenoisingEnabled bool               `json:"backgroundDenoisingEnabled"`
	HipaaEnabled               bool               `json:"hipaaEnabled"`
}

type Customer struct {
	NumberE164CheckEnabled bool   `json:"numberE164CheckEnabled"`
	Number                 string `json:"number"`
}

type CallRequest struct {
	Customers     []Customer `json:"customers"`
	AssistantID   string     `json:"assistantId"`
	PhoneNumberID string     `json:"phoneNumberId"`
}

type CreatedAssistant struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

type Call struct {
	ID     string `mapstructure:"id"`
	Status string `mapstructure:"status"`
}
