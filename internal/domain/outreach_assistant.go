package domain

import "github.com/influencerflow/backend/pkg/api/vapi"

const outreachPersonaPrompt = `You are a professional and friendly brand manager from Opraahfx, an influencer marketing agency.

Your job is to explain that you're running a health-focused campaign and found the creator's Instagram profile impressive. You want to discuss a potential collaboration.

The campaign involves creating 7 reels per week, and the budget offered is between Ten to twenty thousand rupees, depending on scope and engagement. You're allowed to negotiate between Five to Twenty Five thousand rupees. All deals must include a brand tag.

Your tone should be confident, friendly, and human.

If the creator seems unsure or hesitant, create urgency by mentioning that you're contacting a few more creators soon and would love a quick confirmation.

If they're interested, confirm that and thank them. If they say maybe or are unavailable, end politely — no follow-up needed.`

const outreachFirstMessage = "Hi, this is Bijay from Influencer-Flow. I'm reaching out about a collaboration opportunity on Instagram — do you have a quick minute?"

const outreachEndCallMessage = "Thanks so much for your time.Since we're moving fast on this campaign, we may reach out to other creators shortly if we don't get a confirmation. Feel free to reach out to Opraahfx if you're interested later. Have a great day!"

// newOutreachAssistant returns the calling persona created for every outreach
// request. Only the recipient of the email differs between requests.
func newOutreachAssistant() vapi.Assistant {
	return vapi.Assistant{
		Name: "Riley",
		Voice: vapi.Voice{
			VoiceID:  "Elliot",
			Provider: "vapi",
		},
		Model: vapi.Model{
			Provider:    "openai",
			Model:       "gpt-4",
			Temperature: 0.5,
			Messages: []vapi.Message{
				{Role: "system", Content: outreachPersonaPrompt},
			},
		},
		FirstMessage:     outreachFirstMessage,
		VoicemailMessage: outreachFirstMessage,
		EndCallMessage:   outreachEndCallMessage,
		EndCallPhrases:   []string{"goodbye", "talk to you soon"},
		ClientMessages: []string{
			"conversation-update",
			"function-call",
			"hang",
			"model-output",
			"speech-update",
			"status-update",
			"transfer-update",
			"transcript",
			"tool-calls",
			"user-interrupted",
			"voice-input",
			"workflow.node.started",
		},
		ServerMessages: []string{
			"conversation-update",
			"end-of-call-report",
			"function-call",
			"hang",
			"speech-update",
			"status-update",
			"tool-calls",
			"transfer-destination-request",
			"user-interrupted",
		},
		Transcriber: vapi.Transcriber{
			Model:       "nova-3",
			Language:    "en",
			Provider:    "deepgram",
			Endpointing: 150,
		},
		StartSpeakingPlan: vapi.StartSpeakingPlan{
			WaitSeconds:             0.4,
			SmartEndpointingEnabled: "livekit",
		},
		VoicemailDetection: vapi.VoicemailDetection{
			Provider: "google",
		},
		BackgroundDenoisingEnabled: false,
		HipaaEnabled:               false,
	}
}
