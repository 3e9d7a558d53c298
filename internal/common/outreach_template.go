package common

const OutreachEmailText = `Your VAPI assistant is ready to make calls!

Click here to start: {{.FormLink}}

This link will take you to a form where you can enter the recipient's details for the AI outreach call.`

const OutreachEmailHTML = `<h2>Hi Looking for collaboration</h2>
<p>get on call and discuss the details</p>
<p><strong>Assistant ID:</strong> {{.AssistantID}}</p>
<div style="margin: 30px 0;">
  <a href="{{.FormLink}}" style="display: inline-block; padding: 14px 28px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px; font-size: 16px;">
    Start Your Outreach Call
  </a>
</div>
<p style="color: #666; font-size: 14px;">
  Click the button above to access a form where you can enter the recipient's details for the AI outreach call.
</p>`

// OutreachFormPage renders every state of the outreach form. Invalid is set
// when the link carries no assistant id, Notice/Failed after a submission.
const OutreachFormPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Outreach Form</title>
</head>
<body>
{{if .Invalid}}
<h1>Invalid Link</h1>
<p>This link is invalid. Please use the link provided in your email.</p>
{{else}}
<h1>Outreach Form</h1>
<p>Enter your details to receive an AI outreach call.</p>
{{if .Notice}}<p class="{{if .Failed}}error{{else}}success{{end}}">{{.Notice}}</p>{{end}}
<form method="POST" action="{{.Action}}">
  <input type="hidden" name="assistant_id" value="{{.AssistantID}}">
  <label for="name">Your Name</label>
  <input id="name" name="name" value="{{.Name}}" placeholder="Enter your name" required>
  <label for="phone">Phone Number</label>
  <input id="phone" name="phone_number" type="tel" value="{{.PhoneNumber}}" placeholder="+1234567890" required>
  <button type="submit">Start Outreach Call</button>
</form>
{{end}}
</body>
</html>`
