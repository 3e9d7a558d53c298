package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/influencerflow/backend/internal/common"
	"github.com/influencerflow/backend/internal/model"
	"github.com/influencerflow/backend/pkg/api/mailgun"
	"github.com/influencerflow/backend/pkg/api/vapi"
	"github.com/influencerflow/backend/pkg/errorx"
	"github.com/influencerflow/backend/pkg/pubsub"
	"github.com/influencerflow/backend/pkg/xcontext"
)

const OutreachTopic = "outreach"

type OutreachDomain interface {
	CreateAssistant(context.Context, *model.CreateAssistantRequest) (*model.CreateAssistantResponse, error)
	MakeOutreachCall(context.Context, *model.MakeOutreachCallRequest) (*model.MakeOutreachCallResponse, error)
	ShowForm(ctx context.Context, w http.ResponseWriter) error
	SubmitForm(ctx context.Context, w http.ResponseWriter) error
}

type outreachDomain struct {
	vapiEndpoint    vapi.IEndpoint
	mailgunEndpoint mailgun.IEndpoint
	publisher       pubsub.Publisher
}

func NewOutreachDomain(
	vapiEndpoint vapi.IEndpoint,
	mailgunEndpoint mailgun.IEndpoint,
	publisher pubsub.Publisher,
) *outreachDomain {
	return &outreachDomain{
		vapiEndpoint:    vapiEndpoint,
		mailgunEndpoint: mailgunEndpoint,
		publisher:       publisher,
	}
}

func (d *outreachDomain) CreateAssistant(
	ctx context.Context, req *model.CreateAssistantRequest,
) (*model.CreateAssistantResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, errorx.New(errorx.BadRequest, "Please enter an email")
	}

	if err := validate.Var(email, "email"); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid email address")
	}

	assistant, err := d.vapiEndpoint.CreateAssistant(ctx, newOutreachAssistant())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create assistant: %v", err)
		return nil, errorx.New(errorx.VendorFailed, "Failed to create assistant")
	}

	formLink := d.formLink(ctx, assistant.ID)
	emailSent := true
	if err := d.sendAssistantEmail(ctx, email, assistant.ID, formLink); err != nil {
		// The assistant is usable without the email, the link is also returned.
		xcontext.Logger(ctx).Warnf("Cannot send assistant email to %s: %v", email, err)
		emailSent = false
	}

	d.publishEvent(ctx, model.OutreachEvent{
		Type:        model.OutreachEventAssistantCreated,
		AssistantID: assistant.ID,
		Email:       email,
	})

	return &model.CreateAssistantResponse{
		AssistantID: assistant.ID,
		FormLink:    formLink,
		EmailSent:   emailSent,
	}, nil
}

func (d *outreachDomain) MakeOutreachCall(
	ctx context.Context, req *model.MakeOutreachCallRequest,
) (*model.MakeOutreachCallResponse, error) {
	if req.AssistantID == "" {
		return nil, errorx.New(errorx.BadRequest,
			"Missing assistant ID. Please use the correct link from your email.")
	}

	phoneNumber := strings.TrimSpace(req.PhoneNumber)
	if phoneNumber == "" {
		return nil, errorx.New(errorx.BadRequest, "Please enter a phone number")
	}

	call, err := d.vapiEndpoint.CreateCall(ctx, vapi.CallRequest{
		Customers: []vapi.Customer{
			{NumberE164CheckEnabled: true, Number: phoneNumber},
		},
		AssistantID:   req.AssistantID,
		PhoneNumberID: xcontext.Configs(ctx).Vapi.PhoneNumberID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot place outreach call for assistant %s: %v", req.AssistantID, err)

		var vapiErr vapi.Error
		if errors.As(err, &vapiErr) && vapiErr.StatusCode == http.StatusBadRequest {
			return nil, errorx.New(errorx.BadRequest, "Failed to initiate outreach call: %s", vapiErr.Message)
		}

		return nil, errorx.New(errorx.VendorFailed, "Failed to initiate outreach call. Please try again.")
	}

	xcontext.Logger(ctx).Infof("Placed call %s for assistant %s (%s)", call.ID, req.AssistantID, req.Requirements)
	d.publishEvent(ctx, model.OutreachEvent{
		Type:        model.OutreachEventCallPlaced,
		AssistantID: req.AssistantID,
		CallID:      call.ID,
		Status:      call.Status,
	})

	return &model.MakeOutreachCallResponse{
		Success: true,
		CallID:  call.ID,
		Status:  call.Status,
	}, nil
}

type outreachFormPage struct {
	Invalid     bool
	Action      string
	AssistantID string
	Name        string
	PhoneNumber string
	Notice      string
	Failed      bool
}

func (d *outreachDomain) ShowForm(ctx context.Context, w http.ResponseWriter) error {
	assistantID := xcontext.HTTPRequest(ctx).URL.Query().Get("assistant_id")
	if assistantID == "" {
		return d.renderForm(ctx, w, http.StatusBadRequest, outreachFormPage{Invalid: true})
	}

	return d.renderForm(ctx, w, http.StatusOK, outreachFormPage{
		Action:      xcontext.Configs(ctx).Outreach.FormPath,
		AssistantID: assistantID,
	})
}

func (d *outreachDomain) SubmitForm(ctx context.Context, w http.ResponseWriter) error {
	httpReq := xcontext.HTTPRequest(ctx)
	if err := httpReq.ParseForm(); err != nil {
		return errorx.New(errorx.BadRequest, "Invalid form")
	}

	req := model.OutreachFormRequest{
		AssistantID: httpReq.FormValue("assistant_id"),
		Name:        strings.TrimSpace(httpReq.FormValue("name")),
		PhoneNumber: strings.TrimSpace(httpReq.FormValue("phone_number")),
	}

	if req.AssistantID == "" {
		return d.renderForm(ctx, w, http.StatusBadRequest, outreachFormPage{Invalid: true})
	}

	page := outreachFormPage{
		Action:      xcontext.Configs(ctx).Outreach.FormPath,
		AssistantID: req.AssistantID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	}

	_, err := d.MakeOutreachCall(ctx, &model.MakeOutreachCallRequest{
		AssistantID:  req.AssistantID,
		PhoneNumber:  req.PhoneNumber,
		Requirements: fmt.Sprintf("Customer name: %s. Please proceed with the outreach call.", req.Name),
	})
	if err != nil {
		status := http.StatusInternalServerError
		page.Notice = "Failed to initiate outreach call. Please try again."
		var errx errorx.Error
		if errors.As(err, &errx) {
			status = errx.Code.HTTPStatus()
			page.Notice = errx.Message
		}

		page.Failed = true
		return d.renderForm(ctx, w, status, page)
	}

	page.Notice = "Outreach call has been initiated. You will receive a call shortly."
	page.Name = ""
	page.PhoneNumber = ""
	return d.renderForm(ctx, w, http.StatusOK, page)
}

func (d *outreachDomain) renderForm(
	ctx context.Context, w http.ResponseWriter, status int, page outreachFormPage,
) error {
	body, err := common.ExecuteHTMLTemplate(common.OutreachFormPage, page)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot render outreach form: %v", err)
		return errorx.Unknown
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write([]byte(body))
	return err
}

func (d *outreachDomain) formLink(ctx context.Context, assistantID string) string {
	cfg := xcontext.Configs(ctx)
	return fmt.Sprintf("%s%s?assistant_id=%s",
		strings.TrimSuffix(cfg.ApiServer.PublicURL, "/"),
		cfg.Outreach.FormPath,
		url.QueryEscape(assistantID),
	)
}

func (d *outreachDomain) sendAssistantEmail(ctx context.Context, to, assistantID, formLink string) error {
	data := map[string]string{"AssistantID": assistantID, "FormLink": formLink}
	text, err := common.ExecuteTemplate(common.OutreachEmailText, data)
	if err != nil {
		return err
	}

	html, err := common.ExecuteHTMLTemplate(common.OutreachEmailHTML, data)
	if err != nil {
		return err
	}

	id, err := d.mailgunEndpoint.Send(ctx, mailgun.Message{
		To:      []string{to},
		Subject: xcontext.Configs(ctx).Outreach.EmailSubject,
		Text:    text,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	xcontext.Logger(ctx).Debugf("Sent assistant email %s to %s", id, to)
	return nil
}

func (d *outreachDomain) publishEvent(ctx context.Context, event model.OutreachEvent) {
	event.At = time.Now().UTC().Format(model.DefaultTimeLayout)
	b, err := json.Marshal(event)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal outreach event: %v", err)
		return
	}

	err = d.publisher.Publish(ctx, OutreachTopic, &pubsub.Pack{
		Key: []byte(event.AssistantID),
		Msg: b,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot publish outreach event %s: %v", event.Type, err)
	}
}
