package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/goldenpays/consultancy-api/internal/domain"
)

const (
	companyName    = "GOLDENPAYS LTD"
	companyNumber  = "16227513"
	companyAddress = "Office 12, Initial Business Centre, Wilson Business Park, Manchester M40 8WN, UK"
	autoReplyTitle = "Your Inquiry Has Been Received - " + companyName
)

// Composer renders the two messages sent for every accepted inquiry.
type Composer struct {
	from     string
	operator string
	location *time.Location
}

// NewComposer builds a composer. Timestamps are rendered in Europe/London,
// falling back to UTC when tzdata is unavailable.
func NewComposer(from, operator string) *Composer {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		loc = time.UTC
	}
	return &Composer{from: from, operator: operator, location: loc}
}

// OperatorNotice is the message to the back office.
func (c *Composer) OperatorNotice(inquiry domain.Inquiry) (Message, error) {
	body, err := c.render(operatorTemplate, inquiry)
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.from,
		To:      []string{c.operator},
		Subject: fmt.Sprintf("New Contact Form Submission - %s", inquiry.Service),
		HTML:    body,
	}, nil
}

// AutoReply is the acknowledgement sent to the submitter.
func (c *Composer) AutoReply(inquiry domain.Inquiry) (Message, error) {
	body, err := c.render(autoReplyTemplate, inquiry)
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.from,
		To:      []string{inquiry.Email},
		Subject: autoReplyTitle,
		HTML:    body,
	}, nil
}

type templateData struct {
	Inquiry       domain.Inquiry
	HasCompany    bool
	MessageLines  []string
	Received      string
	Operator      string
	CompanyName   string
	CompanyNumber string
	Address       string
}

func (c *Composer) render(tmpl *template.Template, inquiry domain.Inquiry) (string, error) {
	data := templateData{
		Inquiry:       inquiry,
		HasCompany:    inquiry.Company != "" && inquiry.Company != domain.CompanyNotProvided,
		MessageLines:  strings.Split(inquiry.Message, "\n"),
		Received:      inquiry.CreatedAt.In(c.location).Format("02/01/2006, 15:04:05"),
		Operator:      c.operator,
		CompanyName:   companyName,
		CompanyNumber: companyNumber,
		Address:       companyAddress,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

var operatorTemplate = template.Must(template.New("operator").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #001F3F; color: white; padding: 20px; text-align: center;">
    <h1 style="margin: 0; font-size: 24px;">{{.CompanyName}}</h1>
    <p style="margin: 5px 0 0 0; font-size: 12px; letter-spacing: 2px;">NEW INQUIRY</p>
  </div>
  <div style="background-color: #f8f9fa; padding: 30px; border: 1px solid #e9ecef;">
    <h2 style="color: #001F3F; margin-top: 0;">Contact Form Submission</h2>
    <table style="width: 100%; border-collapse: collapse;">
      <tr><td style="padding: 12px 0; font-weight: bold;">Name:</td><td style="padding: 12px 0;">{{.Inquiry.Name}}</td></tr>
      {{- if .HasCompany}}
      <tr><td style="padding: 12px 0; font-weight: bold;">Company:</td><td style="padding: 12px 0;">{{.Inquiry.Company}}</td></tr>
      {{- end}}
      <tr><td style="padding: 12px 0; font-weight: bold;">Email:</td><td style="padding: 12px 0;"><a href="mailto:{{.Inquiry.Email}}" style="color: #C5A059;">{{.Inquiry.Email}}</a></td></tr>
      <tr><td style="padding: 12px 0; font-weight: bold;">Service:</td><td style="padding: 12px 0;">{{.Inquiry.Service}}</td></tr>
    </table>
    <div style="margin-top: 20px;">
      <p style="font-weight: bold; margin-bottom: 10px;">Message:</p>
      <div style="background-color: white; padding: 15px; border-left: 4px solid #C5A059; line-height: 1.6;">
        {{- range $i, $line := .MessageLines}}{{if $i}}<br>{{end}}{{$line}}{{end -}}
      </div>
    </div>
  </div>
  <div style="background-color: #001F3F; color: #C5A059; padding: 15px; text-align: center; font-size: 12px;">
    <p style="margin: 0;">Received: {{.Received}}</p>
    <p style="margin: 5px 0 0 0;">{{.CompanyName}} | Company No. {{.CompanyNumber}}</p>
  </div>
</div>
`))

var autoReplyTemplate = template.Must(template.New("auto_reply").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #001F3F; color: white; padding: 20px; text-align: center;">
    <h1 style="margin: 0; font-size: 24px;">{{.CompanyName}}</h1>
    <p style="margin: 5px 0 0 0; font-size: 12px; letter-spacing: 2px;">CORPORATE TECH BOUTIQUE</p>
  </div>
  <div style="padding: 30px; background-color: #ffffff; border: 1px solid #e9ecef;">
    <h2 style="color: #001F3F; margin-top: 0;">Thank You for Your Inquiry</h2>
    <p style="line-height: 1.6;">Dear {{.Inquiry.Name}},</p>
    <p style="line-height: 1.6;">
      We acknowledge receipt of your inquiry regarding <strong>{{.Inquiry.Service}}</strong>.
      Our team will review your request and respond within 2 business days.
    </p>
    <div style="background-color: #f8f9fa; padding: 15px; border-left: 4px solid #C5A059; margin: 20px 0;">
      <p style="margin: 0; font-size: 14px;">
        <strong>Reference Details:</strong><br>
        Service: {{.Inquiry.Service}}<br>
        Submitted: {{.Received}}
      </p>
    </div>
    <p style="line-height: 1.6;">
      For urgent matters, please contact us directly at <a href="mailto:{{.Operator}}" style="color: #C5A059;">{{.Operator}}</a>.
    </p>
    <p style="line-height: 1.6;">Best regards,<br><strong>{{.CompanyName}}</strong><br>Strategic Technology Advisory</p>
  </div>
  <div style="background-color: #001F3F; color: #C5A059; padding: 15px; text-align: center; font-size: 11px;">
    <p style="margin: 0;">{{.CompanyName}} | Company No. {{.CompanyNumber}}</p>
    <p style="margin: 5px 0;">{{.Address}}</p>
  </div>
</div>
`))
