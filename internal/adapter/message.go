package adapter

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/go-account-auth/models"
)

const verificationSubject = "Verify your email"

var verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<body>
<p>Hi {{.FirstName}} {{.LastName}},</p>
<p>Use the code below to verify your email address:</p>
<p style="font-size:24px;letter-spacing:4px"><strong>{{.Code}}</strong></p>
<p>If you did not create an account, you can ignore this email.</p>
</body>
</html>
`))

// renderVerificationHTML renders the HTML body of the verification email.
// Names are escaped by html/template.
func renderVerificationHTML(n models.Notification) (string, error) {
	var buf bytes.Buffer
	if err := verificationTemplate.Execute(&buf, n); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderingMessage, err)
	}
	return buf.String(), nil
}

// buildMessage assembles the verification email with an HTML body.
func buildMessage(from string, n models.Notification, now time.Time) (*mail.Msg, error) {
	body, err := renderVerificationHTML(n)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err = msg.From(from); err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrRenderingMessage, err)
	}
	if err = msg.To(n.Recipients...); err != nil {
		return nil, fmt.Errorf("%w: recipients: %w", ErrRenderingMessage, err)
	}
	msg.Subject(verificationSubject)
	msg.SetDateWithValue(now)
	msg.SetBodyString(mail.TypeTextHTML, body)

	return msg, nil
}
