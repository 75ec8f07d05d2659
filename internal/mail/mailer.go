package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"

	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

const defaultDigestSubject = "Cr8s digest"

// HTMLMailer renders HTML email bodies from templates and delivers them
// through an SMTP relay.
type HTMLMailer struct {
	config    Config
	templates *template.Template
}

// NewHTMLMailer returns an HTMLMailer that renders templates from the
// specified glob pattern, e.g. "templates/**/*.html".
func NewHTMLMailer(config Config, templatesGlob string) (*HTMLMailer, error) {
	templates, err := template.ParseGlob(templatesGlob)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing email templates")
	}
	return &HTMLMailer{
		config:    config,
		templates: templates,
	}, nil
}

// SendDigest renders the crates digest template and sends it to the
// specified recipients.
func (h *HTMLMailer) SendDigest(to []string, crates []cr8s.Crate) error {
	return h.Send(to, defaultDigestSubject, "digest.html", struct {
		Crates []cr8s.Crate
	}{
		Crates: crates,
	})
}

// Send renders the named template with the specified data and sends the
// result as an HTML email.
func (h *HTMLMailer) Send(
	to []string,
	subject string,
	templateName string,
	data interface{},
) error {
	if len(to) == 0 {
		return errors.New("no recipients specified")
	}
	body := &bytes.Buffer{}
	if err := h.templates.ExecuteTemplate(
		body,
		templateName,
		data,
	); err != nil {
		return errors.Wrapf(err, "error rendering template %q", templateName)
	}
	message := &bytes.Buffer{}
	fmt.Fprintf(message, "From: %s\r\n", h.config.From)
	fmt.Fprintf(message, "To: %s\r\n", to[0])
	if len(to) > 1 {
		fmt.Fprintf(message, "Cc: %s\r\n", strings.Join(to[1:], ", "))
	}
	fmt.Fprintf(message, "Subject: %s\r\n", subject)
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	message.WriteString("\r\n")
	message.Write(body.Bytes())

	auth := smtp.PlainAuth(
		"",
		h.config.Username,
		h.config.Password,
		h.config.Host,
	)
	address := fmt.Sprintf("%s:%d", h.config.Host, h.config.Port)
	if err := smtp.SendMail(
		address,
		auth,
		h.config.From,
		to,
		message.Bytes(),
	); err != nil {
		return errors.Wrap(err, "error sending mail")
	}
	return nil
}
