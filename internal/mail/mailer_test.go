package mail

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

func TestNewHTMLMailerWithBadGlob(t *testing.T) {
	_, err := NewHTMLMailer(Config{}, "no/such/dir/*.html")
	require.Error(t, err)
}

func TestDigestTemplateRenders(t *testing.T) {
	mailer, err := NewHTMLMailer(Config{}, "../../templates/email/*.html")
	require.NoError(t, err)

	crate := cr8s.NewCrate("crate-id", "ferris-id", "serde", "Serde", "1.0.0")
	crate.Description = "Serialization framework"
	now := time.Now()
	crate.Created = &now

	body := &bytes.Buffer{}
	require.NoError(
		t,
		mailer.templates.ExecuteTemplate(
			body,
			"digest.html",
			struct {
				Crates []cr8s.Crate
			}{
				Crates: []cr8s.Crate{crate},
			},
		),
	)
	require.Contains(t, body.String(), "Serde")
	require.Contains(t, body.String(), "serde")
	require.Contains(t, body.String(), "1.0.0")
	require.Contains(t, body.String(), "Serialization framework")
}

func TestSendWithNoRecipients(t *testing.T) {
	mailer, err := NewHTMLMailer(Config{}, "../../templates/email/*.html")
	require.NoError(t, err)
	err = mailer.SendDigest(nil, nil)
	require.Error(t, err)
}
