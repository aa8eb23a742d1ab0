package email

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"

	pkg "github.com/ChokeGuy/exchange-office/pkg/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const (
	contentTypeHTML   = "text/html; charset=UTF-8"
	contentTransferQP = "quoted-printable"
	mimeVersionHeader = "MIME-Version: 1.0"
)

// SesEmailSender is an email sender that uses AWS SES
type SesEmailSender struct {
	sesClient        *ses.Client
	fromEmailAddress string
}

// NewSesEmailSender initializes a new SesEmailSender
func NewSesEmailSender(envCfg pkg.Config) (EmailSender, error) {
	cfg, err := config.LoadDefaultConfig(
		context.TODO(),
		config.WithRegion(envCfg.AWSRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				envCfg.AWSAcessKeyID,
				envCfg.AWSSecretKey,
				"")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %v", err)
	}

	return &SesEmailSender{
		sesClient:        ses.NewFromConfig(cfg),
		fromEmailAddress: envCfg.EmailSenderAddress,
	}, nil
}

// SendEmail sends an HTML email via AWS SES
func (sesSender *SesEmailSender) SendEmail(payload EmailPayload) error {
	var emailRaw bytes.Buffer
	writer := multipart.NewWriter(&emailRaw)

	var headers bytes.Buffer
	headers.WriteString(fmt.Sprintf("From: %s\n", sesSender.fromEmailAddress))
	headers.WriteString(fmt.Sprintf("To: %s\n", strings.Join(payload.To, ",")))
	headers.WriteString(formatHeader("CC", payload.CC))
	headers.WriteString(formatHeader("BCC", payload.BCC))
	headers.WriteString(fmt.Sprintf("Subject: %s\n", payload.Subject))
	headers.WriteString(fmt.Sprintf("%s\n", mimeVersionHeader))
	headers.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%s\n\n", writer.Boundary()))

	emailRaw.WriteString(headers.String())

	if err := writeBody(writer, payload.Content); err != nil {
		return err
	}
	writer.Close()

	_, err := sesSender.sesClient.SendRawEmail(
		context.TODO(),
		&ses.SendRawEmailInput{
			Source: aws.String(sesSender.fromEmailAddress),
			Destinations: append(payload.To,
				append(payload.CC, payload.BCC...)...),
			RawMessage: &types.RawMessage{Data: emailRaw.Bytes()},
		})

	if err != nil {
		return fmt.Errorf("failed to send email via SES: %v", err)
	}

	return nil
}

func formatHeader(headerName string, addresses []string) string {
	if len(addresses) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s\n", headerName, strings.Join(addresses, ","))
}

// writeBody adds the email body (HTML) to the multipart message
func writeBody(writer *multipart.Writer, body string) error {
	part, err := writer.CreatePart(
		textproto.MIMEHeader{
			"Content-Type":              {contentTypeHTML},
			"Content-Transfer-Encoding": {contentTransferQP},
		})

	if err != nil {
		return fmt.Errorf("failed to create body part: %v", err)
	}

	qp := quotedprintable.NewWriter(part)
	qp.Write([]byte(body))
	qp.Close()

	return nil
}
