package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(from, to, message, subject string) error
}

func Connect(user, password, host, port string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) configured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) buildBody(from, subject, message string) *strings.Reader {
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	return strings.NewReader(fmt.Sprintf("Subject: Workforce - %s\n%s\r\n Отправитель: %s\r\n %s\r\n",
		subject, mimeHeaders, from, message))
}

func (i impl) SendEMail(from, to, message, subject string) error {
	logger := log.WithField("sender", from)
	if !i.configured() {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	addr := i.host + ":" + i.port
	auth := sasl.NewPlainClient("", i.user, i.password)
	body := i.buildBody(from, subject, message)

	var err error
	if i.tlsEnabled {
		err = smtp.SendMailTLS(addr, auth, i.user, []string{to}, body)
	} else {
		err = smtp.SendMail(addr, auth, i.user, []string{to}, body)
	}
	if err != nil {
		logger.WithError(err).Error("Ошибка отправки сообщения")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}
