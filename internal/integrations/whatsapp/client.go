package whatsapp

import (
	"fmt"
	"regexp"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// e164Pattern соответствует международному формату номера
var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// Client отправляет WhatsApp сообщения через Twilio
type Client struct {
	api  *twilio.RestClient
	from string // Номер отправителя в формате E.164
	log  Logger
}

// NewClient создает новый экземпляр WhatsApp клиента
func NewClient(accountSID, authToken, from string, log Logger) *Client {
	api := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &Client{
		api:  api,
		from: from,
		log:  log,
	}
}

// Send отправляет сообщение на номер. Номера в формате E.164 уходят
// в WhatsApp, остальные обычной SMS
func (c *Client) Send(to, body string) error {
	params, channel := buildMessageParams(c.from, to, body)

	resp, err := c.api.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, to, err)
	}

	if resp.Sid != nil {
		c.log.Info("%s message sent: sid=%s to=%s", channel, *resp.Sid, to)
	}

	return nil
}

// buildMessageParams выбирает канал доставки по формату номера
func buildMessageParams(from, to, body string) (*openapi.CreateMessageParams, string) {
	params := &openapi.CreateMessageParams{}
	params.SetBody(body)

	if e164Pattern.MatchString(to) {
		params.SetFrom("whatsapp:" + from)
		params.SetTo("whatsapp:" + to)
		return params, "WhatsApp"
	}

	params.SetFrom(from)
	params.SetTo(to)
	return params, "SMS"
}
