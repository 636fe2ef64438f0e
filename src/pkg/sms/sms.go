package sms

import (
	"errors"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender delivers a text message to a 10-digit national phone number.
type Sender interface {
	Send(message, phone string) error
}

type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioSender(accountSID, authToken, fromNumber string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSender{
		client:     client,
		fromNumber: fromNumber,
	}
}

func (s *TwilioSender) Send(message, phone string) error {
	if s.fromNumber == "" {
		return errors.New("twilio from number is not configured")
	}

	params := &api.CreateMessageParams{}
	params.SetBody(message)
	params.SetFrom(s.fromNumber)
	// the account only serves Mexican numbers
	params.SetTo("+52" + phone)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
