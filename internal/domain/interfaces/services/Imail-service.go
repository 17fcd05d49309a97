package Iservices

import "context"

type IMailService interface {
	Send(ctx context.Context, to string, subject string, body string) error
}
