package session

//go:generate mockgen -source=$GOFILE -destination=api_mocks_test.go -package=session_test

import "context"

type authAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) error
}
