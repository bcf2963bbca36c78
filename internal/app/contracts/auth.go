package contracts

import (
	"context"

	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/utils"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Logout(ctx context.Context, claims *utils.TokenClaims) error
	GetProfile(ctx context.Context, claims *utils.TokenClaims) (*responses.LoginUser, error)
	ChangePassword(ctx context.Context, claims *utils.TokenClaims, request *requests.ChangePassword) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}
