package domain

import "errors"

const (
	RoleUser = "user"

	SourceKindFood = "food"
	SourceKindMeal = "meal"
)

var (
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"

	ErrParseUUID         = errors.New("failed to parse UUID")
	ErrUserNotAllowed    = errors.New("user not allowed")
	ErrTokenNotFound     = errors.New("failed to token not found")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenExpired      = errors.New("token expired")
	ErrNotAuthenticated  = errors.New("user not authenticated")
	ErrInvalidSourceKind = errors.New("source kind must be food or meal")
)
