package storefront

import "errors"

var (
	// ErrTransport — сеть недоступна, ответ не 2xx или тело не разбирается.
	ErrTransport = errors.New("storefront: transport failure")
	// ErrBusiness — сервер ответил success=false.
	ErrBusiness = errors.New("storefront: request rejected")

	ErrEmptyItemID       = errors.New("item id is required")
	ErrEmptyEmail        = errors.New("email is required")
	ErrInvalidPostalCode = errors.New("postal code must have 8 digits")
	// ErrPostalCodeNotFound — сервис ответил erro=true.
	ErrPostalCodeNotFound = errors.New("postal code not found")
)
