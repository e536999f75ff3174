package usecase

import "errors"

var (
	// ErrProductNotFound — товара нет или он снят с продажи.
	ErrProductNotFound = errors.New("product not found")
	// ErrEmptyCart — оформление пустой корзины.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrEmptyProductID — запрос без идентификатора товара.
	ErrEmptyProductID = errors.New("product id is required")
)
