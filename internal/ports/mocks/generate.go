//go:generate mockgen -source=../product_repository.go    -destination=./mock_product_repository.go    -package=mocks
//go:generate mockgen -source=../cart_store.go            -destination=./mock_cart_store.go            -package=mocks
//go:generate mockgen -source=../newsletter_repository.go -destination=./mock_newsletter_repository.go -package=mocks
//go:generate mockgen -source=../validator.go             -destination=./mock_validator.go             -package=mocks
//go:generate mockgen -source=../storefront_service.go    -destination=./mock_storefront_service.go    -package=mocks

package mocks
