//go:generate mockgen -source=../ports.go -destination=./mock_ports.go -package=mocks

package mocks
