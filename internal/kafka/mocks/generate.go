//go:generate mockgen -source=../feed_consumer.go -destination=./mock_feed_consumer.go -package=mocks
//go:generate mockgen -source=../publisher.go     -destination=./mock_publisher.go     -package=mocks

package mocks
