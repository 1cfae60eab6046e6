// internal/realtime/mock_gen.go
package realtime

//go:generate mockgen -source=./hub.go -destination=../mocks/mock_publisher.go -package=mocks Publisher
