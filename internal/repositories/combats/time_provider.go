package combats

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/aleserena/Don-t-slay-the-spire-sub001/internal/repositories/combats TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

// NewRealTimeProvider returns a TimeProvider backed by the system clock
func NewRealTimeProvider() TimeProvider {
	return realTimeProvider{}
}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
