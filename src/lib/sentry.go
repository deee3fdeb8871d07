package lib

import (
	"log"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryService reports server-side failures to Sentry. Without a DSN it is
// a no-op so local runs need no Sentry account.
type SentryService struct {
	initialized bool
}

func NewSentryService(dsn, environment string) *SentryService {
	if dsn == "" {
		log.Println("SENTRY_DSN not set, Sentry disabled")
		return &SentryService{initialized: false}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		log.Printf("Sentry initialization failed: %v", err)
		return &SentryService{initialized: false}
	}

	log.Println("Sentry initialized successfully")
	return &SentryService{initialized: true}
}

func (s *SentryService) CaptureException(err error) {
	if !s.initialized || err == nil {
		return
	}
	sentry.CaptureException(err)
}

// Close flushes pending events before shutdown.
func (s *SentryService) Close() {
	if !s.initialized {
		return
	}
	sentry.Flush(2 * time.Second)
}
