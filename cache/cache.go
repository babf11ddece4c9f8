package cache

import (
	"io"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

var OtpSessionCache = newSessionCache(15*time.Minute, 5*time.Minute)
var RateLimiterCache = cache.New(10*time.Minute, 20*time.Minute)

// newSessionCache closes whatever it evicts, so an expired or deleted
// session stops its resend timer.
func newSessionCache(ttl, cleanup time.Duration) *cache.Cache {
	c := cache.New(ttl, cleanup)
	c.OnEvicted(func(id string, v interface{}) {
		if closer, ok := v.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Warn().Err(err).Str("sessionId", id).Msg("failed to close evicted OTP session")
			}
		}
	})
	return c
}

// ConfigureSessionTTL replaces the session registry. Call it before serving.
func ConfigureSessionTTL(ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	OtpSessionCache = newSessionCache(ttl, ttl/3)
}

func PutOtpSession(id string, session io.Closer) {
	OtpSessionCache.Set(id, session, cache.DefaultExpiration)
}

func GetOtpSession(id string) (interface{}, bool) {
	return OtpSessionCache.Get(id)
}

func DeleteOtpSession(id string) {
	OtpSessionCache.Delete(id)
}
