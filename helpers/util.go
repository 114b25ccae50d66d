package helpers

import (
	"errors"
	mathrand "math/rand"
	"strings"
	"time"
)

func GetSplitPart(target string, separate string, index int) (string, error) {
	parts := strings.Split(target, separate)
	if index >= len(parts) {
		return "", errors.New("index out of range")
	}
	return parts[index], nil
}

// PoliteDelay sleeps for a random duration between min and max, keeping
// request pacing below retailer rate limits.
func PoliteDelay(min, max time.Duration) {
	if max <= min {
		time.Sleep(min)
		return
	}
	rnd := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	time.Sleep(min + time.Duration(rnd.Int63n(int64(max-min))))
}
