package service

import "time"

// timeNow is the clock used for entity timestamps. Injectable for testing.
var timeNow = func() time.Time { return time.Now().UTC() }
