package format

import (
	"time"
)

const (
	filetimeOffset = 116444736000000000 // difference between FILETIME epoch and Unix epoch in 100ns units
	filetimeUnit   = 100                // FILETIME units are 100ns
	filetimePerSec = 10000000
)

// FiletimeToTime converts a Windows FILETIME value to time.Time. Values at or
// before the Unix epoch clamp to it.
func FiletimeToTime(v uint64) time.Time {
	if v <= filetimeOffset {
		return time.Unix(0, 0).UTC()
	}
	d := v - filetimeOffset
	sec := int64(d / filetimePerSec)
	nsec := int64(d%filetimePerSec) * filetimeUnit
	return time.Unix(sec, nsec).UTC()
}

// TimeToFiletime converts a time.Time to a Windows FILETIME value.
func TimeToFiletime(t time.Time) uint64 {
	ns := t.UnixNano()
	if ns < 0 {
		ns = 0
	}
	return uint64(ns)/filetimeUnit + filetimeOffset
}
