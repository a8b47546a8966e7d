package repository

import (
	"log"
	"os"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// A stored timestamp that no longer parses is corrupt data, not a
		// normal empty field. Keep it visible instead of silently zeroing.
		log.Printf("[repository] corrupt stored timestamp value=%q err=%v", s, err)
	}
	return t
}

func timePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToString(*t)
}

func stringToTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := stringToTime(s)
	return &t
}
