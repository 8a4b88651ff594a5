package utils

import (
	"math/rand"
	"time"
)

// UniqueStrings returns a new slice without duplicate entries, keeping the
// order of first appearance.
func UniqueStrings(slice []string) []string {
	keys := make(map[string]bool)
	uniqueSlice := []string{}
	for _, entry := range slice {
		if _, value := keys[entry]; !value {
			keys[entry] = true
			uniqueSlice = append(uniqueSlice, entry)
		}
	}
	return uniqueSlice
}

// RandBetween returns a random int in [min, max]. A degenerate range
// collapses to min.
func RandBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}

// HumanSleep pauses for a random duration between minMs and maxMs
// milliseconds, imitating a live user and giving the page time to render.
func HumanSleep(minMs, maxMs int) {
	time.Sleep(time.Duration(RandBetween(minMs, maxMs)) * time.Millisecond)
}
