package services

import (
	"math/rand"
	"time"
)

// timeNow and drawRand are package seams so tests can pin the clock and the
// randomizer without touching the engines themselves.
var timeNow = func() time.Time { return time.Now().UTC() }

var drawRand = rand.New(rand.NewSource(time.Now().UnixNano()))
