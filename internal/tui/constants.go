package tui

import "time"

const (
	defaultToastWidth = 50
	frameInterval     = 50 * time.Millisecond
	defaultWidth      = 80
	defaultHeight     = 24
)
