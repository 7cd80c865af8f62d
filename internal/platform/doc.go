package platform

// Package platform hides host-environment concerns: how an item URL is
// handed to the outside world (host bridge, app, or OS command).
