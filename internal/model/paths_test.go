package model

import "testing"

func TestCoverPath(t *testing.T) {
	if got := CoverPath("B00ABCDE12"); got != "images/B00ABCDE12.jpg" {
		t.Errorf("CoverPath() = %q, expected images/B00ABCDE12.jpg", got)
	}
}
