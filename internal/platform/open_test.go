package platform

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestBridgeOpener(t *testing.T) {
	var opened string
	b := BridgeOpener{Open: func(rawURL string) error {
		opened = rawURL
		return nil
	}}

	if err := b.OpenURL("https://www.amazon.co.jp/dp/4061385461"); err != nil {
		t.Fatalf("BridgeOpener.OpenURL failed: %v", err)
	}
	if opened != "https://www.amazon.co.jp/dp/4061385461" {
		t.Errorf("Bridge received wrong URL: %s", opened)
	}
}

func TestBridgeOpener_NilFunc(t *testing.T) {
	b := BridgeOpener{}
	if err := b.OpenURL("https://example.com"); err == nil {
		t.Error("Expected error when the bridge has no open function")
	}
}

func TestAppOpener_RejectsNonWebURLs(t *testing.T) {
	a := AppOpener{App: test.NewApp()}

	tests := []string{
		"file:///etc/passwd",
		"javascript:alert(1)",
		"://not-a-url",
	}
	for _, raw := range tests {
		if err := a.OpenURL(raw); err == nil {
			t.Errorf("Expected error opening %q", raw)
		}
	}
}

func TestNewOpener_PrefersBridge(t *testing.T) {
	bridge := func(string) error { return nil }

	if _, ok := NewOpener(bridge, test.NewApp()).(BridgeOpener); !ok {
		t.Error("Expected BridgeOpener when a bridge is injected")
	}
	if _, ok := NewOpener(nil, test.NewApp()).(AppOpener); !ok {
		t.Error("Expected AppOpener when no bridge is injected")
	}
	if _, ok := NewOpener(nil, nil).(SystemOpener); !ok {
		t.Error("Expected SystemOpener when neither a bridge nor an app exists")
	}
}
