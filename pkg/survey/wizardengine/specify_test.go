package wizardengine

import "testing"

func TestBaseSpecifyTrigger(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Severe (please specify)", true},
		{"Allergies (Please List)", true},
		{"Using any products (please mention which ones)", true},
		{"Mild", false},
		{"Yes", false},
		{"Other", false},
	}
	for _, c := range cases {
		if got := BaseSpecifyTrigger(c.text); got != c.want {
			t.Errorf("BaseSpecifyTrigger(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestExtendedSpecifyTrigger(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Severe (please specify)", true},
		{"Yes", true},
		{"Other", true},
		{"Currently using any actives", true},
		{"Mild", false},
		{"No", false},
	}
	for _, c := range cases {
		if got := ExtendedSpecifyTrigger(c.text); got != c.want {
			t.Errorf("ExtendedSpecifyTrigger(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
