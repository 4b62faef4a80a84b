package utils

import "testing"

func TestGenerateEnvVarName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Physician", "PHYSICIAN"},
		{"sales team", "SALES_TEAM"},
		{"  admin--role  ", "ADMIN_ROLE"},
	}
	for _, c := range cases {
		if got := GenerateEnvVarName(c.input); got != c.want {
			t.Errorf("GenerateEnvVarName(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestGenerateNotificationRecipientsEnvVarName(t *testing.T) {
	got := GenerateNotificationRecipientsEnvVarName("Physician")
	if got != "NOTIFICATION_RECIPIENTS_FOR_PHYSICIAN" {
		t.Errorf("unexpected name: %s", got)
	}
}
