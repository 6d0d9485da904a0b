package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_LowercasesAndCollapsesWhitespace(t *testing.T) {
	got := Text("Senior   Support\n\nEngineer\t Role")
	assert.Equal(t, "senior support engineer role", got)
}

func TestText_CanonicalizesPunctuationVariants(t *testing.T) {
	got := Text("“Smart” Quotes – and — dashes • bullets…")
	assert.Equal(t, `"smart" quotes - and - dashes bullets...`, got)
}

func TestText_StripsNonPrintable(t *testing.T) {
	got := Text("hello\x00world\x07 again")
	assert.Equal(t, "helloworld again", got)
}

func TestText_ExpandsAbbreviations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"it", "IT support role", "information technology support role"},
		{"ad", "manage AD accounts", "manage active directory accounts"},
		{"os", "cost of os upgrades", "cost of operating system upgrades"},
		{"vpn", "configure vpn access", "configure virtual private network access"},
		{"pc", "pc repair", "computer repair"},
		{"rdp", "rdp sessions", "remote desktop protocol sessions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.input))
		})
	}
}

func TestText_DoesNotExpandInsideWords(t *testing.T) {
	// "it" inside "position", "ad" inside "advanced", "os" inside "cost"
	got := Text("position advanced cost")
	assert.Equal(t, "position advanced cost", got)
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{
		"IT  Support — “urgent”\n• Windows\n• AD",
		"plain lowercase text",
		"  VPN and RDP access for the OS team  ",
		"",
	}

	for _, input := range inputs {
		once := Text(input)
		assert.Equal(t, once, Text(once), "normalize must be idempotent for %q", input)
	}
}

func TestText_Empty(t *testing.T) {
	assert.Equal(t, "", Text(""))
	assert.Equal(t, "", Text("   \n\t  "))
}
