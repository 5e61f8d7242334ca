package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "substitutes template variables",
			input: "admin_token: {{.ADMIN_TOKEN}}",
			env:   map[string]string{"ADMIN_TOKEN": "secret123"},
			want:  "admin_token: secret123",
		},
		{
			name:  "plain dollar is untouched",
			input: `tickers: ["BRK.B", "^GSPC", "$SPY"]`,
			env:   map[string]string{"SPY": "leak"},
			want:  `tickers: ["BRK.B", "^GSPC", "$SPY"]`,
		},
		{
			name:  "shell-style braces are untouched",
			input: "pattern: ${USER_ID}",
			env:   map[string]string{"USER_ID": "123"},
			want:  "pattern: ${USER_ID}",
		},
		{
			name:  "missing variable expands to empty",
			input: "endpoint: {{.MISSING_VAR}}",
			want:  "endpoint: ",
		},
		{
			name: "nested YAML with multiple variables",
			input: "destinations:\n  macro_econ: {{.MACRO_DEST}}\n  equities: {{.EQ_DEST}}",
			env: map[string]string{
				"MACRO_DEST": "vip_telegram",
				"EQ_DEST":    "desk_feed",
			},
			want: "destinations:\n  macro_econ: vip_telegram\n  equities: desk_feed",
		},
		{
			name:  "content without templates passes through",
			input: "impact_threshold: 70\n",
			want:  "impact_threshold: 70\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

func TestExpandEnvMalformedTemplatePassesThrough(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "should-not-appear")

	for _, input := range []string{
		"admin_token: {{.ADMIN_TOKEN",
		"admin_token: {{",
		"key: {{}}",
	} {
		result := ExpandEnv([]byte(input))
		assert.Equal(t, input, string(result))
		assert.NotContains(t, string(result), "should-not-appear")
	}
}
