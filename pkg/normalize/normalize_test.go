package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "whitespace runs collapse",
			in:   "  Fed cuts   rates\tby 25bp\n\n",
			want: "Fed cuts rates by 25bp",
		},
		{
			name: "breaking prefix stripped",
			in:   "BREAKING: Fed cuts rates by 25bp",
			want: "Fed cuts rates by 25bp",
		},
		{
			name: "stacked attention markers stripped",
			in:   "🚨🚨 BREAKING: URGENT: Oil jumps 4%",
			want: "Oil jumps 4%",
		},
		{
			name: "stars stripped",
			in:   "*** ALERT: CPI prints 3.1%",
			want: "CPI prints 3.1%",
		},
		{
			name: "dateline stripped",
			in:   "WASHINGTON (Reuters) — Treasury yields rise 8bp",
			want: "Treasury yields rise 8bp",
		},
		{
			name: "trailing wire suffix stripped",
			in:   "Treasury yields rise 8bp — Reuters",
			want: "Treasury yields rise 8bp",
		},
		{
			name: "repeated punctuation collapses",
			in:   "Oil jumps!!! Really??",
			want: "Oil jumps! Really?",
		},
		{
			name: "tickers and numbers preserved",
			in:   "AAPL down 3.5%, BRK.B flat, 10Y at 4.25%",
			want: "AAPL down 3.5%, BRK.B flat, 10Y at 4.25%",
		},
		{
			name: "uncertainty phrasing preserved",
			in:   "Reportedly unconfirmed: sources say talks stalled",
			want: "Reportedly unconfirmed: sources say talks stalled",
		},
		{
			name: "empty input",
			in:   "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageText(tt.in))
		})
	}
}

func TestMessageTextIdempotent(t *testing.T) {
	inputs := []string{
		"🚨 BREAKING: LONDON (AFP) — Markets slide 2%... — AFP",
		"plain text with 4.5bn and EURUSD",
		"ALERT:   spaced    out!!!",
	}
	for _, in := range inputs {
		once := MessageText(in)
		assert.Equal(t, once, MessageText(once), "normalize must be idempotent for %q", in)
	}
}
