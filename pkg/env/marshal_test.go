package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Provider string   `env:"LLM_PROVIDER"`
	APIKey   string   `env:"LLM_API_KEY,required"`
	Tokens   int      `env:"LLM_MAX_TOKENS"`
	Temp     float64  `env:"LLM_TEMPERATURE"`
	Debug    bool     `env:"DEBUG"`
	Topics   []string `env:"TOPICS"`
	Title    string   `env:"TITLE"`
	Nested   nested
	ignored  string
	Untagged string
}

type nested struct {
	Addr string `env:"HTTP_ADDR"`
}

func TestMarshal(t *testing.T) {
	cfg := &sample{
		Provider: "openai",
		APIKey:   "sk-123",
		Tokens:   256,
		Temp:     0.3,
		Topics:   []string{"experience", "crypto"},
		Title:    "My site",
		Nested:   nested{Addr: ":8080"},
		ignored:  "x",
		Untagged: "y",
	}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "non-zero fields",
			want: "LLM_PROVIDER=openai\nLLM_API_KEY=sk-123\nLLM_MAX_TOKENS=256\nLLM_TEMPERATURE=0.3\n" +
				"TOPICS=experience,crypto\nTITLE=\"My site\"\nHTTP_ADDR=:8080\n",
		},
		{
			name: "masked with defaults",
			opts: Options{Defaults: true, Mask: true},
			want: "LLM_PROVIDER=openai\nLLM_API_KEY=****\nLLM_MAX_TOKENS=256\nLLM_TEMPERATURE=0.3\n" +
				"DEBUG=false\nTOPICS=experience,crypto\nTITLE=\"My site\"\nHTTP_ADDR=:8080\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(cfg, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarshalEnv_Empty(t *testing.T) {
	got, err := MarshalEnv(&sample{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarshal_NotStruct(t *testing.T) {
	var nilCfg *sample
	for _, in := range []any{nil, 42, nilCfg} {
		_, err := MarshalEnv(in)
		assert.ErrorIs(t, err, ErrNotStruct)
	}
}
