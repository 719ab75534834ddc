package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"What certifications do you have?", English},
		{"Quelles sont vos compétences ?", French},
		{"Bonjour", French},
		{"Parle-moi de tes projets", French},
		{"How can I hire you?", English},
		{"", English},
		{"AWS", English},
		{"Je cherche des informations sur l'expérience", French},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Detect(tt.in), tt.in)
	}
}

func TestParse(t *testing.T) {
	l, ok := Parse("fr-FR")
	assert.True(t, ok)
	assert.Equal(t, French, l)

	l, ok = Parse("de")
	assert.False(t, ok)
	assert.Equal(t, English, l)
}

func TestMessages(t *testing.T) {
	en := For(English)
	assert.Equal(t, "Hi! I'm Sensei, the assistant of this portfolio. What's your name?", en.Greeting("Sensei", ""))
	assert.Contains(t, en.Greeting("Sensei", "Ana"), "Hi Ana!")
	assert.Equal(t, "Goodbye Ana, thanks for stopping by!", en.Farewell("Ana"))
	assert.Contains(t, en.Contact("https://example.com/contact"), "https://example.com/contact")
	assert.Contains(t, en.NoInfo, en.HelpFurther)

	fr := For(French)
	assert.Contains(t, fr.NoInfo, fr.HelpFurther)
	assert.Equal(t, en, For(Language("de")))
}

func TestDetect_EnglishContractions(t *testing.T) {
	assert.Equal(t, English, Detect("What's your name? I'm curious, don't worry"))
}
