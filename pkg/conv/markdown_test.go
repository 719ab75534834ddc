package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{name: "empty", md: "", want: ""},
		{name: "plain answer", md: "I build cloud systems.", want: "I build cloud systems.\n"},
		{name: "bold", md: "**AWS**", want: "<strong>AWS</strong>\n"},
		{name: "inline code", md: "`go test`", want: "<code>go test</code>\n"},
		{name: "heading flattened", md: "# Skills", want: "Skills\n"},
		{name: "script removed", md: "<script>alert('x')</script>", want: "\n"},
		{
			name: "contact link keeps href only",
			md:   "[contact page](https://example.com/contact)",
			want: "<a href=\"https://example.com/contact\">contact page</a>\n",
		},
		{
			name: "fenced code keeps language class",
			md:   "```go\nfunc main() {}\n```",
			want: "<pre><code class=\"language-go\">func main() {}\n</code></pre>\n",
		},
		{
			name: "mixed",
			md:   "**Go** and *Python* with `sqlite`",
			want: "<strong>Go</strong> and <em>Python</em> with <code>sqlite</code>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkdownToTelegramHTML([]byte(tt.md)))
		})
	}
}

func TestMarkdownToTelegramHTML_Bullets(t *testing.T) {
	got := MarkdownToTelegramHTML([]byte("Here are the certifications:\n- AWS Certified Cloud Practitioner\n* AWS Certified AI Practitioner"))

	assert.Contains(t, got, "Here are the certifications:")
	assert.Contains(t, got, "• AWS Certified Cloud Practitioner")
	assert.Contains(t, got, "• AWS Certified AI Practitioner")
	assert.NotContains(t, got, "<li>")
	assert.NotContains(t, got, "<ul>")
}
