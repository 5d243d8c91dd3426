package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(Certificate{
		Code:           "ABC123DEF456",
		StudentName:    "学生小王",
		ChallengeTitle: "实现一个短链接服务",
		MentorName:     "导师张",
		Skills:         []string{"go", "mysql"},
		IssuedAt:       time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Contains(t, html, "学生小王")
	assert.Contains(t, html, "实现一个短链接服务")
	assert.Contains(t, html, "导师张")
	assert.Contains(t, html, "ABC123DEF456")
	assert.Contains(t, html, "2024-06-01")
	assert.Contains(t, html, `<span class="skill">go</span>`)
}

func TestRenderHTMLEscapesInput(t *testing.T) {
	html, err := RenderHTML(Certificate{
		StudentName: `<script>alert("x")</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
