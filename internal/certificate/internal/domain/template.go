package domain

import (
	"bytes"
	"html/template"
)

var certTmpl = template.Must(template.New("certificate").Parse(certificateHTML))

// RenderHTML 渲染证书页面，交给 PDF 转换器出图
func RenderHTML(c Certificate) (string, error) {
	var buf bytes.Buffer
	err := certTmpl.Execute(&buf, map[string]any{
		"StudentName":    c.StudentName,
		"ChallengeTitle": c.ChallengeTitle,
		"MentorName":     c.MentorName,
		"Skills":         c.Skills,
		"Code":           c.Code,
		"IssuedAt":       c.IssuedAt.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

const certificateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; text-align: center; margin: 0; }
  .border { border: 12px double #2c3e50; margin: 24px; padding: 48px; }
  h1 { font-size: 42px; letter-spacing: 4px; color: #2c3e50; }
  .name { font-size: 36px; margin: 24px 0; color: #16a085; }
  .challenge { font-size: 26px; margin: 12px 0; }
  .skills { margin: 20px 0; }
  .skill { display: inline-block; border: 1px solid #16a085; border-radius: 12px;
           padding: 4px 14px; margin: 4px; font-size: 14px; color: #16a085; }
  .meta { margin-top: 36px; font-size: 14px; color: #7f8c8d; }
</style>
</head>
<body>
<div class="border">
  <h1>结业证书</h1>
  <p>兹证明</p>
  <div class="name">{{.StudentName}}</div>
  <p>完成了挑战</p>
  <div class="challenge">{{.ChallengeTitle}}</div>
  <div class="skills">
    {{range .Skills}}<span class="skill">{{.}}</span>{{end}}
  </div>
  <p>指导导师：{{.MentorName}}</p>
  <div class="meta">
    <p>签发日期：{{.IssuedAt}}</p>
    <p>验证码：{{.Code}}</p>
  </div>
</div>
</body>
</html>`
