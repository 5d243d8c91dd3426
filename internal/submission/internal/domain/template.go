package domain

import (
	"bytes"
	"html/template"
)

var winnerTmpl = template.Must(template.New("winner").Parse(winnerHTML))

// RenderWinnerHTML 渲染获奖证书页面，交给 PDF 转换器出图
func RenderWinnerHTML(hackathonTitle string, teamName string, rank int, score float64) (string, error) {
	var buf bytes.Buffer
	err := winnerTmpl.Execute(&buf, map[string]any{
		"HackathonTitle": hackathonTitle,
		"TeamName":       teamName,
		"Rank":           rank,
		"Score":          score,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

const winnerHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; text-align: center; margin: 0; }
  .border { border: 12px double #8e44ad; margin: 24px; padding: 48px; }
  h1 { font-size: 42px; letter-spacing: 4px; color: #8e44ad; }
  .team { font-size: 36px; margin: 24px 0; color: #e67e22; }
  .hackathon { font-size: 26px; margin: 12px 0; }
  .rank { font-size: 64px; color: #8e44ad; margin: 16px 0; }
  .meta { margin-top: 36px; font-size: 16px; color: #7f8c8d; }
</style>
</head>
<body>
<div class="border">
  <h1>获奖证书</h1>
  <div class="team">{{.TeamName}}</div>
  <p>在</p>
  <div class="hackathon">{{.HackathonTitle}}</div>
  <p>中荣获</p>
  <div class="rank">第 {{.Rank}} 名</div>
  <div class="meta">
    <p>最终得分：{{.Score}}</p>
  </div>
</div>
</body>
</html>`
